package autodiff

import "github.com/mint-ml/mint/internal/tensor"

// reshapeOp changes the shape without touching element order.
//
// Backward: reshape the output gradient back to the input's shape.
type reshapeOp struct {
	x *Tensor
}

// Reshape returns t with a new shape of the same element count, recording
// the operation for backward.
func (t *Tensor) Reshape(shape tensor.Shape) *Tensor {
	if t.DType() == tensor.Bool {
		return NewLeaf(t.backend.Reshape(t.raw, shape), t.backend, false)
	}
	out := t.backend.Reshape(t.raw, shape)
	return newFromOp(out, t.backend, &reshapeOp{x: t}, t)
}

func (op *reshapeOp) Inputs() []*Tensor {
	return []*Tensor{op.x}
}

func (op *reshapeOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{op.x.backend.Reshape(outputGrad, op.x.Shape())}
}
