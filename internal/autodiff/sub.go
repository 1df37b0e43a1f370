package autodiff

import "github.com/mint-ml/mint/internal/tensor"

// subOp represents element-wise subtraction with broadcasting.
//
// Backward:
//
//	d(a-b)/da = 1  → grad_a = outputGrad reduced to a's shape
//	d(a-b)/db = -1 → grad_b = -outputGrad reduced to b's shape
type subOp struct {
	a, b *Tensor
}

// Sub returns t - other with broadcasting, recording the operation for
// backward. Bool operands are promoted to Float32.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	a, b := promotePair(t, other)
	out := a.backend.Sub(a.raw, b.raw)
	return newFromOp(out, a.backend, &subOp{a: a, b: b}, a, b)
}

func (op *subOp) Inputs() []*Tensor {
	return []*Tensor{op.a, op.b}
}

func (op *subOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	backend := op.a.backend
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, op.a.Shape(), backend),
		backend.Scale(reduceBroadcast(outputGrad, op.b.Shape(), backend), -1),
	}
}
