package autodiff

import "github.com/mint-ml/mint/internal/tensor"

// addOp represents element-wise addition with broadcasting.
//
// Backward:
//
//	d(a+b)/da = 1 → grad_a = outputGrad reduced to a's shape
//	d(a+b)/db = 1 → grad_b = outputGrad reduced to b's shape
type addOp struct {
	a, b *Tensor
}

// Add returns t + other with broadcasting, recording the operation for
// backward. Bool operands are promoted to Float32.
func (t *Tensor) Add(other *Tensor) *Tensor {
	a, b := promotePair(t, other)
	out := a.backend.Add(a.raw, b.raw)
	return newFromOp(out, a.backend, &addOp{a: a, b: b}, a, b)
}

func (op *addOp) Inputs() []*Tensor {
	return []*Tensor{op.a, op.b}
}

func (op *addOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	backend := op.a.backend
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, op.a.Shape(), backend),
		reduceBroadcast(outputGrad, op.b.Shape(), backend),
	}
}
