package autodiff

import "github.com/mint-ml/mint/internal/tensor"

// mulOp represents element-wise multiplication with broadcasting.
//
// Backward:
//
//	d(a*b)/da = b → grad_a = (outputGrad * b) reduced to a's shape
//	d(a*b)/db = a → grad_b = (outputGrad * a) reduced to b's shape
type mulOp struct {
	a, b *Tensor
}

// Mul returns t * other with broadcasting, recording the operation for
// backward. Two Bool operands multiply as logical AND and stay Bool; mixed
// operands are promoted to Float32.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	if tensor.Promote(t.DType(), other.DType()) == tensor.Bool {
		return NewLeaf(t.backend.Mul(t.raw, other.raw), t.backend, false)
	}
	a, b := promotePair(t, other)
	out := a.backend.Mul(a.raw, b.raw)
	return newFromOp(out, a.backend, &mulOp{a: a, b: b}, a, b)
}

func (op *mulOp) Inputs() []*Tensor {
	return []*Tensor{op.a, op.b}
}

func (op *mulOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	backend := op.a.backend
	return []*tensor.RawTensor{
		reduceBroadcast(backend.Mul(outputGrad, op.b.raw), op.a.Shape(), backend),
		reduceBroadcast(backend.Mul(outputGrad, op.a.raw), op.b.Shape(), backend),
	}
}
