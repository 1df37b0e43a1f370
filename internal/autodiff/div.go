package autodiff

import "github.com/mint-ml/mint/internal/tensor"

// divOp represents element-wise division with broadcasting.
//
// Backward:
//
//	d(a/b)/da = 1/b    → grad_a = (outputGrad / b) reduced to a's shape
//	d(a/b)/db = -a/b²  → grad_b = (-outputGrad * a / b²) reduced to b's shape
type divOp struct {
	a, b *Tensor
}

// Div returns t / other with broadcasting, recording the operation for
// backward. Bool operands are promoted to Float32.
func (t *Tensor) Div(other *Tensor) *Tensor {
	a, b := promotePair(t, other)
	out := a.backend.Div(a.raw, b.raw)
	return newFromOp(out, a.backend, &divOp{a: a, b: b}, a, b)
}

func (op *divOp) Inputs() []*Tensor {
	return []*Tensor{op.a, op.b}
}

func (op *divOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	backend := op.a.backend

	gradA := reduceBroadcast(backend.Div(outputGrad, op.b.raw), op.a.Shape(), backend)

	bSquared := backend.Mul(op.b.raw, op.b.raw)
	gradB := backend.Div(backend.Mul(outputGrad, op.a.raw), bSquared)
	gradB = backend.Scale(reduceBroadcast(gradB, op.b.Shape(), backend), -1)

	return []*tensor.RawTensor{gradA, gradB}
}
