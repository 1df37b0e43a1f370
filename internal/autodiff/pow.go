package autodiff

import "github.com/mint-ml/mint/internal/tensor"

// powOp raises a tensor to a fixed scalar exponent.
//
// Backward: d(x^n)/dx = n * x^(n-1), so grad_x = outputGrad * n * x^(n-1).
type powOp struct {
	x        *Tensor
	exponent float32
}

// Pow returns t raised element-wise to a scalar exponent, recording the
// operation for backward.
func (t *Tensor) Pow(exponent float32) *Tensor {
	x := t.promoteFloat()
	out := x.backend.Pow(x.raw, exponent)
	return newFromOp(out, x.backend, &powOp{x: x, exponent: exponent}, x)
}

func (op *powOp) Inputs() []*Tensor {
	return []*Tensor{op.x}
}

func (op *powOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	backend := op.x.backend
	deriv := backend.Scale(backend.Pow(op.x.raw, op.exponent-1), op.exponent)
	return []*tensor.RawTensor{backend.Mul(outputGrad, deriv)}
}
