package autodiff

import "github.com/mint-ml/mint/internal/tensor"

// matmulOp represents 2-D matrix multiplication: C[m,n] = A[m,k] @ B[k,n].
//
// Backward:
//
//	grad_A = outputGrad @ Bᵀ
//	grad_B = Aᵀ @ outputGrad
type matmulOp struct {
	a, b *Tensor
}

// MatMul returns the matrix product t @ other for 2-D tensors, recording the
// operation for backward. Bool operands are promoted to Float32.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	a, b := promotePair(t, other)
	out := a.backend.MatMul(a.raw, b.raw)
	return newFromOp(out, a.backend, &matmulOp{a: a, b: b}, a, b)
}

func (op *matmulOp) Inputs() []*Tensor {
	return []*Tensor{op.a, op.b}
}

func (op *matmulOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	backend := op.a.backend
	return []*tensor.RawTensor{
		backend.MatMul(outputGrad, backend.Transpose(op.b.raw)),
		backend.MatMul(backend.Transpose(op.a.raw), outputGrad),
	}
}
