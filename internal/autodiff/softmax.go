package autodiff

import (
	"fmt"

	"github.com/mint-ml/mint/internal/tensor"
)

// softmaxOp normalizes along one dimension.
//
// Backward, with s = softmax(x):
//
//	grad_x = s * (outputGrad - Σ_dim(outputGrad * s))
//
// where the sum keeps the reduced dimension so it broadcasts back.
type softmaxOp struct {
	x   *Tensor
	out *tensor.RawTensor
	dim int
}

// Softmax returns softmax(t) along dim (negative dims count from the end),
// recording the operation for backward.
func (t *Tensor) Softmax(dim int) *Tensor {
	x := t.promoteFloat()
	ndim := len(x.Shape())
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("softmax: invalid dim %d for shape %v", dim, x.Shape()))
	}
	out := x.backend.Softmax(x.raw, dim)
	return newFromOp(out, x.backend, &softmaxOp{x: x, out: out, dim: dim}, x)
}

func (op *softmaxOp) Inputs() []*Tensor {
	return []*Tensor{op.x}
}

func (op *softmaxOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	backend := op.x.backend
	dot := backend.SumDim(backend.Mul(outputGrad, op.out), op.dim, true)
	return []*tensor.RawTensor{backend.Mul(op.out, backend.Sub(outputGrad, dot))}
}
