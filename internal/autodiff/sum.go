package autodiff

import (
	"fmt"

	"github.com/mint-ml/mint/internal/tensor"
)

// sumOp reduces by summation, either over all elements or along one
// dimension.
//
// Backward: every input element contributed with weight 1, so the output
// gradient is replicated back across the reduced extent.
type sumOp struct {
	x       *Tensor
	all     bool
	dim     int
	keepDim bool
}

// Sum reduces t over all elements to a scalar, recording the operation for
// backward. Bool operands are promoted to Float32 (true counts as 1).
func (t *Tensor) Sum() *Tensor {
	x := t.promoteFloat()
	out := x.backend.Sum(x.raw)
	return newFromOp(out, x.backend, &sumOp{x: x, all: true}, x)
}

// SumDim sums t along one dimension (negative dims count from the end).
// With keepDim the reduced dimension is retained with size 1.
func (t *Tensor) SumDim(dim int, keepDim bool) *Tensor {
	x := t.promoteFloat()
	ndim := len(x.Shape())
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("sum: invalid dim %d for shape %v", dim, x.Shape()))
	}
	out := x.backend.SumDim(x.raw, dim, keepDim)
	return newFromOp(out, x.backend, &sumOp{x: x, dim: dim, keepDim: keepDim}, x)
}

func (op *sumOp) Inputs() []*Tensor {
	return []*Tensor{op.x}
}

func (op *sumOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	backend := op.x.backend
	g := outputGrad

	// Without keep-dim the reduced axis is gone; reinstate it as size 1 so
	// the gradient right-aligns against the input shape.
	if !op.all && !op.keepDim {
		withDim := op.x.Shape().Clone()
		withDim[op.dim] = 1
		g = backend.Reshape(g, withDim)
	}

	return []*tensor.RawTensor{broadcastTo(g, op.x.Shape(), backend)}
}
