package autodiff

import "github.com/mint-ml/mint/internal/tensor"

// transposeOp permutes dimensions.
//
// Backward: apply the inverse permutation to the output gradient.
type transposeOp struct {
	x    *Tensor
	axes []int
}

// Transpose permutes t's dimensions, recording the operation for backward.
// With no axes the dimension order is reversed.
func (t *Tensor) Transpose(axes ...int) *Tensor {
	x := t.promoteFloat()
	if len(axes) == 0 {
		axes = make([]int, len(x.Shape()))
		for i := range axes {
			axes[i] = len(axes) - 1 - i
		}
	}
	out := x.backend.Transpose(x.raw, axes...)
	return newFromOp(out, x.backend, &transposeOp{x: x, axes: axes}, x)
}

func (op *transposeOp) Inputs() []*Tensor {
	return []*Tensor{op.x}
}

func (op *transposeOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	inverse := make([]int, len(op.axes))
	for i, a := range op.axes {
		inverse[a] = i
	}
	return []*tensor.RawTensor{op.x.backend.Transpose(outputGrad, inverse...)}
}
