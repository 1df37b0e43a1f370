package autodiff

import (
	"fmt"

	"github.com/mint-ml/mint/internal/tensor"
)

// indexOp selects a contiguous sub-block by fixing one or more leading
// dimensions to integer positions.
//
// Backward: the output gradient scatters back into a zero tensor of the
// input's shape at the selected block; everything outside stays zero.
type indexOp struct {
	x      *Tensor
	offset int
	size   int
}

// Index fixes the leading dimensions of t at the given positions (negative
// indices count from the end of their dimension) and returns the remaining
// sub-tensor as a copy. Indexing all dimensions yields a scalar. The result
// participates in the graph: gradients route back to the selected region of t.
func (t *Tensor) Index(indices ...int) *Tensor {
	shape := t.Shape()
	if len(indices) == 0 || len(indices) > len(shape) {
		panic(fmt.Sprintf("index: got %d indices for shape %v", len(indices), shape))
	}

	strides := shape.ComputeStrides()
	offset := 0
	for i, ix := range indices {
		if ix < 0 {
			ix += shape[i]
		}
		if ix < 0 || ix >= shape[i] {
			panic(fmt.Sprintf("index: position %d out of range for dimension %d of size %d", indices[i], i, shape[i]))
		}
		offset += ix * strides[i]
	}

	outShape := tensor.Shape(shape[len(indices):]).Clone()
	size := outShape.NumElements()

	out, err := tensor.NewRaw(outShape, t.DType())
	if err != nil {
		panic(fmt.Sprintf("index: %v", err))
	}

	if t.DType() == tensor.Bool {
		copy(out.AsBool(), t.raw.AsBool()[offset:offset+size])
		return NewLeaf(out, t.backend, false)
	}
	copy(out.AsFloat32(), t.raw.AsFloat32()[offset:offset+size])

	return newFromOp(out, t.backend, &indexOp{x: t, offset: offset, size: size}, t)
}

func (op *indexOp) Inputs() []*Tensor {
	return []*Tensor{op.x}
}

func (op *indexOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	grad := mustRaw(op.x.Shape())
	copy(grad.AsFloat32()[op.offset:op.offset+op.size], outputGrad.AsFloat32())
	return []*tensor.RawTensor{grad}
}
