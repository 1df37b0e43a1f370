package autodiff

import (
	"fmt"

	"github.com/mint-ml/mint/internal/tensor"
)

// End marks a Range that extends to the end of its dimension.
const End = -1

// Range is a half-open [Start, Stop) interval over one dimension.
type Range struct {
	Start, Stop int
}

// R builds a Range. Use End as Stop to run to the end of the dimension.
func R(start, stop int) Range {
	return Range{Start: start, Stop: stop}
}

// All selects a full dimension.
var All = Range{Start: 0, Stop: End}

// sliceOp selects a rectangular region, one Range per dimension.
//
// Backward: the output gradient scatters back into a zero tensor of the
// input's shape at the selected region.
type sliceOp struct {
	x      *Tensor
	starts []int
}

// Slice returns a copy of the rectangular region described by one Range per
// leading dimension; omitted trailing dimensions are taken whole. The result
// keeps the input's rank and participates in the graph: gradients route back
// to the selected region of t.
func (t *Tensor) Slice(ranges ...Range) *Tensor {
	shape := t.Shape()
	if len(ranges) > len(shape) {
		panic(fmt.Sprintf("slice: got %d ranges for shape %v", len(ranges), shape))
	}

	starts := make([]int, len(shape))
	outShape := make(tensor.Shape, len(shape))
	for i, d := range shape {
		r := All
		if i < len(ranges) {
			r = ranges[i]
		}
		stop := r.Stop
		if stop == End {
			stop = d
		}
		if r.Start < 0 || stop > d || r.Start >= stop {
			panic(fmt.Sprintf("slice: invalid range [%d:%d) for dimension %d of size %d", r.Start, r.Stop, i, d))
		}
		starts[i] = r.Start
		outShape[i] = stop - r.Start
	}

	out, err := tensor.NewRaw(outShape, t.DType())
	if err != nil {
		panic(fmt.Sprintf("slice: %v", err))
	}

	if t.DType() == tensor.Bool {
		gatherRegionBool(out.AsBool(), t.raw.AsBool(), shape, outShape, starts)
		return NewLeaf(out, t.backend, false)
	}
	gatherRegion(out.AsFloat32(), t.raw.AsFloat32(), shape, outShape, starts)

	return newFromOp(out, t.backend, &sliceOp{x: t, starts: starts}, t)
}

func (op *sliceOp) Inputs() []*Tensor {
	return []*Tensor{op.x}
}

func (op *sliceOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	grad := mustRaw(op.x.Shape())
	scatterRegion(grad.AsFloat32(), outputGrad.AsFloat32(), op.x.Shape(), outputGrad.Shape(), op.starts)
	return []*tensor.RawTensor{grad}
}

// regionIndex maps flat position i within the region (regionShape) to the
// corresponding flat position in the full tensor (fullStrides), offset by
// starts.
func regionIndex(i int, regionShape tensor.Shape, fullStrides, starts []int) int {
	idx := 0
	for d := len(regionShape) - 1; d >= 0; d-- {
		coord := i % regionShape[d]
		i /= regionShape[d]
		idx += (coord + starts[d]) * fullStrides[d]
	}
	return idx
}

func gatherRegion(dst, src []float32, fullShape, regionShape tensor.Shape, starts []int) {
	fullStrides := fullShape.ComputeStrides()
	for i := range dst {
		dst[i] = src[regionIndex(i, regionShape, fullStrides, starts)]
	}
}

func gatherRegionBool(dst, src []bool, fullShape, regionShape tensor.Shape, starts []int) {
	fullStrides := fullShape.ComputeStrides()
	for i := range dst {
		dst[i] = src[regionIndex(i, regionShape, fullStrides, starts)]
	}
}

func scatterRegion(dst, src []float32, fullShape, regionShape tensor.Shape, starts []int) {
	fullStrides := fullShape.ComputeStrides()
	for i := range src {
		dst[regionIndex(i, regionShape, fullStrides, starts)] = src[i]
	}
}
