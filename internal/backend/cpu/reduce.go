package cpu

import (
	"fmt"

	"github.com/mint-ml/mint/internal/tensor"
)

// Sum reduces a Float32 tensor over all axes to a scalar (empty shape).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() != tensor.Float32 {
		panic(fmt.Sprintf("sum: expected float32 operand, got %s", x.DType()))
	}

	result, err := tensor.NewRaw(tensor.Shape{}, tensor.Float32)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	var total float32
	for _, v := range x.AsFloat32() {
		total += v
	}
	result.AsFloat32()[0] = total

	return result
}

// SumDim sums a Float32 tensor along one dimension. With keepDim the reduced
// dimension is retained with size 1, otherwise it is removed (a 1-D input
// reduces to a scalar).
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	if x.DType() != tensor.Float32 {
		panic(fmt.Sprintf("sum_dim: expected float32 operand, got %s", x.DType()))
	}

	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("sum_dim: invalid dim %d for shape %v", dim, shape))
	}

	outShape := make(tensor.Shape, 0, ndim)
	for i, d := range shape {
		switch {
		case i != dim:
			outShape = append(outShape, d)
		case keepDim:
			outShape = append(outShape, 1)
		}
	}

	result, err := tensor.NewRaw(outShape, tensor.Float32)
	if err != nil {
		panic(fmt.Sprintf("sum_dim: %v", err))
	}

	outer, n, inner := splitAtDim(shape, dim)
	src := x.AsFloat32()
	dst := result.AsFloat32()

	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			var sum float32
			base := o*n*inner + in
			for j := 0; j < n; j++ {
				sum += src[base+j*inner]
			}
			dst[o*inner+in] = sum
		}
	}

	return result
}
