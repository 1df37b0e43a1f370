package cpu

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/mint-ml/mint/internal/tensor"
)

// Softmax computes softmax along the given dimension for a Float32 tensor of
// any rank. Each slice along dim is max-shifted for numerical stability:
//
//	softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
func (cpu *CPUBackend) Softmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	if x.DType() != tensor.Float32 {
		panic(fmt.Sprintf("softmax: expected float32 operand, got %s", x.DType()))
	}

	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("softmax: invalid dim %d for %dD tensor", dim, ndim))
	}

	result, err := tensor.NewRaw(shape, tensor.Float32)
	if err != nil {
		panic(fmt.Sprintf("softmax: %v", err))
	}

	// View the tensor as [outer, n, inner] with n = shape[dim].
	outer, n, inner := splitAtDim(shape, dim)

	src := x.AsFloat32()
	dst := result.AsFloat32()

	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			base := o*n*inner + in

			maxVal := src[base]
			for j := 1; j < n; j++ {
				if v := src[base+j*inner]; v > maxVal {
					maxVal = v
				}
			}

			sumExp := float32(0)
			for j := 0; j < n; j++ {
				idx := base + j*inner
				dst[idx] = math32.Exp(src[idx] - maxVal)
				sumExp += dst[idx]
			}

			for j := 0; j < n; j++ {
				dst[base+j*inner] /= sumExp
			}
		}
	}

	return result
}

// splitAtDim factors a shape into the element counts before, at, and after
// the given dimension.
func splitAtDim(shape tensor.Shape, dim int) (outer, n, inner int) {
	outer, n, inner = 1, shape[dim], 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	return outer, n, inner
}
