package autodiff

import (
	"fmt"

	"github.com/mint-ml/mint/internal/tensor"
)

// reduceBroadcast reduces a gradient computed at the broadcast output shape
// back to an operand's original shape: leading padded dimensions are summed
// away, and dimensions the operand held at size 1 are summed with keep-dim.
func reduceBroadcast(grad *tensor.RawTensor, target tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(target) {
		return grad.Clone()
	}
	if len(target) == 0 {
		return backend.Sum(grad)
	}

	result := grad
	for len(result.Shape()) > len(target) {
		result = backend.SumDim(result, 0, false)
	}
	for i, d := range target {
		if d == 1 && result.Shape()[i] > 1 {
			result = backend.SumDim(result, i, true)
		}
	}
	if !result.Shape().Equal(target) {
		result = backend.Reshape(result, target)
	}
	if result == grad {
		result = grad.Clone()
	}
	return result
}

// broadcastTo expands src to the target shape under NumPy broadcasting rules
// (src's shape must be right-alignable against target).
func broadcastTo(src *tensor.RawTensor, target tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if src.Shape().Equal(target) {
		return src.Clone()
	}
	ones, err := tensor.Ones(target)
	if err != nil {
		panic(fmt.Sprintf("broadcast_to: %v", err))
	}
	return backend.Mul(ones, src)
}

// addInPlace accumulates src into dst element-wise. Shapes must match.
func addInPlace(dst, src *tensor.RawTensor) {
	if !dst.Shape().Equal(src.Shape()) {
		panic(fmt.Sprintf("gradient accumulation shape mismatch: %v vs %v", dst.Shape(), src.Shape()))
	}
	d := dst.AsFloat32()
	for i, v := range src.AsFloat32() {
		d[i] += v
	}
}
