package cpu

import (
	"github.com/mint-ml/mint/internal/tensor"
)

// mulBool computes element-wise logical AND of two Bool tensors with
// broadcasting. This is the one boolean operation that preserves Bool dtype.
func mulBool(a, b *tensor.RawTensor) *tensor.RawTensor {
	result, outShape := binaryOut("mul", a, b, tensor.Bool)

	aData := a.AsBool()
	bData := b.AsBool()
	dst := result.AsBool()

	if a.Shape().Equal(b.Shape()) {
		for i := range aData {
			dst[i] = aData[i] && bData[i]
		}
		return result
	}

	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(a.Shape(), outShape)
	bStrides := computeBroadcastStridesForShape(b.Shape(), outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		aIdx := computeFlatIndex(i, outStrides, aStrides)
		bIdx := computeFlatIndex(i, outStrides, bStrides)
		dst[i] = aData[aIdx] && bData[bIdx]
	}

	return result
}
