package cpu

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/mint-ml/mint/internal/tensor"
)

// mapFloat32 applies f element-wise to a Float32 tensor, producing a new one.
func mapFloat32(name string, x *tensor.RawTensor, f func(float32) float32) *tensor.RawTensor {
	if x.DType() != tensor.Float32 {
		panic(fmt.Sprintf("%s: expected float32 operand, got %s", name, x.DType()))
	}

	result, err := tensor.NewRaw(x.Shape(), tensor.Float32)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	src := x.AsFloat32()
	dst := result.AsFloat32()
	for i, v := range src {
		dst[i] = f(v)
	}

	return result
}

// Exp computes the element-wise exponential.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return mapFloat32("exp", x, math32.Exp)
}

// Log computes the element-wise natural logarithm.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return mapFloat32("log", x, math32.Log)
}

// Sigmoid computes σ(x) = 1 / (1 + exp(-x)) element-wise.
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return mapFloat32("sigmoid", x, func(v float32) float32 {
		return 1 / (1 + math32.Exp(-v))
	})
}

// Tanh computes the element-wise hyperbolic tangent.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return mapFloat32("tanh", x, math32.Tanh)
}

// ReLU computes max(0, x) element-wise.
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return mapFloat32("relu", x, func(v float32) float32 {
		if v > 0 {
			return v
		}
		return 0
	})
}

// LeakyReLU computes x for x > 0 and negativeSlope*x otherwise.
func (cpu *CPUBackend) LeakyReLU(x *tensor.RawTensor, negativeSlope float32) *tensor.RawTensor {
	return mapFloat32("leaky_relu", x, func(v float32) float32 {
		if v > 0 {
			return v
		}
		return negativeSlope * v
	})
}

// Pow raises every element to the given scalar exponent.
func (cpu *CPUBackend) Pow(x *tensor.RawTensor, exponent float32) *tensor.RawTensor {
	return mapFloat32("pow", x, func(v float32) float32 {
		return math32.Pow(v, exponent)
	})
}

// Scale multiplies every element by a scalar factor.
func (cpu *CPUBackend) Scale(x *tensor.RawTensor, factor float32) *tensor.RawTensor {
	return mapFloat32("scale", x, func(v float32) float32 {
		return factor * v
	})
}
