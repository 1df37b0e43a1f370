// Package functional exposes mint's differentiable operations as free
// functions, mirroring the method API on tensor.Tensor for callers that
// prefer f(x) composition.
package functional

import "github.com/mint-ml/mint/tensor"

// Exp returns e^t element-wise.
func Exp(t *tensor.Tensor) *tensor.Tensor {
	return t.Exp()
}

// Log returns the natural logarithm of t element-wise.
func Log(t *tensor.Tensor) *tensor.Tensor {
	return t.Log()
}

// ReLU returns max(0, t) element-wise.
func ReLU(t *tensor.Tensor) *tensor.Tensor {
	return t.ReLU()
}

// LeakyReLU returns t where positive and negativeSlope*t otherwise.
func LeakyReLU(t *tensor.Tensor, negativeSlope float32) *tensor.Tensor {
	return t.LeakyReLU(negativeSlope)
}

// Sigmoid returns 1/(1+e^-t) element-wise.
func Sigmoid(t *tensor.Tensor) *tensor.Tensor {
	return t.Sigmoid()
}

// Tanh returns the hyperbolic tangent of t element-wise.
func Tanh(t *tensor.Tensor) *tensor.Tensor {
	return t.Tanh()
}

// Softmax normalizes t along dim; negative dims count from the end.
func Softmax(t *tensor.Tensor, dim int) *tensor.Tensor {
	return t.Softmax(dim)
}

// Sum reduces t along axis (negative axes count from the end), keeping the
// reduced dimension when keepDims is set.
func Sum(t *tensor.Tensor, axis int, keepDims bool) *tensor.Tensor {
	return t.SumDim(axis, keepDims)
}

// SumAll reduces t over all elements to a scalar.
func SumAll(t *tensor.Tensor) *tensor.Tensor {
	return t.Sum()
}
