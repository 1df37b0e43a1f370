package nn

import (
	"math"

	"github.com/mint-ml/mint/tensor"
)

// Linear is a fully connected layer: output = input @ weightᵀ + bias.
//
// The weight is stored [outFeatures, inFeatures] and transposed during the
// forward pass, so gradients flow to the stored layout.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter
	bias        *Parameter
}

// NewLinear creates a linear layer with Xavier-uniform initialized weights
// and zero bias.
func NewLinear(inFeatures, outFeatures int) *Linear {
	bound := float32(math.Sqrt(6.0 / float64(inFeatures+outFeatures)))
	weight := uniform(tensor.Shape{outFeatures, inFeatures}, -bound, bound)

	bias, err := tensor.Zeros(tensor.Shape{outFeatures})
	if err != nil {
		panic(err)
	}

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
	}
}

// Forward computes input @ weightᵀ + bias for input of shape
// [batch, inFeatures].
func (l *Linear) Forward(input *tensor.Tensor) *tensor.Tensor {
	return input.MatMul(l.weight.Tensor().Transpose()).Add(l.bias.Tensor())
}

// Parameters returns the layer's weight and bias.
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// uniform samples a tensor from U(low, high).
func uniform(shape tensor.Shape, low, high float32) *tensor.Tensor {
	t, err := tensor.Rand(shape)
	if err != nil {
		panic(err)
	}
	data := t.Data()
	for i, v := range data {
		data[i] = low + v*(high-low)
	}
	return t
}
