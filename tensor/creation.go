package tensor

import (
	"math/rand"

	"github.com/mint-ml/mint/internal/autodiff"
	"github.com/mint-ml/mint/internal/tensor"
)

// FromSlice builds a Float32 tensor from a flat slice and an explicit shape.
// The data is copied.
func FromSlice(data []float32, shape Shape, opts ...Option) (*Tensor, error) {
	o := applyOptions(opts)
	raw, err := tensor.FromFloat32(data, shape)
	if err != nil {
		return nil, err
	}
	return newFloatLeaf(raw, o), nil
}

// FromBoolSlice builds a Bool tensor from a flat slice and an explicit shape.
// The data is copied. Bool tensors never track gradients.
func FromBoolSlice(data []bool, shape Shape, opts ...Option) (*Tensor, error) {
	o := applyOptions(opts)
	raw, err := tensor.FromBool(data, shape)
	if err != nil {
		return nil, err
	}
	return autodiff.NewLeaf(raw, o.backend, false), nil
}

// Zeros returns an all-zero Float32 tensor.
func Zeros(shape Shape, opts ...Option) (*Tensor, error) {
	o := applyOptions(opts)
	raw, err := tensor.Zeros(shape, Float32)
	if err != nil {
		return nil, err
	}
	return newFloatLeaf(raw, o), nil
}

// Ones returns an all-one Float32 tensor.
func Ones(shape Shape, opts ...Option) (*Tensor, error) {
	o := applyOptions(opts)
	raw, err := tensor.Ones(shape)
	if err != nil {
		return nil, err
	}
	return newFloatLeaf(raw, o), nil
}

// Full returns a Float32 tensor filled with a constant.
func Full(shape Shape, value float32, opts ...Option) (*Tensor, error) {
	o := applyOptions(opts)
	raw, err := tensor.Full(shape, value)
	if err != nil {
		return nil, err
	}
	return newFloatLeaf(raw, o), nil
}

// Scalar returns a zero-dimensional Float32 tensor holding one value.
func Scalar(value float32, opts ...Option) *Tensor {
	t, err := Full(Shape{}, value, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Rand returns a Float32 tensor with uniform samples from [0, 1).
func Rand(shape Shape, opts ...Option) (*Tensor, error) {
	return fill(shape, opts, rand.Float32)
}

// Randn returns a Float32 tensor with standard normal samples.
func Randn(shape Shape, opts ...Option) (*Tensor, error) {
	return fill(shape, opts, func() float32 {
		return float32(rand.NormFloat64())
	})
}

func fill(shape Shape, opts []Option, sample func() float32) (*Tensor, error) {
	o := applyOptions(opts)
	raw, err := tensor.NewRaw(shape, Float32)
	if err != nil {
		return nil, err
	}
	data := raw.AsFloat32()
	for i := range data {
		data[i] = sample()
	}
	return newFloatLeaf(raw, o), nil
}

// newFloatLeaf wraps a Float32 buffer as a leaf, tracking gradients unless
// WithRequiresGrad(false) was given.
func newFloatLeaf(raw *RawTensor, o options) *Tensor {
	requiresGrad := true
	if o.gradSet {
		requiresGrad = o.requiresGrad
	}
	return autodiff.NewLeaf(raw, o.backend, requiresGrad)
}
