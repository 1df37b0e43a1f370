package nn

import "github.com/mint-ml/mint/tensor"

// Parameter is a named tensor that always accumulates gradients. Optimizers
// read its grad buffer and update its data in place.
type Parameter struct {
	name   string
	tensor *tensor.Tensor
}

// NewParameter wraps a tensor as a learnable parameter, forcing gradient
// tracking on.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t.RequireGrad(),
	}
}

// Name returns the parameter's name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the underlying tensor for use in forward computations.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Shape returns the parameter's shape.
func (p *Parameter) Shape() tensor.Shape {
	return p.tensor.Shape()
}

// Data returns the parameter's values (zero-copy); optimizers mutate it in
// place.
func (p *Parameter) Data() []float32 {
	return p.tensor.Data()
}

// Grad returns the accumulated gradient buffer, or nil before the first
// backward pass.
func (p *Parameter) Grad() *tensor.RawTensor {
	return p.tensor.Grad()
}

// ZeroGrad resets the parameter's gradient to zero.
func (p *Parameter) ZeroGrad() {
	p.tensor.ZeroGrad()
}
