// Package nn provides neural network building blocks on top of mint's
// autodiff tensors: named parameters, the Module interface, and layers.
package nn

import "github.com/mint-ml/mint/tensor"

// Module is a unit of computation with learnable parameters.
type Module interface {
	// Forward computes the module's output for the given input.
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Parameters returns every learnable parameter of the module,
	// including those of nested modules.
	Parameters() []*Parameter
}

// ZeroGrad resets the gradients of all of a module's parameters to zero.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
