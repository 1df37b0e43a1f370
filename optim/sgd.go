// Package optim implements gradient-based parameter optimizers.
package optim

import "github.com/mint-ml/mint/nn"

// SGDConfig configures stochastic gradient descent.
type SGDConfig struct {
	// LR is the learning rate.
	LR float32

	// Momentum enables classical momentum when non-zero.
	Momentum float32
}

// SGD updates parameters in place along the negative gradient:
//
//	v = momentum*v + grad
//	p = p - lr*v
//
// With zero momentum this reduces to plain gradient descent.
type SGD struct {
	params     []*nn.Parameter
	config     SGDConfig
	velocities map[*nn.Parameter][]float32
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return &SGD{
		params:     params,
		config:     config,
		velocities: make(map[*nn.Parameter][]float32),
	}
}

// Step applies one update to every parameter that has a gradient.
// Parameters whose grad is still nil are skipped.
func (s *SGD) Step() {
	for _, p := range s.params {
		grad := p.Grad()
		if grad == nil {
			continue
		}
		g := grad.AsFloat32()
		data := p.Data()

		if s.config.Momentum == 0 {
			for i := range data {
				data[i] -= s.config.LR * g[i]
			}
			continue
		}

		v, ok := s.velocities[p]
		if !ok {
			v = make([]float32, len(data))
			s.velocities[p] = v
		}
		for i := range data {
			v[i] = s.config.Momentum*v[i] + g[i]
			data[i] -= s.config.LR * v[i]
		}
	}
}

// ZeroGrad resets the gradients of all managed parameters.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}
