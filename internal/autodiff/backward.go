package autodiff

import (
	"errors"
	"fmt"

	"github.com/mint-ml/mint/internal/tensor"
)

var (
	// ErrNonScalarBackward is returned by Backward when no explicit gradient
	// is given for an output with more than one element.
	ErrNonScalarBackward = errors.New("grad must be specified for non-scalar outputs")

	// ErrGradShape is returned when the explicit gradient does not match the
	// output tensor's shape or dtype.
	ErrGradShape = errors.New("gradient does not match output")

	// ErrNotDifferentiable is returned when Backward is called on a tensor
	// whose dtype carries no gradient.
	ErrNotDifferentiable = errors.New("backward requires a float32 tensor")
)

// Backward runs reverse-mode differentiation from t, accumulating gradients
// into every differentiable leaf reachable through producer references.
//
// grad seeds the traversal; nil is allowed only for size-1 outputs, where the
// seed defaults to ones. Validation happens before any gradient state is
// touched, so a failed call leaves all leaves unchanged.
//
// Calling Backward twice on the same graph adds the second pass's gradients
// on top of the first; interleave ZeroGrad to start fresh.
func (t *Tensor) Backward(grad *Tensor) error {
	if t.DType() != tensor.Float32 {
		return fmt.Errorf("%w, got %s", ErrNotDifferentiable, t.DType())
	}

	var seed *tensor.RawTensor
	switch {
	case grad == nil:
		if t.NumElements() != 1 {
			return fmt.Errorf("%w: output shape %v", ErrNonScalarBackward, t.Shape())
		}
		ones, err := tensor.Ones(t.Shape())
		if err != nil {
			return err
		}
		seed = ones
	default:
		if grad.DType() != tensor.Float32 {
			return fmt.Errorf("%w: gradient dtype %s", ErrGradShape, grad.DType())
		}
		if !grad.Shape().Equal(t.Shape()) {
			return fmt.Errorf("%w: gradient shape %v, output shape %v", ErrGradShape, grad.Shape(), t.Shape())
		}
		seed = grad.raw.Clone()
	}

	order := topoSort(t)

	// Gradient map keyed by tensor identity. Multiple graph paths into the
	// same tensor accumulate here before its own backward rule runs.
	grads := map[*Tensor]*tensor.RawTensor{t: seed}

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		outputGrad, ok := grads[node]
		if !ok || node.producer == nil {
			continue
		}

		inputGrads := node.producer.Backward(outputGrad)
		inputs := node.producer.Inputs()

		for j, in := range inputs {
			if j >= len(inputGrads) || inputGrads[j] == nil {
				continue
			}
			if in.DType() != tensor.Float32 {
				continue
			}
			if existing, found := grads[in]; found {
				addInPlace(existing, inputGrads[j])
			} else {
				grads[in] = inputGrads[j]
			}
		}
	}

	for node, g := range grads {
		if node.producer != nil || !node.requiresGrad {
			continue
		}
		if node.grad == nil {
			node.grad = g.Clone()
		} else {
			addInPlace(node.grad, g)
		}
	}

	return nil
}

// topoSort returns the tensors reachable from root in topological order
// (inputs before outputs), via iterative DFS post-order.
func topoSort(root *Tensor) []*Tensor {
	visited := make(map[*Tensor]bool)
	var order []*Tensor

	var visit func(*Tensor)
	visit = func(node *Tensor) {
		if visited[node] {
			return
		}
		visited[node] = true
		if node.producer != nil {
			for _, in := range node.producer.Inputs() {
				visit(in)
			}
		}
		order = append(order, node)
	}
	visit(root)

	return order
}
