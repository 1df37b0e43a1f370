// Package autodiff implements mint's reverse-mode automatic differentiation.
//
// Every differentiable operation records itself as the producer of its output
// Tensor and keeps references to its input Tensors, forming an implicit DAG
// during the forward pass. Backward walks that DAG once, in reverse
// topological order, accumulating gradients into every differentiable leaf.
//
// Architecture:
//   - Tensor: value + graph node (raw buffer, optional grad, producer ref)
//   - Operation: one struct per op kind, carrying exactly the forward
//     metadata its backward rule needs
//   - Backward: DFS topological sort keyed by tensor identity, gradient map
//     with accumulate-not-overwrite semantics
package autodiff

import (
	"fmt"

	"github.com/mint-ml/mint/internal/tensor"
)

// Tensor is a shaped, dtype-tagged dense array with optional gradient
// tracking. A Tensor exclusively owns its data and grad buffers; producer
// operations are shared by reference, so the upstream graph stays alive as
// long as any downstream tensor is reachable.
type Tensor struct {
	raw          *tensor.RawTensor
	backend      tensor.Backend
	requiresGrad bool
	grad         *tensor.RawTensor // lazily created on first accumulation
	producer     Operation         // nil for leaves
}

// Operation represents a differentiable operation in the computation graph.
// An operation is created exactly once per forward invocation and is
// immutable afterwards.
type Operation interface {
	// Inputs returns the operation's input tensors, in order.
	Inputs() []*Tensor

	// Backward computes one gradient contribution per input given the
	// output gradient. A nil entry means no gradient flows to that input.
	Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor
}

// NewLeaf creates a leaf tensor (no producer) over a raw buffer.
// Bool tensors are structurally non-differentiable: requiresGrad is forced
// to false for them.
func NewLeaf(raw *tensor.RawTensor, backend tensor.Backend, requiresGrad bool) *Tensor {
	if !raw.DType().Differentiable() {
		requiresGrad = false
	}
	return &Tensor{
		raw:          raw,
		backend:      backend,
		requiresGrad: requiresGrad,
	}
}

// newFromOp creates an operation output tensor. The output requires grad if
// any input does; the producer is only recorded in that case, so detached
// subgraphs stay out of the backward traversal.
func newFromOp(raw *tensor.RawTensor, backend tensor.Backend, op Operation, inputs ...*Tensor) *Tensor {
	requires := false
	for _, in := range inputs {
		if in.requiresGrad {
			requires = true
			break
		}
	}
	requires = requires && raw.DType().Differentiable()

	t := &Tensor{
		raw:          raw,
		backend:      backend,
		requiresGrad: requires,
	}
	if requires {
		t.producer = op
	}
	return t
}

// Raw returns the underlying raw buffer.
func (t *Tensor) Raw() *tensor.RawTensor {
	return t.raw
}

// Backend returns the numeric backend this tensor computes with.
func (t *Tensor) Backend() tensor.Backend {
	return t.backend
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() tensor.Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor) DType() tensor.DataType {
	return t.raw.DType()
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.raw.NumElements()
}

// Data returns the tensor's elements as []float32 (zero-copy).
// Panics for Bool tensors; use Bools instead.
func (t *Tensor) Data() []float32 {
	return t.raw.AsFloat32()
}

// Bools returns the tensor's elements as []bool (zero-copy).
// Panics for Float32 tensors.
func (t *Tensor) Bools() []bool {
	return t.raw.AsBool()
}

// Item returns the value of a size-1 Float32 tensor.
// Panics otherwise.
func (t *Tensor) Item() float32 {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.Shape()))
	}
	return t.Data()[0]
}

// Grad returns the accumulated gradient buffer, or nil if no gradient has
// flowed to this tensor yet.
func (t *Tensor) Grad() *tensor.RawTensor {
	return t.grad
}

// RequiresGrad reports whether this tensor participates in gradient
// accumulation.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// RequireGrad marks the tensor for gradient accumulation and returns it for
// chaining. No-op for Bool tensors.
func (t *Tensor) RequireGrad() *Tensor {
	if t.DType().Differentiable() {
		t.requiresGrad = true
	}
	return t
}

// IsLeaf reports whether the tensor was created directly rather than by a
// differentiable operation.
func (t *Tensor) IsLeaf() bool {
	return t.producer == nil
}

// Detach returns a tensor sharing this tensor's buffer but disconnected from
// the graph: no producer, no gradient tracking.
func (t *Tensor) Detach() *Tensor {
	return &Tensor{
		raw:     t.raw,
		backend: t.backend,
	}
}

// ZeroGrad resets the gradient to all-zeros of the data shape, creating the
// buffer if absent. The tensor stays attached to its producer. Idempotent;
// no-op for Bool tensors.
func (t *Tensor) ZeroGrad() {
	if !t.DType().Differentiable() {
		return
	}
	if t.grad == nil {
		grad, err := tensor.NewRaw(t.Shape(), tensor.Float32)
		if err != nil {
			panic(fmt.Sprintf("zero_grad: %v", err))
		}
		t.grad = grad
		return
	}
	data := t.grad.AsFloat32()
	for i := range data {
		data[i] = 0
	}
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), t.Shape())
}

// promoteFloat returns the tensor itself for Float32, or a non-differentiable
// Float32 cast for Bool (per the dtype promotion rules, the boolean operand
// of a mixed operation contributes values but never receives gradient).
func (t *Tensor) promoteFloat() *Tensor {
	if t.DType() == tensor.Float32 {
		return t
	}
	return NewLeaf(t.backend.Cast(t.raw, tensor.Float32), t.backend, false)
}

// promotePair promotes both operands of a binary op to Float32.
func promotePair(a, b *Tensor) (*Tensor, *Tensor) {
	return a.promoteFloat(), b.promoteFloat()
}

// scalarLike lifts a scalar value to a non-differentiable scalar tensor on
// this tensor's backend.
func (t *Tensor) scalarLike(v float32) *Tensor {
	raw, err := tensor.Full(tensor.Shape{}, v)
	if err != nil {
		panic(fmt.Sprintf("scalar: %v", err))
	}
	return NewLeaf(raw, t.backend, false)
}
