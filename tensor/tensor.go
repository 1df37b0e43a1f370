// Package tensor is mint's public tensor API: construction from Go values,
// dtype selection, element-wise and matrix math, views, and reverse-mode
// gradients via Tensor.Backward.
//
// The graph machinery lives in internal/autodiff and the numeric kernels in
// internal/backend/cpu; this package re-exports the tensor type and wires a
// default backend so callers need a single import.
package tensor

import (
	"github.com/mint-ml/mint/internal/autodiff"
	"github.com/mint-ml/mint/internal/backend/cpu"
	"github.com/mint-ml/mint/internal/tensor"
)

type (
	// Tensor is a dense array with optional gradient tracking.
	Tensor = autodiff.Tensor

	// Range is a half-open [Start, Stop) slice interval.
	Range = autodiff.Range

	// Shape describes tensor dimensions.
	Shape = tensor.Shape

	// DataType identifies a tensor element type.
	DataType = tensor.DataType

	// RawTensor is the untracked storage buffer underlying a Tensor.
	RawTensor = tensor.RawTensor

	// Backend computes tensor kernels.
	Backend = tensor.Backend
)

const (
	// Float32 is the differentiable numeric dtype.
	Float32 = tensor.Float32

	// Bool is the non-differentiable mask dtype.
	Bool = tensor.Bool

	// End marks a Range that runs to the end of its dimension.
	End = autodiff.End
)

var (
	// All selects a full dimension when slicing.
	All = autodiff.All

	// ErrUnsupportedDType reports construction with a dtype outside the
	// registry.
	ErrUnsupportedDType = tensor.ErrUnsupportedDType

	// ErrNonScalarBackward reports Backward(nil) on a multi-element output.
	ErrNonScalarBackward = autodiff.ErrNonScalarBackward

	// ErrGradShape reports a seed gradient that does not match its output.
	ErrGradShape = autodiff.ErrGradShape

	// ErrNotDifferentiable reports Backward on a Bool tensor.
	ErrNotDifferentiable = autodiff.ErrNotDifferentiable
)

// R builds a slice Range; use End as stop to run to the end of the dimension.
func R(start, stop int) Range {
	return autodiff.R(start, stop)
}

// defaultBackend serves every tensor this package creates.
var defaultBackend tensor.Backend = cpu.New()
