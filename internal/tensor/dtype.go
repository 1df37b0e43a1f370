// Package tensor provides the core storage types for the mint framework:
// dense raw buffers, shapes with NumPy-style broadcasting, and the closed
// data-type registry.
package tensor

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDType is returned when a tensor is constructed with a data
// type outside the supported set {float32, bool}.
var ErrUnsupportedDType = errors.New("unsupported dtype: only float32 and bool are supported")

// DataType represents runtime type information for tensors.
// The set is closed: anything outside it is rejected at construction time,
// never coerced.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Bool
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Validate reports whether the value is one of the supported data types.
func (dt DataType) Validate() error {
	switch dt {
	case Float32, Bool:
		return nil
	default:
		return fmt.Errorf("%w (got %d)", ErrUnsupportedDType, int(dt))
	}
}

// Differentiable reports whether tensors of this data type can carry
// gradients. Bool tensors are structurally non-differentiable.
func (dt DataType) Differentiable() bool {
	return dt == Float32
}

// Promote returns the result data type of a binary operation between the two
// operand types. Only an operation between two Bool operands stays Bool;
// every other combination produces Float32.
func Promote(a, b DataType) DataType {
	if a == Bool && b == Bool {
		return Bool
	}
	return Float32
}
