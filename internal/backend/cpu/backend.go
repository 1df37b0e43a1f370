// Package cpu implements the pure-Go CPU backend for mint's numeric kernels.
package cpu

import (
	"fmt"

	"github.com/mint-ml/mint/internal/tensor"
)

// CPUBackend implements tensor.Backend with plain Go loops.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// binaryOut validates a broadcast binary op and allocates its result tensor.
func binaryOut(name string, a, b *tensor.RawTensor, dtype tensor.DataType) (*tensor.RawTensor, tensor.Shape) {
	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, dtype)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}
	return result, outShape
}

// requireFloat32 panics unless both operands are Float32.
func requireFloat32(name string, a, b *tensor.RawTensor) {
	if a.DType() != tensor.Float32 || b.DType() != tensor.Float32 {
		panic(fmt.Sprintf("%s: expected float32 operands, got %s and %s", name, a.DType(), b.DType()))
	}
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	requireFloat32("add", a, b)
	result, outShape := binaryOut("add", a, b, tensor.Float32)

	if a.Shape().Equal(b.Shape()) {
		addVectorizedFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	} else {
		addBroadcastFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	}

	return result
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	requireFloat32("sub", a, b)
	result, outShape := binaryOut("sub", a, b, tensor.Float32)

	if a.Shape().Equal(b.Shape()) {
		subVectorizedFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	} else {
		subBroadcastFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	}

	return result
}

// Mul performs element-wise multiplication with broadcasting.
// For two Bool operands the kernel computes logical AND and the result
// stays Bool.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() == tensor.Bool && b.DType() == tensor.Bool {
		return mulBool(a, b)
	}

	requireFloat32("mul", a, b)
	result, outShape := binaryOut("mul", a, b, tensor.Float32)

	if a.Shape().Equal(b.Shape()) {
		mulVectorizedFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	} else {
		mulBroadcastFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	}

	return result
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	requireFloat32("div", a, b)
	result, outShape := binaryOut("div", a, b, tensor.Float32)

	if a.Shape().Equal(b.Shape()) {
		divVectorizedFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	} else {
		divBroadcastFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	}

	return result
}

// Reshape returns a tensor with the same data but a different shape.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}
	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			t.Shape(), newShape))
	}
	return t.WithShape(newShape)
}

// Transpose transposes the tensor by permuting its dimensions.
// With no axes given, all dimensions are reversed.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(newShape, t.DType())
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	if t.DType() != tensor.Float32 {
		panic(fmt.Sprintf("transpose: unsupported dtype %s", t.DType()))
	}
	transposeFloat32(result.AsFloat32(), t.AsFloat32(), shape, axes)

	return result
}

// Cast converts a tensor to a different data type.
// Bool→Float32 maps true to 1 and false to 0; Float32→Bool maps non-zero
// values to true.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if err := dtype.Validate(); err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}
	if x.DType() == dtype {
		return x.Clone()
	}

	result, err := tensor.NewRaw(x.Shape(), dtype)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	switch dtype {
	case tensor.Float32:
		src := x.AsBool()
		dst := result.AsFloat32()
		for i, v := range src {
			if v {
				dst[i] = 1
			}
		}
	case tensor.Bool:
		src := x.AsFloat32()
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	}

	return result
}
