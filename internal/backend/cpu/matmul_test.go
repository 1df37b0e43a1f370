package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mint-ml/mint/internal/tensor"
)

func TestMatMul(t *testing.T) {
	backend := New()
	a := rawFloats(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := rawFloats(t, []float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	result := backend.MatMul(a, b)
	assert.Equal(t, tensor.Shape{2, 2}, result.Shape())
	assert.Equal(t, []float32{58, 64, 139, 154}, result.AsFloat32())
}

func TestMatMulIdentity(t *testing.T) {
	backend := New()
	a := rawFloats(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	eye := rawFloats(t, []float32{1, 0, 0, 1}, tensor.Shape{2, 2})

	result := backend.MatMul(a, eye)
	assert.Equal(t, a.AsFloat32(), result.AsFloat32())
}

func TestMatMulShapeMismatchPanics(t *testing.T) {
	backend := New()
	a := rawFloats(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := rawFloats(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	assert.Panics(t, func() { backend.MatMul(a, b) })
}

func TestMatMulRequires2D(t *testing.T) {
	backend := New()
	a := rawFloats(t, []float32{1, 2, 3}, tensor.Shape{3})
	b := rawFloats(t, []float32{1, 2, 3}, tensor.Shape{3})

	assert.Panics(t, func() { backend.MatMul(a, b) })
}
