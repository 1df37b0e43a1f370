package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScalar(t *testing.T) {
	x, err := New(2.0)
	require.NoError(t, err)

	assert.Equal(t, Shape{}, x.Shape())
	assert.Equal(t, Float32, x.DType())
	assert.InDelta(t, 2.0, x.Item(), 1e-6)
	assert.True(t, x.RequiresGrad())
}

func TestNewNested(t *testing.T) {
	x, err := New([][]float32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, x.Data())
}

func TestNewMixedNumericTypes(t *testing.T) {
	x, err := New([]any{1, 2.5, float32(3)})
	require.NoError(t, err)

	assert.Equal(t, Float32, x.DType())
	assert.Equal(t, []float32{1, 2.5, 3}, x.Data())
}

func TestNewBoolLiteral(t *testing.T) {
	x, err := New([]bool{true, false, true})
	require.NoError(t, err)

	assert.Equal(t, Bool, x.DType())
	assert.Equal(t, []bool{true, false, true}, x.Bools())
	assert.False(t, x.RequiresGrad())
}

func TestNewRagged(t *testing.T) {
	_, err := New([][]float32{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRaggedData)

	_, err = New([]any{[]float32{1, 2}, 3.0})
	assert.ErrorIs(t, err, ErrRaggedData)
}

func TestNewUnsupportedElement(t *testing.T) {
	_, err := New("not a tensor")
	assert.ErrorIs(t, err, ErrUnsupportedDType)

	_, err = New([]string{"a", "b"})
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestNewWithDType(t *testing.T) {
	x, err := New([]float64{1, 0, 2}, WithDType(Bool))
	require.NoError(t, err)
	assert.Equal(t, Bool, x.DType())
	assert.Equal(t, []bool{true, false, true}, x.Bools())

	y, err := New([]bool{true, false}, WithDType(Float32))
	require.NoError(t, err)
	assert.Equal(t, Float32, y.DType())
	assert.Equal(t, []float32{1, 0}, y.Data())
}

func TestNewWithInvalidDType(t *testing.T) {
	_, err := New(1.0, WithDType(DataType(42)))
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestNewWithRequiresGrad(t *testing.T) {
	x, err := New(1.0, WithRequiresGrad(false))
	require.NoError(t, err)
	assert.False(t, x.RequiresGrad())

	// Bool tensors never track gradients, even when asked to.
	y, err := New([]bool{true}, WithRequiresGrad(true))
	require.NoError(t, err)
	assert.False(t, y.RequiresGrad())
}

func TestCreationHelpers(t *testing.T) {
	zeros, err := Zeros(Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 0}, zeros.Data())

	ones, err := Ones(Shape{3})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, 1}, ones.Data())

	full, err := Full(Shape{2}, 7)
	require.NoError(t, err)
	assert.Equal(t, []float32{7, 7}, full.Data())

	s := Scalar(3)
	assert.Equal(t, Shape{}, s.Shape())
	assert.InDelta(t, 3.0, s.Item(), 1e-6)
}

func TestRandRanges(t *testing.T) {
	x, err := Rand(Shape{100})
	require.NoError(t, err)
	for _, v := range x.Data() {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}

	_, err = Randn(Shape{10})
	require.NoError(t, err)
}

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, x.Shape())

	_, err = FromSlice([]float32{1, 2}, Shape{3})
	assert.Error(t, err)
}

func TestEndToEndBackward(t *testing.T) {
	a := MustNew(2.0)
	b := MustNew(3.0)

	c := a.Mul(b).Add(a)
	require.NoError(t, c.Backward(nil))

	assert.Equal(t, []float32{4}, a.Grad().AsFloat32())
	assert.Equal(t, []float32{2}, b.Grad().AsFloat32())
}

func TestBackwardErrorSentinels(t *testing.T) {
	x := MustNew([]float32{1, 2, 3})

	err := x.Backward(nil)
	assert.ErrorIs(t, err, ErrNonScalarBackward)

	err = x.Backward(MustNew([]float32{1, 2}))
	assert.ErrorIs(t, err, ErrGradShape)

	mask := MustNew([]bool{true})
	assert.ErrorIs(t, mask.Backward(nil), ErrNotDifferentiable)
}

func TestPromotionMixedOperands(t *testing.T) {
	x := MustNew([]float32{1, 2, 3})
	mask := MustNew([]bool{true, false, true})

	y := x.Mul(mask)
	assert.Equal(t, Float32, y.DType())
	assert.Equal(t, []float32{1, 0, 3}, y.Data())

	z := mask.Mul(mask)
	assert.Equal(t, Bool, z.DType())
}

func TestSliceAndIndexThroughFacade(t *testing.T) {
	x := MustNew([][]float32{{1, 2, 3}, {4, 5, 6}})

	assert.Equal(t, []float32{2, 3, 5, 6}, x.Slice(All, R(1, 3)).Data())
	assert.Equal(t, []float32{4, 5, 6}, x.Index(1).Data())
	assert.Equal(t, []float32{3, 4, 5}, x.Reshape(Shape{6}).Slice(R(2, 5)).Data())
}
