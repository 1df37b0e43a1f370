package autodiff

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mint-ml/mint/internal/tensor"
)

func TestExpBackward(t *testing.T) {
	x := scalarLeaf(t, 1)

	y := x.Exp()
	require.NoError(t, y.Backward(nil))

	assert.InDelta(t, math32.E, gradOf(t, x)[0], 1e-5)
}

func TestLogBackward(t *testing.T) {
	x := scalarLeaf(t, 4)

	y := x.Log()
	require.NoError(t, y.Backward(nil))

	assert.InDelta(t, 0.25, gradOf(t, x)[0], 1e-6)
}

func TestReLUBackwardMasksNegatives(t *testing.T) {
	x := leaf(t, []float32{-2, -0.5, 0, 0.5, 2}, tensor.Shape{5})

	y := x.ReLU()
	assert.Equal(t, []float32{0, 0, 0, 0.5, 2}, y.Data())

	require.NoError(t, y.Sum().Backward(nil))
	assert.Equal(t, []float32{0, 0, 0, 1, 1}, gradOf(t, x))
}

func TestLeakyReLUBackward(t *testing.T) {
	x := leaf(t, []float32{-2, 3}, tensor.Shape{2})

	y := x.LeakyReLU(0.1)
	assert.InDelta(t, -0.2, y.Data()[0], 1e-6)
	assert.InDelta(t, 3.0, y.Data()[1], 1e-6)

	require.NoError(t, y.Sum().Backward(nil))
	grad := gradOf(t, x)
	assert.InDelta(t, 0.1, grad[0], 1e-6)
	assert.InDelta(t, 1.0, grad[1], 1e-6)
}

func TestSigmoidBackward(t *testing.T) {
	x := scalarLeaf(t, 0)

	y := x.Sigmoid()
	assert.InDelta(t, 0.5, y.Item(), 1e-6)

	require.NoError(t, y.Backward(nil))
	assert.InDelta(t, 0.25, gradOf(t, x)[0], 1e-6) // σ(1-σ) at 0
}

func TestTanhBackward(t *testing.T) {
	x := scalarLeaf(t, 0.5)

	y := x.Tanh()
	require.NoError(t, y.Backward(nil))

	th := math32.Tanh(0.5)
	assert.InDelta(t, 1-th*th, gradOf(t, x)[0], 1e-5)
}

func TestSoftmaxForward(t *testing.T) {
	x := leaf(t, []float32{1, 2, 3, 1, 2, 3}, tensor.Shape{2, 3})

	y := x.Softmax(1)
	data := y.Data()
	for row := 0; row < 2; row++ {
		var sum float32
		for col := 0; col < 3; col++ {
			sum += data[row*3+col]
		}
		assert.InDelta(t, 1.0, sum, 1e-6)
	}
	assert.Less(t, data[0], data[1])
	assert.Less(t, data[1], data[2])
}

func TestSoftmaxBackwardUniformSeedIsZero(t *testing.T) {
	// Softmax outputs sum to 1, so a constant seed produces zero gradient.
	x := leaf(t, []float32{1, 2, 3}, tensor.Shape{1, 3})

	y := x.Softmax(1)
	require.NoError(t, y.Sum().Backward(nil))

	for _, g := range gradOf(t, x) {
		assert.InDelta(t, 0.0, g, 1e-6)
	}
}

func TestSoftmaxNegativeDim(t *testing.T) {
	x := leaf(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	a := x.Softmax(1)
	b := x.Softmax(-1)
	assert.Equal(t, a.Data(), b.Data())
}

func TestBoolInputPromotesThroughActivation(t *testing.T) {
	m := boolLeaf(t, []bool{true, false}, tensor.Shape{2})

	y := m.Exp()
	assert.Equal(t, tensor.Float32, y.DType())
	assert.InDelta(t, math32.E, y.Data()[0], 1e-5)
	assert.InDelta(t, 1.0, y.Data()[1], 1e-5)
	assert.False(t, y.RequiresGrad())
}
