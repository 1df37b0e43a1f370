package functional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mint-ml/mint/tensor"
)

func TestReLU(t *testing.T) {
	x := tensor.MustNew([]float32{-1, 0, 2})
	assert.Equal(t, []float32{0, 0, 2}, ReLU(x).Data())
}

func TestLeakyReLU(t *testing.T) {
	x := tensor.MustNew([]float32{-10, 5})

	y := LeakyReLU(x, 0.1)
	assert.InDelta(t, -1.0, y.Data()[0], 1e-6)
	assert.InDelta(t, 5.0, y.Data()[1], 1e-6)
}

func TestSigmoidTanh(t *testing.T) {
	x := tensor.MustNew(0.0)

	assert.InDelta(t, 0.5, Sigmoid(x).Item(), 1e-6)
	assert.InDelta(t, 0.0, Tanh(x).Item(), 1e-6)
}

func TestExpLogRoundTrip(t *testing.T) {
	x := tensor.MustNew([]float32{0.5, 1, 2})

	y := Log(Exp(x))
	for i, v := range y.Data() {
		assert.InDelta(t, x.Data()[i], v, 1e-5)
	}
}

func TestSoftmaxRows(t *testing.T) {
	x := tensor.MustNew([][]float32{{1, 2, 3}, {1, 1, 1}})

	y := Softmax(x, 1)
	data := y.Data()
	for row := 0; row < 2; row++ {
		var sum float32
		for col := 0; col < 3; col++ {
			sum += data[row*3+col]
		}
		assert.InDelta(t, 1.0, sum, 1e-6)
	}
	assert.InDelta(t, 1.0/3.0, data[3], 1e-6)
}

func TestSum(t *testing.T) {
	x := tensor.MustNew([][]float32{{1, 2}, {3, 4}})

	assert.Equal(t, []float32{4, 6}, Sum(x, 0, false).Data())

	kept := Sum(x, 1, true)
	assert.Equal(t, tensor.Shape{2, 1}, kept.Shape())
	assert.Equal(t, []float32{3, 7}, kept.Data())

	assert.InDelta(t, 10.0, SumAll(x).Item(), 1e-6)
}

func TestFunctionalBackwardFlows(t *testing.T) {
	x := tensor.MustNew([]float32{-1, 2})

	loss := SumAll(ReLU(x))
	require.NoError(t, loss.Backward(nil))

	assert.Equal(t, []float32{0, 1}, x.Grad().AsFloat32())
}
