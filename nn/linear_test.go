package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mint-ml/mint/tensor"
)

func TestLinearForwardShape(t *testing.T) {
	layer := NewLinear(3, 2)

	input := tensor.MustNew([][]float32{{1, 2, 3}, {4, 5, 6}})
	output := layer.Forward(input)

	assert.Equal(t, tensor.Shape{2, 2}, output.Shape())
}

func TestLinearForwardValues(t *testing.T) {
	layer := NewLinear(2, 2)

	// weight is [out, in]; fix it along with the bias for a known result.
	copy(layer.Weight().Data(), []float32{1, 2, 3, 4})
	copy(layer.Bias().Data(), []float32{10, 20})

	input := tensor.MustNew([][]float32{{1, 1}})
	output := layer.Forward(input)

	// [1,1] @ [[1,3],[2,4]] + [10,20] = [3+10, 7+20]
	assert.Equal(t, []float32{13, 27}, output.Data())
}

func TestLinearBackwardPopulatesGrads(t *testing.T) {
	layer := NewLinear(3, 2)

	input := tensor.MustNew([][]float32{{1, 2, 3}}, tensor.WithRequiresGrad(false))
	loss := layer.Forward(input).Sum()
	require.NoError(t, loss.Backward(nil))

	wGrad := layer.Weight().Grad()
	require.NotNil(t, wGrad)
	assert.Equal(t, tensor.Shape{2, 3}, wGrad.Shape())
	// d(loss)/dW[o,i] = input[i] for every output row.
	assert.Equal(t, []float32{1, 2, 3, 1, 2, 3}, wGrad.AsFloat32())

	bGrad := layer.Bias().Grad()
	require.NotNil(t, bGrad)
	assert.Equal(t, []float32{1, 1}, bGrad.AsFloat32())
}

func TestLinearXavierBounds(t *testing.T) {
	layer := NewLinear(8, 4)

	bound := float32(0.7071068) // sqrt(6/12)
	for _, v := range layer.Weight().Data() {
		assert.LessOrEqual(t, v, bound)
		assert.GreaterOrEqual(t, v, -bound)
	}
	for _, v := range layer.Bias().Data() {
		assert.Zero(t, v)
	}
}

func TestParameterForcesRequiresGrad(t *testing.T) {
	raw := tensor.MustNew([]float32{1, 2}, tensor.WithRequiresGrad(false))
	p := NewParameter("w", raw)

	assert.True(t, p.Tensor().RequiresGrad())
	assert.Equal(t, "w", p.Name())
	assert.Equal(t, tensor.Shape{2}, p.Shape())
}

func TestModuleZeroGrad(t *testing.T) {
	layer := NewLinear(2, 2)

	input := tensor.MustNew([][]float32{{1, 2}}, tensor.WithRequiresGrad(false))
	require.NoError(t, layer.Forward(input).Sum().Backward(nil))
	require.NotNil(t, layer.Weight().Grad())

	ZeroGrad(layer)
	for _, p := range layer.Parameters() {
		require.NotNil(t, p.Grad())
		for _, g := range p.Grad().AsFloat32() {
			assert.Zero(t, g)
		}
	}
}
