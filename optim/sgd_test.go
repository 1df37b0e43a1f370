package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mint-ml/mint/nn"
	"github.com/mint-ml/mint/tensor"
)

func param(t *testing.T, name string, data []float32) *nn.Parameter {
	t.Helper()
	x, err := tensor.FromSlice(data, tensor.Shape{len(data)})
	require.NoError(t, err)
	return nn.NewParameter(name, x)
}

func TestSGDStep(t *testing.T) {
	p := param(t, "w", []float32{1, 2})

	// loss = Σ w² → grad = 2w
	loss := p.Tensor().Mul(p.Tensor()).Sum()
	require.NoError(t, loss.Backward(nil))

	sgd := NewSGD([]*nn.Parameter{p}, SGDConfig{LR: 0.1})
	sgd.Step()

	assert.InDelta(t, 0.8, p.Data()[0], 1e-6) // 1 - 0.1*2
	assert.InDelta(t, 1.6, p.Data()[1], 1e-6) // 2 - 0.1*4
}

func TestSGDSkipsNilGrad(t *testing.T) {
	p := param(t, "w", []float32{5})

	sgd := NewSGD([]*nn.Parameter{p}, SGDConfig{LR: 0.1})
	sgd.Step()

	assert.Equal(t, []float32{5}, p.Data())
}

func TestSGDMomentum(t *testing.T) {
	p := param(t, "w", []float32{0})
	sgd := NewSGD([]*nn.Parameter{p}, SGDConfig{LR: 1, Momentum: 0.5})

	// Constant gradient of 1 over two steps.
	p.ZeroGrad()
	p.Grad().AsFloat32()[0] = 1
	sgd.Step()
	assert.InDelta(t, -1.0, p.Data()[0], 1e-6) // v=1

	p.Grad().AsFloat32()[0] = 1
	sgd.Step()
	assert.InDelta(t, -2.5, p.Data()[0], 1e-6) // v=1.5
}

func TestSGDZeroGrad(t *testing.T) {
	p := param(t, "w", []float32{1})
	require.NoError(t, p.Tensor().Mul(p.Tensor()).Sum().Backward(nil))
	require.NotNil(t, p.Grad())

	sgd := NewSGD([]*nn.Parameter{p}, SGDConfig{LR: 0.1})
	sgd.ZeroGrad()

	assert.Equal(t, []float32{0}, p.Grad().AsFloat32())
}

func TestSGDTrainsLinearLayer(t *testing.T) {
	layer := nn.NewLinear(1, 1)
	copy(layer.Weight().Data(), []float32{0})
	copy(layer.Bias().Data(), []float32{0})

	input := tensor.MustNew([][]float32{{1}}, tensor.WithRequiresGrad(false))
	target := tensor.MustNew([][]float32{{2}}, tensor.WithRequiresGrad(false))

	sgd := NewSGD(layer.Parameters(), SGDConfig{LR: 0.1})

	var loss float32
	for i := 0; i < 50; i++ {
		sgd.ZeroGrad()
		diff := layer.Forward(input).Sub(target)
		l := diff.Mul(diff).Sum()
		require.NoError(t, l.Backward(nil))
		sgd.Step()
		loss = l.Item()
	}

	assert.Less(t, loss, float32(0.01))
}
