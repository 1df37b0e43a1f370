package autodiff

import "github.com/mint-ml/mint/internal/tensor"

// Element-wise unary operations. Each op caches whatever the closed-form
// derivative reads most cheaply: exp, sigmoid and tanh keep the output, log
// and the rectifiers keep the input.

// expOp: d(eˣ)/dx = eˣ (the cached output).
type expOp struct {
	x   *Tensor
	out *tensor.RawTensor
}

// Exp returns e^t element-wise, recording the operation for backward.
func (t *Tensor) Exp() *Tensor {
	x := t.promoteFloat()
	out := x.backend.Exp(x.raw)
	return newFromOp(out, x.backend, &expOp{x: x, out: out}, x)
}

func (op *expOp) Inputs() []*Tensor {
	return []*Tensor{op.x}
}

func (op *expOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{op.x.backend.Mul(outputGrad, op.out)}
}

// logOp: d(ln x)/dx = 1/x.
type logOp struct {
	x *Tensor
}

// Log returns the natural logarithm of t element-wise, recording the
// operation for backward.
func (t *Tensor) Log() *Tensor {
	x := t.promoteFloat()
	out := x.backend.Log(x.raw)
	return newFromOp(out, x.backend, &logOp{x: x}, x)
}

func (op *logOp) Inputs() []*Tensor {
	return []*Tensor{op.x}
}

func (op *logOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{op.x.backend.Div(outputGrad, op.x.raw)}
}

// reluOp: gradient passes where the input was strictly positive.
type reluOp struct {
	x *Tensor
}

// ReLU returns max(0, t) element-wise, recording the operation for backward.
func (t *Tensor) ReLU() *Tensor {
	x := t.promoteFloat()
	out := x.backend.ReLU(x.raw)
	return newFromOp(out, x.backend, &reluOp{x: x}, x)
}

func (op *reluOp) Inputs() []*Tensor {
	return []*Tensor{op.x}
}

func (op *reluOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	grad := mustRaw(op.x.Shape())
	src := op.x.raw.AsFloat32()
	g := outputGrad.AsFloat32()
	dst := grad.AsFloat32()
	for i, v := range src {
		if v > 0 {
			dst[i] = g[i]
		}
	}
	return []*tensor.RawTensor{grad}
}

// leakyReLUOp: gradient is 1 where the input was positive, negativeSlope
// elsewhere.
type leakyReLUOp struct {
	x             *Tensor
	negativeSlope float32
}

// LeakyReLU returns t where positive and negativeSlope*t otherwise, recording
// the operation for backward.
func (t *Tensor) LeakyReLU(negativeSlope float32) *Tensor {
	x := t.promoteFloat()
	out := x.backend.LeakyReLU(x.raw, negativeSlope)
	return newFromOp(out, x.backend, &leakyReLUOp{x: x, negativeSlope: negativeSlope}, x)
}

func (op *leakyReLUOp) Inputs() []*Tensor {
	return []*Tensor{op.x}
}

func (op *leakyReLUOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	grad := mustRaw(op.x.Shape())
	src := op.x.raw.AsFloat32()
	g := outputGrad.AsFloat32()
	dst := grad.AsFloat32()
	for i, v := range src {
		if v > 0 {
			dst[i] = g[i]
		} else {
			dst[i] = op.negativeSlope * g[i]
		}
	}
	return []*tensor.RawTensor{grad}
}

// sigmoidOp: dσ/dx = σ(x)(1-σ(x)), read off the cached output.
type sigmoidOp struct {
	x   *Tensor
	out *tensor.RawTensor
}

// Sigmoid returns 1/(1+e^-t) element-wise, recording the operation for
// backward.
func (t *Tensor) Sigmoid() *Tensor {
	x := t.promoteFloat()
	out := x.backend.Sigmoid(x.raw)
	return newFromOp(out, x.backend, &sigmoidOp{x: x, out: out}, x)
}

func (op *sigmoidOp) Inputs() []*Tensor {
	return []*Tensor{op.x}
}

func (op *sigmoidOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	grad := mustRaw(op.x.Shape())
	out := op.out.AsFloat32()
	g := outputGrad.AsFloat32()
	dst := grad.AsFloat32()
	for i, s := range out {
		dst[i] = s * (1 - s) * g[i]
	}
	return []*tensor.RawTensor{grad}
}

// tanhOp: d(tanh x)/dx = 1 - tanh²(x), read off the cached output.
type tanhOp struct {
	x   *Tensor
	out *tensor.RawTensor
}

// Tanh returns the hyperbolic tangent of t element-wise, recording the
// operation for backward.
func (t *Tensor) Tanh() *Tensor {
	x := t.promoteFloat()
	out := x.backend.Tanh(x.raw)
	return newFromOp(out, x.backend, &tanhOp{x: x, out: out}, x)
}

func (op *tanhOp) Inputs() []*Tensor {
	return []*Tensor{op.x}
}

func (op *tanhOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	grad := mustRaw(op.x.Shape())
	out := op.out.AsFloat32()
	g := outputGrad.AsFloat32()
	dst := grad.AsFloat32()
	for i, v := range out {
		dst[i] = (1 - v*v) * g[i]
	}
	return []*tensor.RawTensor{grad}
}

// mustRaw allocates a zeroed Float32 buffer of the given shape.
func mustRaw(shape tensor.Shape) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape, tensor.Float32)
	if err != nil {
		panic(err)
	}
	return raw
}
