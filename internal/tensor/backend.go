package tensor

// Backend defines the numeric-kernel interface the graph layer consumes.
// A backend computes forward values over RawTensors; it knows nothing about
// gradients or the computation graph.
//
// Binary kernels apply NumPy-style broadcasting. Kernels validate shapes and
// dtypes eagerly and panic on violations before any output is written; the
// graph layer is responsible for dtype promotion, so binary kernels may
// assume both operands share a dtype.
type Backend interface {
	// Element-wise binary operations (broadcasting, Float32).
	// Mul is additionally defined on two Bool tensors (logical AND).
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Element-wise operations with a scalar.
	Pow(x *RawTensor, exponent float32) *RawTensor
	Scale(x *RawTensor, factor float32) *RawTensor

	// Matrix operations (2-D).
	MatMul(a, b *RawTensor) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Element-wise math.
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Sigmoid(x *RawTensor) *RawTensor
	Tanh(x *RawTensor) *RawTensor
	ReLU(x *RawTensor) *RawTensor
	LeakyReLU(x *RawTensor, negativeSlope float32) *RawTensor
	Softmax(x *RawTensor, dim int) *RawTensor

	// Reductions.
	Sum(x *RawTensor) *RawTensor
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// Shape and type conversion.
	Reshape(t *RawTensor, shape Shape) *RawTensor
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata.
	Name() string
}
