package autodiff

// Scalar sugar. Each form lifts the value to a non-differentiable scalar
// tensor and reuses the corresponding tensor op, so the backward rules come
// for free (the lifted scalar never accumulates gradient).

// AddScalar returns t + v.
func (t *Tensor) AddScalar(v float32) *Tensor {
	return t.Add(t.scalarLike(v))
}

// SubScalar returns t - v.
func (t *Tensor) SubScalar(v float32) *Tensor {
	return t.Sub(t.scalarLike(v))
}

// ScalarSub returns v - t (the reflected form).
func (t *Tensor) ScalarSub(v float32) *Tensor {
	return t.scalarLike(v).Sub(t)
}

// MulScalar returns t * v.
func (t *Tensor) MulScalar(v float32) *Tensor {
	return t.Mul(t.scalarLike(v))
}

// DivScalar returns t / v.
func (t *Tensor) DivScalar(v float32) *Tensor {
	return t.Div(t.scalarLike(v))
}

// ScalarDiv returns v / t (the reflected form).
func (t *Tensor) ScalarDiv(v float32) *Tensor {
	return t.scalarLike(v).Div(t)
}

// Neg returns -t.
func (t *Tensor) Neg() *Tensor {
	return t.MulScalar(-1)
}
