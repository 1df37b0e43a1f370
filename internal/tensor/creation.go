package tensor

import "fmt"

// Zeros creates a RawTensor filled with zeros.
func Zeros(shape Shape, dtype DataType) (*RawTensor, error) {
	return NewRaw(shape, dtype)
}

// Ones creates a Float32 RawTensor filled with ones.
func Ones(shape Shape) (*RawTensor, error) {
	return Full(shape, 1)
}

// Full creates a Float32 RawTensor filled with the given value.
func Full(shape Shape, value float32) (*RawTensor, error) {
	raw, err := NewRaw(shape, Float32)
	if err != nil {
		return nil, err
	}
	data := raw.AsFloat32()
	for i := range data {
		data[i] = value
	}
	return raw, nil
}

// FromFloat32 creates a Float32 RawTensor from a slice.
// The slice is copied into the tensor's buffer.
func FromFloat32(data []float32, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape, Float32)
	if err != nil {
		return nil, err
	}
	copy(raw.AsFloat32(), data)
	return raw, nil
}

// FromBool creates a Bool RawTensor from a slice.
// The slice is copied into the tensor's buffer.
func FromBool(data []bool, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape, Bool)
	if err != nil {
		return nil, err
	}
	copy(raw.AsBool(), data)
	return raw, nil
}
