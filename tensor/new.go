package tensor

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mint-ml/mint/internal/autodiff"
	"github.com/mint-ml/mint/internal/tensor"
)

// ErrRaggedData reports a nested literal whose sub-lists disagree in length
// or depth.
var ErrRaggedData = errors.New("ragged nested literal")

// New builds a tensor from a Go value: a single number or bool, or nested
// slices of them (any numeric type; values are converted to float32).
//
// The dtype is inferred from the contents (all-bool literals become Bool,
// anything numeric becomes Float32) unless WithDType forces it. Float32
// tensors track gradients by default; Bool tensors never do.
//
// Ragged nesting, unsupported element types, and out-of-registry dtypes are
// rejected with an error before any tensor state is created.
func New(data any, opts ...Option) (*Tensor, error) {
	o := applyOptions(opts)

	lit := literal{leafDepth: -1}
	if err := lit.walk(reflect.ValueOf(data), 0); err != nil {
		return nil, err
	}

	dtype := Float32
	if lit.sawBool && !lit.sawNumber {
		dtype = Bool
	}
	if o.dtypeSet {
		if err := o.dtype.Validate(); err != nil {
			return nil, err
		}
		dtype = o.dtype
	}

	shape := Shape(lit.shape)
	var raw *RawTensor
	var err error
	if dtype == Bool {
		bools := make([]bool, len(lit.values))
		for i, v := range lit.values {
			bools[i] = v != 0
		}
		raw, err = tensor.FromBool(bools, shape)
	} else {
		raw, err = tensor.FromFloat32(lit.values, shape)
	}
	if err != nil {
		return nil, err
	}

	requiresGrad := dtype == Float32
	if o.gradSet {
		requiresGrad = o.requiresGrad
	}
	return autodiff.NewLeaf(raw, o.backend, requiresGrad), nil
}

// MustNew is New that panics on error, for literals known to be well-formed.
func MustNew(data any, opts ...Option) *Tensor {
	t, err := New(data, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// literal accumulates the shape and flattened values of a nested Go literal.
// Booleans flatten to 0/1 so a single pass serves both target dtypes.
type literal struct {
	shape     []int
	values    []float32
	leafDepth int // depth at which scalars live, -1 until the first one
	sawBool   bool
	sawNumber bool
}

func (l *literal) walk(v reflect.Value, depth int) error {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return fmt.Errorf("cannot build tensor from nil")
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if l.leafDepth >= 0 && depth >= l.leafDepth {
			return fmt.Errorf("%w: list at depth %d where scalars live at depth %d", ErrRaggedData, depth, l.leafDepth)
		}
		if depth == len(l.shape) {
			l.shape = append(l.shape, v.Len())
		} else if v.Len() != l.shape[depth] {
			return fmt.Errorf("%w: %d elements at depth %d, want %d", ErrRaggedData, v.Len(), depth, l.shape[depth])
		}
		for i := 0; i < v.Len(); i++ {
			if err := l.walk(v.Index(i), depth+1); err != nil {
				return err
			}
		}
		return nil

	case reflect.Bool:
		if err := l.checkLeafDepth(depth); err != nil {
			return err
		}
		l.sawBool = true
		if v.Bool() {
			l.values = append(l.values, 1)
		} else {
			l.values = append(l.values, 0)
		}
		return nil

	case reflect.Float32, reflect.Float64:
		if err := l.checkLeafDepth(depth); err != nil {
			return err
		}
		l.sawNumber = true
		l.values = append(l.values, float32(v.Float()))
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if err := l.checkLeafDepth(depth); err != nil {
			return err
		}
		l.sawNumber = true
		l.values = append(l.values, float32(v.Int()))
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if err := l.checkLeafDepth(depth); err != nil {
			return err
		}
		l.sawNumber = true
		l.values = append(l.values, float32(v.Uint()))
		return nil

	default:
		return fmt.Errorf("%w: cannot build tensor from %s elements", ErrUnsupportedDType, v.Type())
	}
}

func (l *literal) checkLeafDepth(depth int) error {
	if l.leafDepth == -1 {
		l.leafDepth = depth
		return nil
	}
	if depth != l.leafDepth {
		return fmt.Errorf("%w: scalar at depth %d where scalars live at depth %d", ErrRaggedData, depth, l.leafDepth)
	}
	return nil
}
