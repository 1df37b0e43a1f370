package tensor

// Option configures tensor construction.
type Option func(*options)

type options struct {
	dtype        DataType
	dtypeSet     bool
	requiresGrad bool
	gradSet      bool
	backend      Backend
}

// WithDType forces the tensor's element type instead of inferring it from
// the literal's contents.
func WithDType(dtype DataType) Option {
	return func(o *options) {
		o.dtype = dtype
		o.dtypeSet = true
	}
}

// WithRequiresGrad overrides the default gradient tracking (on for Float32,
// always off for Bool).
func WithRequiresGrad(requiresGrad bool) Option {
	return func(o *options) {
		o.requiresGrad = requiresGrad
		o.gradSet = true
	}
}

// WithBackend computes the tensor's operations on a specific backend instead
// of the package default.
func WithBackend(backend Backend) Option {
	return func(o *options) {
		o.backend = backend
	}
}

func applyOptions(opts []Option) options {
	o := options{backend: defaultBackend}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
