package strategy

type option struct {
	Strategy   Strategy
	Decorators []Decorator
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*option)

// WithStrategy sets the initial strategy of the Context.
func WithStrategy(s Strategy) Option {
	return func(o *option) {
		o.Strategy = s
	}
}

// WithDecorators wraps every strategy set on the Context.
func WithDecorators(decorators ...Decorator) Option {
	return func(o *option) {
		o.Decorators = append(o.Decorators, decorators...)
	}
}
