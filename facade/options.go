package facade

type option struct {
	Subsystem1 Initiator
	Subsystem2 Executor
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Subsystem1 == nil {
		o.Subsystem1 = Subsystem1{}
	}
	if o.Subsystem2 == nil {
		o.Subsystem2 = Subsystem2{}
	}
	return o
}

type Option func(*option)

// WithSubsystem1 makes the Facade use s instead of a default Subsystem1.
func WithSubsystem1(s Initiator) Option {
	return func(o *option) {
		o.Subsystem1 = s
	}
}

// WithSubsystem2 makes the Facade use s instead of a default Subsystem2.
func WithSubsystem2(s Executor) Option {
	return func(o *option) {
		o.Subsystem2 = s
	}
}
