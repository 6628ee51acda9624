package strategy

// Context delegates Execute to the currently active Strategy.
// The zero value has no strategy and is ready to use.
type Context struct {
	strategy Strategy
	options  *option
}

func NewContext(opts ...Option) *Context {
	o := newOption(opts...)
	c := &Context{options: o}
	if o.Strategy != nil {
		c.SetStrategy(o.Strategy)
	}
	return c
}

// SetStrategy replaces the active strategy. Decorators configured on the Context wrap s.
func (c *Context) SetStrategy(s Strategy) {
	if s == nil {
		c.strategy = nil
		return
	}
	if c.options != nil && len(c.options.Decorators) > 0 {
		s = Chain(s, c.options.Decorators...)
	}
	c.strategy = s
}

// Strategy returns the active strategy, nil if none was set.
func (c *Context) Strategy() Strategy {
	return c.strategy
}

// Execute runs the active strategy over data.
func (c *Context) Execute(data []string) ([]string, error) {
	if c.strategy == nil {
		return nil, ErrStrategyNil
	}
	return c.strategy.Transform(data), nil
}
