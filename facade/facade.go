package facade

import "strings"

// Facade hides two subsystems behind a single Operation.
type Facade struct {
	subsystem1 Initiator
	subsystem2 Executor
}

// NewFacade creates a Facade. Subsystems not supplied through options are created here.
func NewFacade(opts ...Option) *Facade {
	o := newOption(opts...)
	return &Facade{subsystem1: o.Subsystem1, subsystem2: o.Subsystem2}
}

// Operation initializes both subsystems, then orders them to act.
func (f *Facade) Operation() string {
	results := []string{
		"Facade initializes subsystems:",
		f.subsystem1.Operation1(),
		f.subsystem2.Operation1(),
		"Facade orders subsystems to perform the action:",
		f.subsystem1.OperationN(),
		f.subsystem2.OperationZ(),
	}
	return strings.Join(results, "\n")
}
