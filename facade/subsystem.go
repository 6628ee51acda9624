package facade

// Initiator is the first subsystem the Facade drives.
type Initiator interface {
	Operation1() string
	OperationN() string
}

// Executor is the second subsystem the Facade drives.
type Executor interface {
	Operation1() string
	OperationZ() string
}

var (
	_ Initiator = Subsystem1{}
	_ Executor  = Subsystem2{}
)

// Subsystem1 is the default Initiator.
type Subsystem1 struct{}

func (Subsystem1) Operation1() string {
	return "Subsystem1: Ready!"
}

func (Subsystem1) OperationN() string {
	return "Subsystem1: Go!"
}

// Subsystem2 is the default Executor.
type Subsystem2 struct{}

func (Subsystem2) Operation1() string {
	return "Subsystem2: Get ready!"
}

func (Subsystem2) OperationZ() string {
	return "Subsystem2: Fire!"
}
