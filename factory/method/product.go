package method

// Product is what a Creator's factory method builds.
type Product interface {
	Operation() string
}

var (
	_ Product = ConcreteProduct1{}
	_ Product = ConcreteProduct2{}
)

// ConcreteProduct1 is the product built by ConcreteCreator1.
type ConcreteProduct1 struct{}

func (ConcreteProduct1) Operation() string {
	return "{Result of the ConcreteProduct1}"
}

// ConcreteProduct2 is the product built by ConcreteCreator2.
type ConcreteProduct2 struct{}

func (ConcreteProduct2) Operation() string {
	return "{Result of the ConcreteProduct2}"
}
