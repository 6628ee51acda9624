package method

// Creator declares the factory method. Variants override only FactoryMethod;
// the logic that consumes the product lives in SomeOperation.
type Creator interface {
	FactoryMethod() Product
}

// The CreatorFunc type is an adapter to allow the use of ordinary functions as Creator.
type CreatorFunc func() Product

// FactoryMethod calls f().
func (f CreatorFunc) FactoryMethod() Product {
	return f()
}

// SomeOperation is the creator's shared logic. It works with whatever Product the
// factory method of c returns.
func SomeOperation(c Creator) string {
	product := c.FactoryMethod()
	return "Creator: The same creator's code has just worked with " + product.Operation()
}

var (
	_ Creator = ConcreteCreator1{}
	_ Creator = ConcreteCreator2{}
)

// ConcreteCreator1 builds ConcreteProduct1.
type ConcreteCreator1 struct{}

func (ConcreteCreator1) FactoryMethod() Product {
	return ConcreteProduct1{}
}

// ConcreteCreator2 builds ConcreteProduct2.
type ConcreteCreator2 struct{}

func (ConcreteCreator2) FactoryMethod() Product {
	return ConcreteProduct2{}
}
