package method

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-leo/design-pattern-demo/factory"
)

// NewCreatorFactory returns a factory that picks a Creator by name:
// "1" or "creator1", "2" or "creator2", case-insensitive.
func NewCreatorFactory() factory.Factory[Creator, string] {
	return factory.Func[Creator, string](func(_ context.Context, name string) (Creator, error) {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "1", "creator1":
			return ConcreteCreator1{}, nil
		case "2", "creator2":
			return ConcreteCreator2{}, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownCreator, name)
		}
	})
}
