package strategy

import "go.uber.org/zap"

// Decorator wraps a Strategy, adding behaviour before or after Transform.
type Decorator func(s Strategy) Strategy

// Chain decorates s with all decorators, the first one being the outermost.
func Chain(s Strategy, decorators ...Decorator) Strategy {
	for i := len(decorators) - 1; i >= 0; i-- {
		s = decorators[i](s)
	}
	return s
}

// Logging logs every Transform at debug level.
func Logging(logger *zap.Logger) Decorator {
	return func(s Strategy) Strategy {
		return Func(func(data []string) []string {
			result := s.Transform(data)
			logger.Debug("strategy transformed",
				zap.String("strategy", nameOf(s)),
				zap.Int("size", len(data)))
			return result
		})
	}
}
