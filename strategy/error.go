package strategy

import "errors"

var (
	// ErrStrategyNil Execute was called before any strategy was set
	ErrStrategyNil = errors.New("strategy is nil")

	// ErrUnknownStrategy no built-in strategy has the requested name
	ErrUnknownStrategy = errors.New("unknown strategy")
)
