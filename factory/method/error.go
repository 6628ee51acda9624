package method

import "errors"

// ErrUnknownCreator no creator is registered under the requested name
var ErrUnknownCreator = errors.New("unknown creator")
