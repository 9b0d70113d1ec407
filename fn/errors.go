package fn

import "errors"

var (
	ErrUnknownKind = errors.New("unknown function kind")
	ErrInvalidBase = errors.New("invalid logarithm base")
	ErrBadSpec     = errors.New("bad function spec")
)
