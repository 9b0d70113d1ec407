package console

import "errors"

var ErrNoDefaultFile = errors.New("no default file")

var (
	errNoInput      = errors.New("no input")
	errInvalidInput = errors.New("invalid input")
)
