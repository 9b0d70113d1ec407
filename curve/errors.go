package curve

import (
	"errors"
	"fmt"
)

var (
	ErrBadData   = errors.New("bad data")
	ErrNoStorage = errors.New("no storage")
)

// ParseError reports a point token of the text format that could not be
// read. It matches ErrBadData with errors.Is.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("line %d: bad point %q", e.Line, e.Token)
	}

	return fmt.Sprintf("line %d: bad point %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrBadData}
	}

	return []error{ErrBadData, e.Err}
}
