package pager

import "fmt"

// Diagnostic is implemented by errors that carry the two parts of the
// user-facing error line: what failed and which entity it concerned.
type Diagnostic interface {
	error
	Diagnostic() (message, entity string)
}

// UsageError reports an unrecognised argument or setting.
type UsageError struct {
	Message string
	Entity  string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s %s", e.Message, e.Entity)
}

func (e *UsageError) Diagnostic() (string, string) {
	return e.Message, e.Entity
}

// IOError reports a failed operation on the input file or the terminal.
type IOError struct {
	Message string
	Entity  string
	Err     error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Message, e.Entity)
	}
	return fmt.Sprintf("%s %s: %v", e.Message, e.Entity, e.Err)
}

func (e *IOError) Diagnostic() (string, string) {
	return e.Message, e.Entity
}

func (e *IOError) Unwrap() error {
	return e.Err
}
