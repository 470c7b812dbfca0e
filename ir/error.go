package ir

import "strings"

// IRError aggregates the structural errors found while validating a circuit.
type IRError struct {
	Errors []error
}

func (e *IRError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return "invalid circuit: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual findings to errors.Is/As.
func (e *IRError) Unwrap() []error {
	return e.Errors
}
