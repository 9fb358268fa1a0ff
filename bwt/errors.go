package bwt

import "fmt"

// ConstructionError is returned by New when the input text cannot be
// turned into a bidirectional BWT index.
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("bwt: cannot construct index: %s", e.Reason)
}

func newConstructionError(format string, args ...interface{}) error {
	return &ConstructionError{Reason: fmt.Sprintf(format, args...)}
}
