package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalid       ErrorKind = "invalid"
	KindUnsupported   ErrorKind = "unsupported"
	KindNotAcceptable ErrorKind = "not_acceptable"
	KindInternal      ErrorKind = "internal"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

// Errorf builds an OpError whose cause is formatted like fmt.Errorf.
func Errorf(op string, kind ErrorKind, format string, args ...any) *OpError {
	return &OpError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return e.Err.Error()
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether any OpError in err's chain has the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
