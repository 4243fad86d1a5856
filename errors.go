package pagekit

import (
	"errors"
	"fmt"
)

// Sentinel errors for toolkit operations.
var (
	ErrUnresolvable = errors.New("pagekit: unresolvable target")
	ErrNoSigningKey = errors.New("pagekit: snapshot requires a signing key")
	ErrInvalidToken = errors.New("pagekit: invalid snapshot token")
)

// UnresolvableError describes a descriptor entry that was neither a handle
// nor a recognised selector. It is only returned under PolicyError.
type UnresolvableError struct {
	Op    string // disable, enable, show, hide, ...
	Key   string // entry index or key, empty for a single target
	Value any
}

func (e *UnresolvableError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("pagekit: %s: unresolvable target %v", e.Op, e.Value)
	}
	return fmt.Sprintf("pagekit: %s: unresolvable target %v at %q", e.Op, e.Value, e.Key)
}

// Is reports ErrUnresolvable as a match so callers can branch with errors.Is.
func (e *UnresolvableError) Is(target error) bool {
	return target == ErrUnresolvable
}

// IsUnresolvable checks if err carries at least one unresolvable entry.
func IsUnresolvable(err error) bool {
	return errors.Is(err, ErrUnresolvable)
}

// IsTokenError checks if err is a snapshot token failure.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrNoSigningKey)
}
