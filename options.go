package pagekit

import (
	"fmt"
	"strings"

	"github.com/pthm/pagekit/lib/encoding"
)

// Policy controls what happens to descriptor entries that resolve to nothing.
type Policy int

const (
	// PolicySkip silently ignores unresolvable entries. This is the default.
	PolicySkip Policy = iota

	// PolicyError applies every resolvable entry and then returns an error
	// listing the entries that were skipped.
	PolicyError
)

func (p Policy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	case PolicyError:
		return "error"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses "skip" or "error".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return PolicySkip, nil
	case "error":
		return PolicyError, nil
	}
	return PolicySkip, fmt.Errorf("pagekit: unknown unresolvable policy %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// DefaultLoaderSelector is the element toggled by Loader.
const DefaultLoaderSelector = "#loading"

// DefaultErrorMessage is the alert raised by Loader.Error.
const DefaultErrorMessage = "Something went wrong, please refresh the page and try again!"

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithPolicy sets the unresolvable entry policy.
func WithPolicy(p Policy) Option {
	return func(t *Toolkit) { t.policy = p }
}

// WithLogger replaces the default logger.
func WithLogger(l Logger) Option {
	return func(t *Toolkit) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithDebug turns on debug logging for the default logger.
func WithDebug(enabled bool) Option {
	return func(t *Toolkit) { t.debug = enabled }
}

// WithPaddedZero makes ToDecimal return "0.00" text for zero instead of the
// bare number 0.
func WithPaddedZero() Option {
	return func(t *Toolkit) { t.paddedZero = true }
}

// WithLoader overrides the loader selector and error message. Empty values
// keep the defaults. A selector that is not a class or id selector is
// reported as a setup error and the default is kept.
func WithLoader(selector, message string) Option {
	return func(t *Toolkit) {
		switch {
		case selector == "":
		case IsElementName(selector):
			t.loaderSelector = selector
		default:
			t.setupErrs = append(t.setupErrs, fmt.Errorf("pagekit: loader selector %q is not a class or id selector", selector))
		}
		if message != "" {
			t.errorMessage = message
		}
	}
}

// WithSigningKey enables Freeze and Thaw. Keys that are not exactly 32
// bytes are hashed.
func WithSigningKey(key []byte) Option {
	return func(t *Toolkit) {
		if len(key) == 0 {
			return
		}
		enc, err := encoding.NewEncoder(key)
		if err != nil {
			t.setupErrs = append(t.setupErrs, err)
			return
		}
		t.encoder = enc
	}
}
