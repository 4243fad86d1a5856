package pagekit

import (
	"errors"
	"strconv"

	"github.com/pthm/pagekit/lib/encoding"
)

// Toolkit applies element operations to a Surface.
//
// A Toolkit is stateless apart from its configuration: every call resolves
// selectors against the surface again, so results always reflect the
// document as it is now.
//
//	tk := pagekit.New(doc, pagekit.WithPolicy(pagekit.PolicyError))
//	err := tk.Disable(pagekit.From([]any{"#save", "#cancel"}))
type Toolkit struct {
	surface        Surface
	policy         Policy
	logger         Logger
	debug          bool
	paddedZero     bool
	loaderSelector string
	errorMessage   string
	encoder        *encoding.Encoder
	setupErrs      []error
}

// New creates a Toolkit bound to surface.
func New(surface Surface, opts ...Option) *Toolkit {
	t := &Toolkit{
		surface:        surface,
		policy:         PolicySkip,
		loaderSelector: DefaultLoaderSelector,
		errorMessage:   DefaultErrorMessage,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = NewDefaultLogger("pagekit", t.debug)
	}
	for _, err := range t.setupErrs {
		t.logger.Error("setup: %v", err)
	}
	return t
}

// Surface returns the surface the toolkit operates on.
func (t *Toolkit) Surface() Surface {
	return t.surface
}

// Policy returns the configured unresolvable policy.
func (t *Toolkit) Policy() Policy {
	return t.policy
}

// Disable sets the disabled attribute on every resolvable entry of target.
func (t *Toolkit) Disable(target Target) error {
	return t.each("disable", target, func(s Selection) {
		s.SetAttr("disabled", "disabled")
	})
}

// Enable removes the disabled attribute from every resolvable entry of target.
func (t *Toolkit) Enable(target Target) error {
	return t.each("enable", target, func(s Selection) {
		s.RemoveAttr("disabled")
	})
}

// Show makes every resolvable entry of target visible.
func (t *Toolkit) Show(target Target) error {
	return t.each("show", target, func(s Selection) {
		s.Show()
	})
}

// Hide hides every resolvable entry of target.
func (t *Toolkit) Hide(target Target) error {
	return t.each("hide", target, func(s Selection) {
		s.Hide()
	})
}

// RemoveParentClass removes className from the immediate parent of every
// resolvable entry of target.
func (t *Toolkit) RemoveParentClass(target Target, className string) error {
	return t.each("remove-parent-class", target, func(s Selection) {
		if p := s.Parent(); p != nil {
			p.RemoveClass(className)
		}
	})
}

// ExtractValue returns the value of a single target.
//
// It returns "" when the target does not resolve, resolves to nothing, or
// holds an empty value. A value that is itself a class or id selector is
// resolved once more and the value of that element is returned instead.
// Collections are not single targets and always yield "".
func (t *Toolkit) ExtractValue(target Target) string {
	sel, ok := t.resolve(target)
	if !ok {
		t.logger.Debug("extract: unresolvable target %s", describe(target))
		return ""
	}

	value, ok := sel.Val()
	if !ok || IsEmpty(value) {
		return ""
	}

	if IsElementName(value) && t.surface != nil {
		inner, ok := t.surface.Find(value).Val()
		if !ok {
			return ""
		}
		return inner
	}
	return value
}

// each visits the single entries of target in order and applies fn to every
// one that resolves.
func (t *Toolkit) each(op string, target Target, fn func(Selection)) error {
	var errs []error

	visit := func(key string, entry Target) {
		sel, ok := t.resolve(entry)
		if !ok {
			t.logger.Debug("%s: skipping unresolvable target %s", op, describe(entry))
			if t.policy == PolicyError {
				errs = append(errs, &UnresolvableError{Op: op, Key: key, Value: unwrapInvalid(entry)})
			}
			return
		}
		fn(sel)
	}

	switch x := target.(type) {
	case Many:
		for i, entry := range x {
			visit(strconv.Itoa(i), entry)
		}
	case Keyed:
		for _, entry := range x {
			visit(entry.Key, entry.Target)
		}
	default:
		visit("", target)
	}

	return errors.Join(errs...)
}

// resolve turns a single target into a selection. Collections, literals and
// invalid values do not resolve.
func (t *Toolkit) resolve(target Target) (Selection, bool) {
	switch x := target.(type) {
	case Handle:
		if !IsElementHandle(x) {
			return nil, false
		}
		return x.Selection, true
	case Selector:
		if !IsElementName(x) || t.surface == nil {
			return nil, false
		}
		return t.surface.Find(string(x)), true
	}
	return nil, false
}

func unwrapInvalid(t Target) any {
	if inv, ok := t.(Invalid); ok {
		return inv.Value
	}
	return t
}
