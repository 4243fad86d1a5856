package pagekit

import (
	"errors"
	"fmt"

	"github.com/pthm/pagekit/lib/encoding"
)

// ElementState is the recorded state of one element matched by Selector.
// Index is the element's position among the selector's matches.
type ElementState struct {
	Selector string `msgpack:"s"`
	Index    int    `msgpack:"i"`
	Disabled bool   `msgpack:"d"`
	Visible  bool   `msgpack:"v"`
}

// Snapshot is the payload carried by a Freeze token.
type Snapshot struct {
	States []ElementState `msgpack:"st"`
}

// Capture records the disabled and visible state of every element matched
// by a selector entry of target. Handles have no stable identity across requests and are not
// recorded.
func (t *Toolkit) Capture(target Target) Snapshot {
	var snap Snapshot
	record := func(entry Target) {
		sel, ok := entry.(Selector)
		if !ok || !IsElementName(sel) || t.surface == nil {
			return
		}
		t.surface.Find(string(sel)).Each(func(i int, el Selection) {
			snap.States = append(snap.States, ElementState{
				Selector: string(sel),
				Index:    i,
				Disabled: Disabled(el),
				Visible:  el.Visible(),
			})
		})
	}

	switch x := target.(type) {
	case Many:
		for _, entry := range x {
			record(entry)
		}
	case Keyed:
		for _, entry := range x {
			record(entry.Target)
		}
	default:
		record(target)
	}
	return snap
}

// Restore applies recorded states back onto the surface.
func (t *Toolkit) Restore(snap Snapshot) {
	if t.surface == nil {
		return
	}
	for _, st := range snap.States {
		t.surface.Find(st.Selector).Each(func(i int, el Selection) {
			if i != st.Index {
				return
			}
			if st.Disabled {
				el.SetAttr("disabled", "disabled")
			} else {
				el.RemoveAttr("disabled")
			}
			if st.Visible {
				el.Show()
			} else {
				el.Hide()
			}
		})
	}
}

// Freeze records target's state, disables it, and returns a signed token
// that Thaw accepts to put everything back the way it was.
//
//	token, err := tk.Freeze(pagekit.Many{pagekit.Selector("#save"), pagekit.Selector("#cancel")})
//	// ... later, possibly in another request against the re-rendered page
//	err = tk.Thaw(token)
//
// Requires WithSigningKey.
func (t *Toolkit) Freeze(target Target) (string, error) {
	if t.encoder == nil {
		return "", ErrNoSigningKey
	}

	snap := t.Capture(target)
	token, err := t.encoder.Encode(snap, false)
	if err != nil {
		return "", fmt.Errorf("pagekit: freeze: %w", err)
	}

	if err := t.Disable(target); err != nil {
		return token, err
	}
	return token, nil
}

// Thaw verifies token and restores the recorded state.
func (t *Toolkit) Thaw(token string) error {
	if t.encoder == nil {
		return ErrNoSigningKey
	}

	var snap Snapshot
	if err := t.encoder.Decode(token, false, &snap); err != nil {
		if errors.Is(err, encoding.ErrSignatureInvalid) || errors.Is(err, encoding.ErrInvalidFormat) {
			return fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		return err
	}

	t.logger.Debug("thaw: restoring %d elements", len(snap.States))
	t.Restore(snap)
	return nil
}
