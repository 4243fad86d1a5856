package pagekit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFreezeThaw(t *testing.T) {
	s := NewFakeSurface()
	save := s.Add(&FakeElement{ID: "save"})
	locked := s.Add(&FakeElement{ID: "locked", Attrs: map[string]string{"disabled": "disabled"}})
	hidden := s.Add(&FakeElement{ID: "hidden", Hidden: true})
	tk := New(s, WithLogger(NopLogger()), WithSigningKey([]byte("secret")))

	target := Many{Selector("#save"), Selector("#locked"), Selector("#hidden"), Invalid{Value: 1}}
	token, err := tk.Freeze(target)
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	for _, el := range []*FakeElement{save, locked, hidden} {
		if !el.Disabled() {
			t.Errorf("%s not disabled after Freeze", el.ID)
		}
	}

	if err := tk.Thaw(token); err != nil {
		t.Fatalf("Thaw: %v", err)
	}
	if save.Disabled() {
		t.Error("#save still disabled after Thaw")
	}
	if !locked.Disabled() {
		t.Error("#locked was disabled before Freeze and must stay disabled")
	}
	if !hidden.Hidden {
		t.Error("#hidden must stay hidden")
	}
}

func TestCapture(t *testing.T) {
	s := NewFakeSurface()
	s.Add(&FakeElement{ID: "a", Attrs: map[string]string{"disabled": ""}})
	s.Add(&FakeElement{ID: "b", Hidden: true})
	tk := New(s, WithLogger(NopLogger()))

	got := tk.Capture(Keyed{
		{Key: "a", Target: Selector("#a")},
		{Key: "b", Target: Selector("#b")},
		{Key: "missing", Target: Selector("#missing")},
		{Key: "handle", Target: Handle{Selection: s.Find("#a")}},
	})
	want := Snapshot{States: []ElementState{
		{Selector: "#a", Disabled: true, Visible: true},
		{Selector: "#b", Disabled: false, Visible: false},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Capture() mismatch (-want +got):\n%s", diff)
	}
}

func TestFreezeRequiresKey(t *testing.T) {
	tk := New(NewFakeSurface(), WithLogger(NopLogger()))

	if _, err := tk.Freeze(Selector("#a")); err != ErrNoSigningKey {
		t.Errorf("Freeze error = %v, want ErrNoSigningKey", err)
	}
	if err := tk.Thaw("x.y"); err != ErrNoSigningKey {
		t.Errorf("Thaw error = %v, want ErrNoSigningKey", err)
	}
}

func TestThawRejectsTamperedToken(t *testing.T) {
	s := NewFakeSurface()
	s.Add(&FakeElement{ID: "save"})
	tk := New(s, WithLogger(NopLogger()), WithSigningKey([]byte("secret")))
	other := New(s, WithLogger(NopLogger()), WithSigningKey([]byte("other")))

	token, err := tk.Freeze(Selector("#save"))
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}

	for name, bad := range map[string]string{
		"garbage":   "not-a-token",
		"wrong key": "",
		"truncated": token[:strings.Index(token, ".")],
	} {
		t.Run(name, func(t *testing.T) {
			var err error
			if bad == "" {
				err = other.Thaw(token)
			} else {
				err = tk.Thaw(bad)
			}
			if !IsTokenError(err) {
				t.Errorf("Thaw error = %v, want token error", err)
			}
		})
	}
}

func TestCapturePerElement(t *testing.T) {
	s := NewFakeSurface()
	first := s.Add(&FakeElement{ID: "r1", Classes: []string{"row"}})
	second := s.Add(&FakeElement{ID: "r2", Classes: []string{"row"}, Hidden: true, Attrs: map[string]string{"disabled": "disabled"}})
	tk := New(s, WithLogger(NopLogger()), WithSigningKey([]byte("secret")))

	want := Snapshot{States: []ElementState{
		{Selector: ".row", Index: 0, Disabled: false, Visible: true},
		{Selector: ".row", Index: 1, Disabled: true, Visible: false},
	}}
	if diff := cmp.Diff(want, tk.Capture(Selector(".row"))); diff != "" {
		t.Fatalf("Capture() mismatch (-want +got):\n%s", diff)
	}

	token, err := tk.Freeze(Selector(".row"))
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	_ = tk.Show(Selector(".row"))
	if err := tk.Thaw(token); err != nil {
		t.Fatalf("Thaw: %v", err)
	}

	if first.Disabled() || first.Hidden {
		t.Errorf("first row = disabled %v hidden %v, want enabled and visible", first.Disabled(), first.Hidden)
	}
	if !second.Disabled() || !second.Hidden {
		t.Errorf("second row = disabled %v hidden %v, want disabled and hidden", second.Disabled(), second.Hidden)
	}
}
