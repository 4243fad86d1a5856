package pagekit

import (
	"strings"
	"sync"
)

// FakeSurface is an in-memory Surface for tests.
//
// Elements are registered with an id and classes; Find understands "#id",
// ".class" and a bare tag name. Anything else matches nothing, the way an
// unmatched selector behaves on a real document.
//
//	s := pagekit.NewFakeSurface()
//	s.Add(&pagekit.FakeElement{ID: "email", Value: "a@b.c"})
//	tk := pagekit.New(s)
//	tk.ExtractValue(pagekit.Selector("#email")) // "a@b.c"
type FakeSurface struct {
	mu       sync.Mutex
	elements []*FakeElement
	alerts   []string
}

// FakeElement is a node of a FakeSurface.
type FakeElement struct {
	Tag     string
	ID      string
	Classes []string
	Attrs   map[string]string
	Value   string
	Hidden  bool

	// NoValue makes Val report the element as having no value at all.
	NoValue bool

	parent *FakeElement
}

// NewFakeSurface creates an empty fake surface.
func NewFakeSurface() *FakeSurface {
	return &FakeSurface{}
}

// Add registers elements on the surface and returns the first one.
func (f *FakeSurface) Add(elements ...*FakeElement) *FakeElement {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, el := range elements {
		if el.Attrs == nil {
			el.Attrs = make(map[string]string)
		}
		f.elements = append(f.elements, el)
	}
	if len(elements) == 0 {
		return nil
	}
	return elements[0]
}

// Nest registers child as a child of parent. parent must already be on
// the surface.
func (f *FakeSurface) Nest(parent, child *FakeElement) *FakeElement {
	child.parent = parent
	return f.Add(child)
}

// Find implements Surface.
func (f *FakeSurface) Find(selector string) Selection {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []*FakeElement
	for _, el := range f.elements {
		if el.matches(selector) {
			matched = append(matched, el)
		}
	}
	return &fakeSelection{surface: f, elements: matched}
}

// Alert implements Surface by recording message.
func (f *FakeSurface) Alert(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, message)
}

// Alerts returns every message raised so far.
func (f *FakeSurface) Alerts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.alerts...)
}

// HasClass reports whether el carries class name.
func (el *FakeElement) HasClass(name string) bool {
	for _, c := range el.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// Disabled reports whether el carries the disabled attribute.
func (el *FakeElement) Disabled() bool {
	_, ok := el.Attrs["disabled"]
	return ok
}

func (el *FakeElement) matches(selector string) bool {
	switch {
	case selector == "":
		return false
	case strings.HasPrefix(selector, "#"):
		return el.ID != "" && el.ID == selector[1:]
	case strings.HasPrefix(selector, "."):
		return el.HasClass(selector[1:])
	}
	return el.Tag != "" && el.Tag == selector
}

type fakeSelection struct {
	surface  *FakeSurface
	elements []*FakeElement
}

func (s *fakeSelection) Len() int { return len(s.elements) }

func (s *fakeSelection) first() *FakeElement {
	if len(s.elements) == 0 {
		return nil
	}
	return s.elements[0]
}

func (s *fakeSelection) do(fn func(*FakeElement)) {
	s.surface.mu.Lock()
	defer s.surface.mu.Unlock()
	for _, el := range s.elements {
		fn(el)
	}
}

func (s *fakeSelection) Each(fn func(i int, el Selection)) {
	for i, el := range s.elements {
		fn(i, &fakeSelection{surface: s.surface, elements: []*FakeElement{el}})
	}
}

func (s *fakeSelection) Attr(name string) (string, bool) {
	el := s.first()
	if el == nil {
		return "", false
	}
	s.surface.mu.Lock()
	defer s.surface.mu.Unlock()
	v, ok := el.Attrs[name]
	return v, ok
}

func (s *fakeSelection) SetAttr(name, value string) {
	s.do(func(el *FakeElement) { el.Attrs[name] = value })
}

func (s *fakeSelection) RemoveAttr(name string) {
	s.do(func(el *FakeElement) { delete(el.Attrs, name) })
}

func (s *fakeSelection) Val() (string, bool) {
	el := s.first()
	if el == nil || el.NoValue {
		return "", false
	}
	return el.Value, true
}

func (s *fakeSelection) SetVal(value string) {
	s.do(func(el *FakeElement) { el.Value = value })
}

func (s *fakeSelection) Show() {
	s.do(func(el *FakeElement) { el.Hidden = false })
}

func (s *fakeSelection) Hide() {
	s.do(func(el *FakeElement) { el.Hidden = true })
}

func (s *fakeSelection) Visible() bool {
	el := s.first()
	return el != nil && !el.Hidden
}

func (s *fakeSelection) Parent() Selection {
	var parents []*FakeElement
	seen := make(map[*FakeElement]bool)
	for _, el := range s.elements {
		if el.parent != nil && !seen[el.parent] {
			seen[el.parent] = true
			parents = append(parents, el.parent)
		}
	}
	return &fakeSelection{surface: s.surface, elements: parents}
}

func (s *fakeSelection) HasClass(name string) bool {
	for _, el := range s.elements {
		if el.HasClass(name) {
			return true
		}
	}
	return false
}

func (s *fakeSelection) RemoveClass(name string) {
	s.do(func(el *FakeElement) {
		kept := el.Classes[:0]
		for _, c := range el.Classes {
			if c != name {
				kept = append(kept, c)
			}
		}
		el.Classes = kept
	})
}
