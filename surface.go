package pagekit

// Surface is the document a Toolkit reads from and writes to.
//
// The production implementation is lib/dom, which wraps a parsed HTML
// document. Tests use FakeSurface. A Surface is passed to New explicitly;
// nothing in this package reaches for a global document.
//
//	doc, _ := dom.ParseString(page)
//	tk := pagekit.New(doc)
//	tk.Disable(pagekit.Selector("#submit"))
//
// Find must never panic: an invalid or unmatched selector yields an empty
// Selection.
type Surface interface {
	Find(selector string) Selection
	Alert(message string)
}

// Selection is a handle on zero or more elements of a Surface.
//
// Mutating methods apply to every element in the selection. Readers (Attr,
// Val, Visible) look at the first element only, like jQuery.
type Selection interface {
	Len() int

	// Each calls fn with every element as its own single-element selection.
	Each(fn func(i int, el Selection))

	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)

	// Val returns the form value of the first element. ok is false when the
	// selection is empty.
	Val() (value string, ok bool)
	SetVal(value string)

	Show()
	Hide()
	Visible() bool

	Parent() Selection
	HasClass(name string) bool
	RemoveClass(name string)
}

// Disabled reports whether the first element of s carries the disabled attribute.
func Disabled(s Selection) bool {
	if s == nil {
		return false
	}
	_, ok := s.Attr("disabled")
	return ok
}
