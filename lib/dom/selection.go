package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"github.com/pthm/pagekit"
)

// Selection adapts a goquery selection to pagekit.Selection.
type Selection struct {
	sel *goquery.Selection
}

var _ pagekit.Selection = Selection{}

// Wrap adapts sel. A nil sel behaves as an empty selection.
func Wrap(sel *goquery.Selection) Selection {
	if sel == nil {
		sel = &goquery.Selection{}
	}
	return Selection{sel: sel}
}

// Handle wraps sel as a pagekit target.
func Handle(sel *goquery.Selection) pagekit.Handle {
	return pagekit.Handle{Selection: Wrap(sel)}
}

// Goquery returns the wrapped selection.
func (s Selection) Goquery() *goquery.Selection { return s.sel }

func (s Selection) Len() int { return s.sel.Length() }

func (s Selection) Each(fn func(i int, el pagekit.Selection)) {
	s.sel.Each(func(i int, el *goquery.Selection) {
		fn(i, Wrap(el))
	})
}

func (s Selection) Attr(name string) (string, bool) { return s.sel.Attr(name) }

func (s Selection) SetAttr(name, value string) { s.sel.SetAttr(name, value) }

func (s Selection) RemoveAttr(name string) { s.sel.RemoveAttr(name) }

// Val returns the form value of the first element: the value attribute of
// inputs, the text of textareas, the selected option of selects. Other
// elements report their value attribute or "".
func (s Selection) Val() (string, bool) {
	if s.sel.Length() == 0 {
		return "", false
	}
	first := s.sel.First()

	switch goquery.NodeName(first) {
	case "textarea":
		return first.Text(), true
	case "select":
		opt := first.Find("option[selected]").First()
		if opt.Length() == 0 {
			opt = first.Find("option").First()
		}
		if opt.Length() == 0 {
			return "", true
		}
		return optionValue(opt), true
	case "option":
		return optionValue(first), true
	}
	return first.AttrOr("value", ""), true
}

// SetVal sets the form value of every element.
func (s Selection) SetVal(value string) {
	s.sel.Each(func(_ int, el *goquery.Selection) {
		switch goquery.NodeName(el) {
		case "textarea":
			el.SetText(value)
		case "select":
			el.Find("option").Each(func(_ int, opt *goquery.Selection) {
				if optionValue(opt) == value {
					opt.SetAttr("selected", "selected")
				} else {
					opt.RemoveAttr("selected")
				}
			})
		default:
			el.SetAttr("value", value)
		}
	})
}

func optionValue(opt *goquery.Selection) string {
	if v, ok := opt.Attr("value"); ok {
		return v
	}
	return strings.TrimSpace(opt.Text())
}

// Show removes display:none from the inline style and drops the hidden
// attribute.
func (s Selection) Show() {
	s.sel.Each(func(_ int, el *goquery.Selection) {
		el.RemoveAttr("hidden")
		setDisplay(el, "")
	})
}

// Hide sets display:none on the inline style.
func (s Selection) Hide() {
	s.sel.Each(func(_ int, el *goquery.Selection) {
		setDisplay(el, "none")
	})
}

// Visible reports whether the first element is neither hidden nor styled
// display:none. Stylesheets are not consulted.
func (s Selection) Visible() bool {
	if s.sel.Length() == 0 {
		return false
	}
	first := s.sel.First()
	if _, hidden := first.Attr("hidden"); hidden {
		return false
	}
	for _, decl := range declarations(first) {
		if strings.EqualFold(decl.Property, "display") && strings.EqualFold(strings.TrimSpace(decl.Value), "none") {
			return false
		}
	}
	return true
}

func (s Selection) Parent() pagekit.Selection { return Wrap(s.sel.Parent()) }

func (s Selection) HasClass(name string) bool { return s.sel.HasClass(name) }

func (s Selection) RemoveClass(name string) { s.sel.RemoveClass(name) }

// declarations parses the inline style of el. Unparseable styles yield no
// declarations.
func declarations(el *goquery.Selection) []*css.Declaration {
	style, ok := el.Attr("style")
	style = strings.TrimSpace(style)
	if !ok || style == "" {
		return nil
	}
	// the parser drops the value of a final declaration without its ';'
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return nil
	}
	return decls
}

// setDisplay rewrites the display declaration of el's inline style. An
// empty value removes it; the style attribute is dropped once empty.
func setDisplay(el *goquery.Selection, value string) {
	var parts []string
	for _, decl := range declarations(el) {
		if strings.EqualFold(decl.Property, "display") {
			continue
		}
		parts = append(parts, declarationString(decl))
	}
	if value != "" {
		parts = append(parts, "display: "+value)
	}

	if len(parts) == 0 {
		el.RemoveAttr("style")
		return
	}
	el.SetAttr("style", strings.Join(parts, "; "))
}

func declarationString(decl *css.Declaration) string {
	s := decl.Property + ": " + strings.TrimSpace(decl.Value)
	if decl.Important {
		s += " !important"
	}
	return s
}
