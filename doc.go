// Package pagekit provides form and page helpers for server-rendered HTML
// applications that use Templ templates and HTMX.
//
// A Toolkit operates on a Surface, the document it reads and mutates. The
// production surface is a parsed HTML document (see lib/dom); tests use the
// in-memory FakeSurface shipped with this package. The surface is always
// injected, never global.
//
//	doc, _ := dom.ParseString(page)
//	tk := pagekit.New(doc, pagekit.WithPolicy(pagekit.PolicyError))
//	tk.Disable(pagekit.Selector("#save"))
//
// # Targets
//
// Every operation takes a Target. From classifies an arbitrary value once,
// at the boundary:
//   - Handle: a live Selection
//   - Selector: a string starting with "." or "#"
//   - Literal: a number, used only by ToFloat and ToDecimal
//   - Many: an ordered collection, applied by index
//   - Keyed: a keyed collection, applied in entry order
//   - Invalid: anything else
//
// Selectors are resolved against the surface on every call. A selector
// that matches nothing still resolves; the action is simply a no-op.
//
// # Unresolvable Entries
//
// Collection members that are not a Handle or Selector cannot be resolved.
// With PolicySkip (the default) they are ignored and logged at debug
// level. With PolicyError every resolvable entry is still applied and the
// operation returns one *UnresolvableError per skipped entry, joined:
//
//	err := tk.Disable(pagekit.From([]any{"#save", 42}))
//	errors.Is(err, pagekit.ErrUnresolvable) // true
//
// # Formatting
//
// ToFloat, ToDecimal and ToThousandsGrouped read a value and return a
// number or a Display. A Display is either a number or text: ToDecimal of
// zero yields the number 0 while any other value yields two-decimal text,
// unless the toolkit is built WithPaddedZero.
//
//	tk.ToDecimal(pagekit.Selector("#price")).String()         // "1234.50"
//	tk.ToThousandsGrouped(pagekit.Selector("#total")).String() // "1,234,567.50"
//
// # Loader and Alerts
//
// Loader toggles the page's loading indicator (#loading by default). On
// failure Loader.Error hides it and raises a blocking alert through the
// surface. Over HTTP, Loader.Respond sends the same outcome to HTMX as an
// out-of-band swap plus a sticky toast.
//
// # Snapshots
//
// Freeze records the disabled and visible state of selector targets,
// disables them, and returns a signed token. Thaw verifies the token and
// restores the recorded state, which lets a page lock its controls across
// a round trip. Both require WithSigningKey.
package pagekit
