package dom

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"

	"github.com/pthm/pagekit"
)

const page = `<!DOCTYPE html>
<html>
<head><meta name="csrf-token" content="tok-123"></head>
<body>
<div class="field has-error"><input id="amount" name="amount" value="1234567.89"></div>
<div class="field has-error"><input id="qty" class="qty" value="12ab.3.4"></div>
<textarea id="notes">hello world</textarea>
<select id="size"><option value="s">Small</option><option value="m" selected>Medium</option></select>
<select id="plain"><option>First</option><option>Second</option></select>
<input id="ref" value="#amount">
<input id="blank" value="">
<div id="loading" style="color: red; display: none">Loading</div>
<input class="date-format" name="from">
<button id="save">Save</button>
<button id="cancel" hidden>Cancel</button>
</body>
</html>`

func newDoc(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseString(page)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	return doc
}

func TestDisableEnable(t *testing.T) {
	doc := newDoc(t)
	tk := pagekit.New(doc, pagekit.WithLogger(pagekit.NopLogger()))

	target := pagekit.Many{pagekit.Selector("#save"), pagekit.Selector("#amount"), pagekit.Invalid{Value: 42}}
	if err := tk.Disable(target); err != nil {
		t.Fatalf("Disable returned %v", err)
	}

	for _, id := range []string{"#save", "#amount"} {
		if !pagekit.Disabled(doc.Find(id)) {
			t.Errorf("%s not disabled", id)
		}
	}
	if pagekit.Disabled(doc.Find("#qty")) {
		t.Error("#qty should be untouched")
	}

	if err := tk.Enable(target); err != nil {
		t.Fatalf("Enable returned %v", err)
	}
	for _, id := range []string{"#save", "#amount"} {
		if pagekit.Disabled(doc.Find(id)) {
			t.Errorf("%s still disabled", id)
		}
	}
}

func TestShowHide(t *testing.T) {
	doc := newDoc(t)
	tk := pagekit.New(doc, pagekit.WithLogger(pagekit.NopLogger()))

	loading := doc.Find("#loading")
	if loading.Visible() {
		t.Fatal("#loading should start hidden")
	}

	_ = tk.Show(pagekit.Selector("#loading"))
	if !loading.Visible() {
		t.Error("#loading not visible after Show")
	}
	if style, _ := loading.Attr("style"); style != "color: red" {
		t.Errorf("style = %q, want %q", style, "color: red")
	}

	_ = tk.Hide(pagekit.Selector("#save"))
	if doc.Find("#save").Visible() {
		t.Error("#save visible after Hide")
	}
	if style, _ := doc.Find("#save").Attr("style"); style != "display: none" {
		t.Errorf("style = %q, want %q", style, "display: none")
	}

	_ = tk.Show(pagekit.Selector("#cancel"))
	if !doc.Find("#cancel").Visible() {
		t.Error("#cancel not visible after Show")
	}
	if _, ok := doc.Find("#cancel").Attr("style"); ok {
		t.Error("Show should not leave an empty style attribute")
	}
}

func TestExtractValue(t *testing.T) {
	doc := newDoc(t)
	tk := pagekit.New(doc, pagekit.WithLogger(pagekit.NopLogger()))

	tests := []struct {
		name   string
		target pagekit.Target
		want   string
	}{
		{"input", pagekit.Selector("#amount"), "1234567.89"},
		{"textarea", pagekit.Selector("#notes"), "hello world"},
		{"select with selected option", pagekit.Selector("#size"), "m"},
		{"select falls back to first option text", pagekit.Selector("#plain"), "First"},
		{"value naming another element", pagekit.Selector("#ref"), "1234567.89"},
		{"empty value", pagekit.Selector("#blank"), ""},
		{"missing element", pagekit.Selector("#nope"), ""},
		{"handle", Handle(doc.Selection().Find("textarea")), "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tk.ExtractValue(tt.target); got != tt.want {
				t.Errorf("ExtractValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	doc := newDoc(t)
	tk := pagekit.New(doc, pagekit.WithLogger(pagekit.NopLogger()))

	if got := tk.ToThousandsGrouped(pagekit.Selector("#amount")).String(); got != "1,234,567.89" {
		t.Errorf("ToThousandsGrouped = %q, want %q", got, "1,234,567.89")
	}
	if got := tk.ToDecimal(pagekit.Selector("#amount")).String(); got != "1234567.89" {
		t.Errorf("ToDecimal = %q, want %q", got, "1234567.89")
	}
	if d := tk.ToDecimal(pagekit.Selector("#blank")); !d.IsNumber() || d.Float() != 0 {
		t.Errorf("ToDecimal(empty) = %#v, want number 0", d)
	}
}

func TestRemoveParentClass(t *testing.T) {
	doc := newDoc(t)
	tk := pagekit.New(doc, pagekit.WithLogger(pagekit.NopLogger()))

	_ = tk.RemoveParentClass(pagekit.Selector(".qty"), "has-error")

	if !doc.Find("#amount").Parent().HasClass("has-error") {
		t.Error("#amount parent lost has-error")
	}
	if doc.Find("#qty").Parent().HasClass("has-error") {
		t.Error("#qty parent still has has-error")
	}
	if !doc.Find("#qty").Parent().HasClass("field") {
		t.Error("#qty parent lost unrelated class")
	}
}

func TestAllowDecimal(t *testing.T) {
	doc := newDoc(t)
	tk := pagekit.New(doc, pagekit.WithLogger(pagekit.NopLogger()))

	_ = tk.AllowDecimal(pagekit.Selector("#qty"))

	qty := doc.Find("#qty")
	if v, _ := qty.Val(); v != "12.3.4" {
		t.Errorf("value = %q, want %q", v, "12.3.4")
	}
	if mode, _ := qty.Attr("inputmode"); mode != "decimal" {
		t.Errorf("inputmode = %q, want decimal", mode)
	}
}

func TestSetValSelect(t *testing.T) {
	doc := newDoc(t)

	doc.Find("#size").SetVal("s")
	if v, _ := doc.Find("#size").Val(); v != "s" {
		t.Errorf("select value = %q, want s", v)
	}

	doc.Find("#notes").SetVal("changed")
	if v, _ := doc.Find("#notes").Val(); v != "changed" {
		t.Errorf("textarea value = %q, want changed", v)
	}
}

func TestLoaderErrorAlerts(t *testing.T) {
	doc := newDoc(t)
	tk := pagekit.New(doc, pagekit.WithLogger(pagekit.NopLogger()))

	_ = tk.Show(pagekit.Selector("#loading"))
	tk.Loader().Error(nil)

	if doc.Find("#loading").Visible() {
		t.Error("#loading visible after Error")
	}
	want := []string{pagekit.DefaultErrorMessage}
	if diff := cmp.Diff(want, doc.Alerts()); diff != "" {
		t.Errorf("alerts mismatch (-want +got):\n%s", diff)
	}

	out, err := doc.HTML()
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if !strings.Contains(out, `id="toasts"`) {
		t.Error("rendered page has no toast container")
	}
}

func TestAlertSanitizesMarkup(t *testing.T) {
	doc := newDoc(t)
	doc.Alert(`<strong>Heads up</strong><script>alert(1)</script>`)

	out, _ := doc.HTML()
	if strings.Contains(out, "<script>") {
		t.Error("alert markup was not sanitized")
	}
	if !strings.Contains(out, "<strong>Heads up</strong>") {
		t.Error("safe markup was dropped")
	}
}

func TestCSRFAndDatePicker(t *testing.T) {
	doc := newDoc(t)
	tk := pagekit.New(doc, pagekit.WithLogger(pagekit.NopLogger()))

	if got := pagekit.CSRFToken(doc); got != "tok-123" {
		t.Errorf("CSRFToken = %q, want tok-123", got)
	}

	n, err := tk.DatePicker(pagekit.DefaultDatePicker())
	if err != nil {
		t.Fatalf("DatePicker failed: %v", err)
	}
	if n != 1 {
		t.Errorf("DatePicker configured %d inputs, want 1", n)
	}
	cfg, _ := doc.Find(pagekit.DatePickerSelector).Attr(pagekit.DatePickerAttr)
	if !strings.Contains(cfg, `"format":"DD-MM-YYYY"`) || !strings.Contains(cfg, `"cancelLabel":"Clear"`) {
		t.Errorf("date picker config = %s", cfg)
	}
}

func TestInvalidSelectorMatchesNothing(t *testing.T) {
	doc := newDoc(t)
	if n := doc.Find("[[[").Len(); n != 0 {
		t.Errorf("invalid selector matched %d elements", n)
	}
}

func TestInlineStyleWithoutTrailingSemicolon(t *testing.T) {
	tests := []struct {
		name      string
		style     string
		hide      bool
		want      string
		wantShown bool
	}{
		{"hide keeps last declaration", "color: red", true, "color: red; display: none", false},
		{"hide replaces display", "display: block", true, "display: none", false},
		{"show drops trailing display", "margin: 0; display: none", false, "margin: 0", true},
		{"show with mixed case", "Display: NONE", false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseString(`<html><body><div id="a" style="` + tt.style + `">x</div></body></html>`)
			if err != nil {
				t.Fatalf("ParseString failed: %v", err)
			}
			el := doc.Find("#a")
			if tt.hide {
				el.Hide()
			} else {
				el.Show()
			}

			style, _ := el.Attr("style")
			if style != tt.want {
				t.Errorf("style = %q, want %q", style, tt.want)
			}
			if el.Visible() != tt.wantShown {
				t.Errorf("Visible() = %v, want %v", el.Visible(), tt.wantShown)
			}
		})
	}
}

func TestVisibleReadsLastDeclaration(t *testing.T) {
	doc, err := ParseString(`<html><body><div id="a" style="display: none">x</div><div id="b" style="color: red">y</div></body></html>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if doc.Find("#a").Visible() {
		t.Error(`style="display: none" reported visible`)
	}
	if !doc.Find("#b").Visible() {
		t.Error(`style="color: red" reported hidden`)
	}
}

func TestFreezeThawRestoresStyles(t *testing.T) {
	doc, err := ParseString(`<html><body>
<div id="panel" style="display: none">panel</div>
<button id="save" style="color: red">Save</button>
<input class="line" value="1">
<input class="line" value="2" disabled style="display: none">
</body></html>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	tk := pagekit.New(doc, pagekit.WithLogger(pagekit.NopLogger()), pagekit.WithSigningKey([]byte("secret")))

	target := pagekit.Many{pagekit.Selector("#panel"), pagekit.Selector("#save"), pagekit.Selector(".line")}
	token, err := tk.Freeze(target)
	if err != nil {
		t.Fatalf("Freeze failed: %v", err)
	}
	if !pagekit.Disabled(doc.Find("#save")) {
		t.Error("#save not disabled after Freeze")
	}

	// the page moves on while frozen
	tk.Show(pagekit.Selector("#panel"))
	tk.Hide(pagekit.Selector("#save"))
	tk.Show(pagekit.Selector(".line"))

	if err := tk.Thaw(token); err != nil {
		t.Fatalf("Thaw failed: %v", err)
	}

	tests := []struct {
		sel      *goquery.Selection
		style    string
		visible  bool
		disabled bool
	}{
		{doc.Selection().Find("#panel"), "display: none", false, false},
		{doc.Selection().Find("#save"), "color: red", true, false},
		{doc.Selection().Find(".line").Eq(0), "", true, false},
		{doc.Selection().Find(".line").Eq(1), "display: none", false, true},
	}
	for i, tt := range tests {
		el := Wrap(tt.sel)
		style, _ := el.Attr("style")
		if style != tt.style {
			t.Errorf("element %d style = %q, want %q", i, style, tt.style)
		}
		if el.Visible() != tt.visible {
			t.Errorf("element %d Visible() = %v, want %v", i, el.Visible(), tt.visible)
		}
		if pagekit.Disabled(el) != tt.disabled {
			t.Errorf("element %d disabled = %v, want %v", i, pagekit.Disabled(el), tt.disabled)
		}
	}
}

func TestAllowDecimalPerElement(t *testing.T) {
	doc, err := ParseString(`<html><body><input class="m" value="1,5"><input class="m" value="9.75"></body></html>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	tk := pagekit.New(doc, pagekit.WithLogger(pagekit.NopLogger()))

	if err := tk.AllowDecimal(pagekit.Selector(".m")); err != nil {
		t.Fatalf("AllowDecimal failed: %v", err)
	}

	var got []string
	doc.Find(".m").Each(func(_ int, el pagekit.Selection) {
		v, _ := el.Val()
		got = append(got, v)
	})
	if diff := cmp.Diff([]string{"15", "9.75"}, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}
