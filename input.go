package pagekit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

var nonDecimalRegex = regexp.MustCompile(`[^0-9.]`)

// DatePickerSelector matches the inputs DatePicker configures.
const DatePickerSelector = "input.date-format"

// DatePickerAttr carries the widget configuration as JSON.
const DatePickerAttr = "data-daterangepicker"

// SanitizeDecimal strips every character that is not a digit or a dot.
func SanitizeDecimal(s string) string {
	return nonDecimalRegex.ReplaceAllString(s, "")
}

// DecimalAttr marks fields the DecimalGuard script restricts.
const DecimalAttr = "data-allow"

// decimalGuardScript applies AcceptDecimalKey in the browser.
const decimalGuardScript = `<script>document.addEventListener("keypress",function(e){` +
	`var el=e.target;if(!el.matches||!el.matches('[` + DecimalAttr + `="decimal"]')||e.key.length!==1)return;` +
	`if(e.key>="0"&&e.key<="9")return;` +
	`if(e.key==="."&&el.value.indexOf(".")<0)return;` +
	`e.preventDefault();});</script>`

// AcceptDecimalKey reports whether key may be typed into a decimal-only
// field currently holding value: digits always, a dot only when value has
// none yet. DecimalGuard enforces the same rule on the client.
func AcceptDecimalKey(value string, key rune) bool {
	if key >= '0' && key <= '9' {
		return true
	}
	return key == '.' && !strings.Contains(value, ".")
}

// AllowDecimal turns every resolvable entry of target into a decimal-only
// field: the current value is sanitized and the element is marked with
// inputmode="decimal" and data-allow="decimal", which DecimalGuard picks
// up on the client.
func (t *Toolkit) AllowDecimal(target Target) error {
	return t.each("allow-decimal", target, func(s Selection) {
		s.Each(func(_ int, el Selection) {
			if v, ok := el.Val(); ok {
				if clean := SanitizeDecimal(v); clean != v {
					el.SetVal(clean)
				}
			}
		})
		s.SetAttr("inputmode", "decimal")
		s.SetAttr(DecimalAttr, "decimal")
	})
}

// DecimalGuard renders the script that rejects keystrokes AcceptDecimalKey
// would reject in every data-allow="decimal" field. Include it once per page.
func DecimalGuard() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, decimalGuardScript)
		return err
	})
}

// DecimalFields returns middleware that sanitizes the named form fields
// with SanitizeDecimal before the next handler runs.
//
//	mux.Handle("/invoice", pagekit.DecimalFields("amount", "tax")(invoiceHandler))
func DecimalFields(fields ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Bad request", http.StatusBadRequest)
				return
			}
			for _, name := range fields {
				sanitizeValues(r.Form[name])
				sanitizeValues(r.PostForm[name])
			}
			next.ServeHTTP(w, r)
		})
	}
}

func sanitizeValues(values []string) {
	for i, v := range values {
		values[i] = SanitizeDecimal(v)
	}
}

// DatePickerLocale is the locale block of the date range picker widget.
type DatePickerLocale struct {
	Format      string `json:"format"`
	CancelLabel string `json:"cancelLabel"`
}

// DatePickerOptions is handed to the client-side date range picker
// unchanged.
type DatePickerOptions struct {
	SingleDatePicker bool             `json:"singleDatePicker"`
	AutoUpdateInput  bool             `json:"autoUpdateInput"`
	Locale           DatePickerLocale `json:"locale"`
}

// DefaultDatePicker returns the single-date, DD-MM-YYYY configuration with
// a "Clear" cancel button.
func DefaultDatePicker() DatePickerOptions {
	return DatePickerOptions{
		SingleDatePicker: true,
		AutoUpdateInput:  false,
		Locale: DatePickerLocale{
			Format:      "DD-MM-YYYY",
			CancelLabel: "Clear",
		},
	}
}

// DatePicker attaches opts to every input.date-format element and returns
// how many elements were configured.
func (t *Toolkit) DatePicker(opts DatePickerOptions) (int, error) {
	if t.surface == nil {
		return 0, nil
	}
	encoded, err := json.Marshal(opts)
	if err != nil {
		return 0, err
	}

	sel := t.surface.Find(DatePickerSelector)
	if sel.Len() == 0 {
		return 0, nil
	}
	sel.SetAttr(DatePickerAttr, string(encoded))
	return sel.Len(), nil
}
