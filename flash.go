package pagekit

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Flash levels for toast notifications.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// ToastsID is the id of the container toasts are appended to.
const ToastsID = "toasts"

// Flash represents a one-time notification message.
//
// Flashes are rendered as out-of-band (OOB) swaps that append to the
// #toasts container. Regular flashes carry data-auto-dismiss so the client
// removes them after a delay. Sticky flashes stay until the user closes
// them; Loader.Error raises its alert as a sticky error flash.
type Flash struct {
	Level   string // success, error, warning, info
	Message string
	Sticky  bool
}

// RenderFlash renders a single toast element.
func RenderFlash(f Flash) string {
	var sb strings.Builder
	writeFlash(&sb, f)
	return sb.String()
}

// RenderFlashesOOB renders flashes as OOB swap HTML.
//
// Generates HTML that appends to the #toasts container using the
// hx-swap-oob="beforeend" attribute.
func RenderFlashesOOB(flashes []Flash) string {
	if len(flashes) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<div id="` + ToastsID + `" hx-swap-oob="beforeend">`)
	for _, f := range flashes {
		writeFlash(&sb, f)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func writeFlash(sb *strings.Builder, f Flash) {
	sb.WriteString(`<div class="toast toast-`)
	sb.WriteString(html.EscapeString(f.Level))
	if f.Sticky {
		sb.WriteString(`" role="alertdialog">`)
	} else {
		sb.WriteString(`" role="status" data-auto-dismiss="3000">`)
	}
	sb.WriteString(html.EscapeString(f.Message))
	sb.WriteString(`</div>`)
}

// ToastContainer returns a templ component for the toast container.
//
// Add this to your layout template (typically near the end of <body>):
//
//	@pagekit.ToastContainer()
func ToastContainer() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="`+ToastsID+`" class="toast-container"></div>`)
		return err
	})
}
