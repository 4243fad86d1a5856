package pagekit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type recordLogger struct {
	errors []string
}

func (l *recordLogger) Debug(string, ...any) {}
func (l *recordLogger) Info(string, ...any)  {}
func (l *recordLogger) Error(format string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func TestLoaderShowHide(t *testing.T) {
	s, tk := newFixture()
	l := tk.Loader()

	l.Show()
	if find(s, "loading").Hidden {
		t.Error("loader hidden after Show")
	}
	l.Hide()
	if !find(s, "loading").Hidden {
		t.Error("loader visible after Hide")
	}
}

func TestLoaderError(t *testing.T) {
	s, tk := newFixture()
	l := tk.Loader()

	l.Show()
	l.Error(errors.New("request failed"))

	if !find(s, "loading").Hidden {
		t.Error("loader visible after Error")
	}
	alerts := s.Alerts()
	if len(alerts) != 1 || alerts[0] != DefaultErrorMessage {
		t.Errorf("alerts = %q, want [%q]", alerts, DefaultErrorMessage)
	}
}

func TestLoaderCustomSelector(t *testing.T) {
	s := NewFakeSurface()
	spinner := s.Add(&FakeElement{ID: "spinner"})
	tk := New(s, WithLogger(NopLogger()), WithLoader("#spinner", "Try again later"))

	tk.Loader().Error(nil)
	if !spinner.Hidden {
		t.Error("custom loader not hidden")
	}
	if got := s.Alerts(); len(got) != 1 || got[0] != "Try again later" {
		t.Errorf("alerts = %q", got)
	}
}

func TestLoaderRespond(t *testing.T) {
	_, tk := newFixture()
	l := tk.Loader()

	t.Run("htmx", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/save", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()

		l.Respond(rec, req, errors.New("db down"))

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if rec.Header().Get("HX-Reswap") != "none" {
			t.Error("missing HX-Reswap: none")
		}
		trigger := rec.Header().Get("HX-Trigger")
		if !strings.Contains(trigger, LoaderErrorEvent) || !strings.Contains(trigger, "refresh the page") {
			t.Errorf("HX-Trigger = %q", trigger)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `id="loading" hx-swap-oob="true" style="display: none"`) {
			t.Errorf("body does not hide the loader: %s", body)
		}
		if !strings.Contains(body, `role="alertdialog"`) {
			t.Errorf("body has no sticky toast: %s", body)
		}
	})

	t.Run("plain", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/save", nil)
		rec := httptest.NewRecorder()

		l.Respond(rec, req, nil)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), DefaultErrorMessage) {
			t.Errorf("body = %q", rec.Body.String())
		}
	})
}

func TestLoadingIndicator(t *testing.T) {
	var buf bytes.Buffer
	if err := LoadingIndicator("Loading…").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), `id="loading"`) || !strings.Contains(buf.String(), "display: none") {
		t.Errorf("LoadingIndicator() = %q", buf.String())
	}
}

func TestLoaderRespondLogsOrigin(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name: "full htmx context",
			headers: map[string]string{
				"HX-Request":     "true",
				"HX-Trigger":     "save",
				"HX-Target":      "order",
				"HX-Current-URL": "https://shop.test/cart",
			},
			want: "loader: POST /orders (trigger=save target=order page=https://shop.test/cart): db down",
		},
		{
			name:    "trigger only",
			headers: map[string]string{"HX-Request": "true", "HX-Trigger": "save"},
			want:    "loader: POST /orders (trigger=save): db down",
		},
		{
			name: "plain request",
			want: "loader: POST /orders: db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := &recordLogger{}
			tk := New(NewFakeSurface(), WithLogger(logs))

			req := httptest.NewRequest(http.MethodPost, "/orders", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			tk.Loader().Respond(httptest.NewRecorder(), req, errors.New("db down"))

			if len(logs.errors) != 1 || logs.errors[0] != tt.want {
				t.Errorf("logged %q, want [%q]", logs.errors, tt.want)
			}
		})
	}
}

func TestWithLoaderRejectsBadSelector(t *testing.T) {
	s, _ := newFixture()
	logs := &recordLogger{}
	tk := New(s, WithLogger(logs), WithLoader("spinner", ""))

	if len(logs.errors) != 1 || !strings.Contains(logs.errors[0], `"spinner" is not a class or id selector`) {
		t.Errorf("setup errors = %q", logs.errors)
	}

	tk.Loader().Show()
	if find(s, "loading").Hidden {
		t.Error("default #loading not used after a bad selector")
	}
}
