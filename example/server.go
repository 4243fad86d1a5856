package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pthm/pagekit"
	"github.com/pthm/pagekit/lib/config"
)

var (
	errMissingCustomer = errors.New("customer is required")
	errInvalidPrice    = errors.New("price must be a positive number")
)

// Server serves the order form.
type Server struct {
	store *Store
	cfg   config.Config
	csrf  string
	tk    *pagekit.Toolkit
}

// NewServer creates a server for store. csrf is the token pages embed and
// mutating requests must echo.
func NewServer(store *Store, cfg config.Config, csrf string) *Server {
	return &Server{
		store: store,
		cfg:   cfg,
		csrf:  csrf,
		tk:    pagekit.New(nil, cfg.Options()...),
	}
}

// Handler returns the routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.Handle("POST /orders", pagekit.RequireCSRF(s.csrf)(
		pagekit.DecimalFields("price")(http.HandlerFunc(s.handleCreate)),
	))
	mux.HandleFunc("GET /orders/{id}", s.handleOrder)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, Layout(s.csrf, s.store.List()), s.cfg.Options())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.tk.Loader().Respond(w, r, err)
		return
	}

	customer := strings.TrimSpace(r.PostFormValue("customer"))
	if customer == "" {
		s.tk.Loader().Respond(w, r, errMissingCustomer)
		return
	}
	// drafts may be saved before a price is known
	draft := pagekit.TriggerName(r) == "draft"
	price := pagekit.ParseFloat(r.PostFormValue("price"))
	switch {
	case price > 0:
	case draft:
		price = 0
	default:
		s.tk.Loader().Respond(w, r, errInvalidPrice)
		return
	}

	id := s.store.Add(customer, price, r.PostFormValue("delivery"), draft)
	s.cfg.URLs().Redirect(w, r, "orders/"+id)
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	order := s.store.Get(r.PathValue("id"))
	if order == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(pagekit.CapitalizeWords(order.Customer) + " " + pagekit.GroupThousands(pagekit.FormatDecimal(order.Price)) + "\n"))
}
