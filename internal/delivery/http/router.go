package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"guestlist/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(register *controllers.RegisterController, guests *controllers.GuestsController) *http.ServeMux {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /{$}", register.ShowForm)
	mux.HandleFunc("POST /register", register.Submit)
	mux.HandleFunc("GET /guests", guests.List)

	// Operations
	mux.HandleFunc("GET /healthz", Healthz())
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
