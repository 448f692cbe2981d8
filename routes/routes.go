package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"welcome-app/handlers"
	"welcome-app/middlewares"
)

// Handler is the full HTTP surface: paths are matched without regard to
// case or a trailing slash before they reach the router.
func Handler(logger *zap.Logger) http.Handler {
	return middlewares.Chain(NewRouter(logger), middleware.StripSlashes, middlewares.LowercasePath)
}

func NewRouter(logger *zap.Logger) *mux.Router {
	r := mux.NewRouter()
	RegisterRoutes(r, logger)
	return r
}

func RegisterRoutes(r *mux.Router, logger *zap.Logger) {
	// Order matters: Recovery sits innermost so the logger and metrics
	// still see the 500 it writes.
	chain := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middlewares.RequestLogger(logger),
		middlewares.Metrics(),
		middlewares.Recovery(logger),
	}
	for _, mw := range chain {
		r.Use(mw)
	}

	static := []struct {
		path    string
		handler http.Handler
	}{
		{"/", http.HandlerFunc(handlers.Welcome)},

		// --- Health & Readiness ---
		{"/health", http.HandlerFunc(handlers.Health)},
		{"/ready", http.HandlerFunc(handlers.Ready)},

		{"/metrics", promhttp.Handler()},
	}
	for _, s := range static {
		r.Handle(s.path, s.handler).Methods(http.MethodGet, http.MethodHead)
		r.HandleFunc(s.path, handlers.Options).Methods(http.MethodOptions)
	}

	// mux skips Use middleware when nothing matches, so the fallbacks get
	// the same chain explicitly.
	r.NotFoundHandler = middlewares.Chain(http.HandlerFunc(handlers.NotFound), chain...)
	r.MethodNotAllowedHandler = middlewares.Chain(http.HandlerFunc(handlers.MethodNotAllowed), chain...)
}
