package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/relforge/herald/internal/core"
	"github.com/relforge/herald/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and
// the dispatch routes.
func NewRouter(dispatcher core.TaskDispatcher, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		dispatchHandler := handler.NewDispatchHandler(dispatcher, logger)
		r.Post("/tasks/{name}", dispatchHandler.Handle)
	})

	return r
}
