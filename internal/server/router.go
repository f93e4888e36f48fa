package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/africonnect/deployctl/internal/config"
	"github.com/africonnect/deployctl/internal/core"
	"github.com/africonnect/deployctl/internal/journal"
	"github.com/africonnect/deployctl/internal/server/handler"
)

// NewRouter creates and configures the HTTP router with middleware and API
// routes.
func NewRouter(cfg *config.Config, dispatcher core.DeployDispatcher, jnl *journal.Journal, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		webhookHandler := handler.NewWebhookHandler(cfg, dispatcher, logger)
		r.Post("/webhook/github", webhookHandler.Handle)

		historyHandler := handler.NewHistoryHandler(jnl, logger)
		r.Get("/deployments", historyHandler.List)
	})

	return r
}
