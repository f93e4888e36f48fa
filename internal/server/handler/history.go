package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/africonnect/deployctl/internal/journal"
)

const defaultHistoryLimit = 20

// HistoryHandler serves recent deployment history from the journal.
type HistoryHandler struct {
	journal *journal.Journal
	logger  *slog.Logger
}

// NewHistoryHandler creates a new history handler. A nil journal means
// history recording is disabled.
func NewHistoryHandler(jnl *journal.Journal, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{journal: jnl, logger: logger}
}

// List writes the most recent deployment entries as JSON.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.journal == nil {
		http.Error(w, "Deployment history is not configured", http.StatusNotFound)
		return
	}

	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := h.journal.List(limit)
	if err != nil {
		h.logger.Error("failed to read deployment history", "error", err)
		http.Error(w, "Failed to read deployment history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		h.logger.Error("failed to encode deployment history", "error", err)
	}
}
