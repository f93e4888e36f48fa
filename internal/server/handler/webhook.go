// Package handler provides the HTTP handlers for the deployctl webhook
// server.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/go-github/v73/github"

	"github.com/africonnect/deployctl/internal/config"
	"github.com/africonnect/deployctl/internal/core"
)

// WebhookHandler processes incoming webhooks from GitHub and turns pushes to
// the deployment branch into deploy requests.
type WebhookHandler struct {
	cfg        *config.Config
	dispatcher core.DeployDispatcher
	logger     *slog.Logger
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(cfg *config.Config, dispatcher core.DeployDispatcher, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		cfg:        cfg,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes GitHub webhook requests.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := github.ValidatePayload(r, []byte(h.cfg.Server.WebhookSecret))
	if err != nil {
		h.logger.Error("invalid webhook payload signature", "error", err)
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		h.logger.Error("could not parse webhook", "error", err)
		http.Error(w, "Could not parse webhook", http.StatusBadRequest)
		return
	}

	switch e := event.(type) {
	case *github.PushEvent:
		h.handlePush(r.Context(), w, e)
	case *github.PingEvent:
		_, _ = fmt.Fprint(w, "pong")
	default:
		h.logger.Debug("ignoring unhandled webhook event type", "type", github.WebHookType(r))
		_, _ = fmt.Fprint(w, "Event type not handled")
	}
}

// handlePush dispatches a deployment for pushes to the configured branch.
func (h *WebhookHandler) handlePush(ctx context.Context, w http.ResponseWriter, event *github.PushEvent) {
	deployRef := "refs/heads/" + h.cfg.Git.Branch
	if event.GetRef() != deployRef {
		h.logger.Debug("ignoring push to non-deployment ref", "ref", event.GetRef())
		_, _ = fmt.Fprint(w, "Push ignored")
		return
	}

	req := &core.DeployRequest{
		Trigger:    core.TriggerWebhook,
		Ref:        event.GetRef(),
		HeadSHA:    event.GetAfter(),
		Pusher:     event.GetPusher().GetName(),
		ReceivedAt: time.Now(),
	}

	if err := h.dispatcher.Dispatch(ctx, req); err != nil {
		h.logger.Error("failed to dispatch deployment", "error", err, "ref", req.Ref)
		http.Error(w, "Failed to queue deployment", http.StatusServiceUnavailable)
		return
	}

	h.logger.Info("deployment dispatched", "ref", req.Ref, "head", req.HeadSHA, "pusher", req.Pusher)
	w.WriteHeader(http.StatusAccepted)
	_, _ = fmt.Fprint(w, "Deployment queued")
}
