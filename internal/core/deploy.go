// Package core defines the interfaces and transfer types shared by the
// deployment pipeline. The concrete implementations (git sync, compose,
// proxy reload) live in their own packages and are wired together in
// internal/app.
package core

import "time"

// Triggers for a deployment run.
const (
	TriggerManual  = "manual"
	TriggerWebhook = "webhook"
)

// DeployRequest describes why a deployment should run. For manual runs most
// fields stay empty; webhook-triggered runs carry the push metadata so it can
// be logged and journaled.
type DeployRequest struct {
	Trigger    string
	Ref        string
	HeadSHA    string
	Pusher     string
	ReceivedAt time.Time
}

// Result is the outcome of a completed deployment run.
type Result struct {
	Trigger          string
	PreviousRevision string
	NewRevision      string
	ChangedFiles     []string
	ImageRebuilt     bool
	StartedAt        time.Time
	Duration         time.Duration
}

// UpToDate reports whether the sync left the working tree on the same
// revision it started from.
func (r *Result) UpToDate() bool {
	return r.PreviousRevision == r.NewRevision
}
