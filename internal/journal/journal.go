// Package journal keeps a local history of deployment runs. The history is
// an append-only YAML file; the deploy procedure itself never reads it.
package journal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/africonnect/deployctl/internal/core"
)

// Entry statuses.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Entry records the outcome of one deployment run.
type Entry struct {
	StartedAt        time.Time `yaml:"started_at" json:"started_at"`
	FinishedAt       time.Time `yaml:"finished_at" json:"finished_at"`
	Trigger          string    `yaml:"trigger" json:"trigger"`
	Status           string    `yaml:"status" json:"status"`
	PreviousRevision string    `yaml:"previous_revision,omitempty" json:"previous_revision,omitempty"`
	NewRevision      string    `yaml:"new_revision,omitempty" json:"new_revision,omitempty"`
	ImageRebuilt     bool      `yaml:"image_rebuilt" json:"image_rebuilt"`
	ChangedFiles     []string  `yaml:"changed_files,omitempty" json:"changed_files,omitempty"`
	Error            string    `yaml:"error,omitempty" json:"error,omitempty"`
}

// NewEntry builds a journal entry from a deployment result and its error.
// On failure res may be nil; the entry then only carries the trigger and
// the error text.
func NewEntry(req *core.DeployRequest, res *core.Result, runErr error) *Entry {
	e := &Entry{
		FinishedAt: time.Now(),
		Status:     StatusSucceeded,
	}
	if req != nil {
		e.Trigger = req.Trigger
	}
	if res != nil {
		e.StartedAt = res.StartedAt
		e.PreviousRevision = res.PreviousRevision
		e.NewRevision = res.NewRevision
		e.ImageRebuilt = res.ImageRebuilt
		e.ChangedFiles = res.ChangedFiles
	}
	if runErr != nil {
		e.Status = StatusFailed
		e.Error = runErr.Error()
	}
	return e
}

// Journal is a file-backed deployment history.
type Journal struct {
	path   string
	mu     sync.Mutex
	logger *slog.Logger
}

// New returns a Journal persisting to path.
func New(path string, logger *slog.Logger) *Journal {
	if logger == nil {
		logger = slog.Default()
	}
	return &Journal{path: path, logger: logger}
}

// Append adds an entry to the history file, creating it if needed.
func (j *Journal) Append(entry *Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries, err := j.read()
	if err != nil {
		return err
	}
	entries = append(entries, *entry)

	if err := os.MkdirAll(filepath.Dir(j.path), 0o750); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}
	if err := os.WriteFile(j.path, data, 0o600); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

// List returns up to limit entries, most recent last. A non-positive limit
// returns all entries.
func (j *Journal) List(limit int) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries, err := j.read()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

func (j *Journal) read() ([]Entry, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read journal: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse journal: %w", err)
	}
	return entries, nil
}
