// Package notify posts run summaries to webhook destinations after a
// snapshot completes.
package notify

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// RunSummary describes one completed snapshot run.
type RunSummary struct {
	Items    int           `json:"items"`
	Posts    int           `json:"posts"`
	Comments int           `json:"comments"`
	APICalls int           `json:"api_calls"`
	Duration time.Duration `json:"duration"`
}

// Notifier delivers run summaries to a specific destination.
type Notifier interface {
	Name() string
	Send(ctx context.Context, s RunSummary) error
}

// Manager broadcasts summaries to all registered notifiers. Delivery
// failures are logged, never fatal: the merge already committed.
type Manager struct {
	notifiers []Notifier
	log       *logrus.Logger
}

// NewManager creates a notification manager.
func NewManager(notifiers []Notifier, log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Manager{notifiers: notifiers, log: log}
}

// HasNotifiers returns true if at least one notifier is configured.
func (m *Manager) HasNotifiers() bool {
	return len(m.notifiers) > 0
}

// Broadcast sends a summary to every notifier.
func (m *Manager) Broadcast(ctx context.Context, s RunSummary) {
	for _, n := range m.notifiers {
		if err := n.Send(ctx, s); err != nil {
			m.log.WithError(err).WithField("notifier", n.Name()).Warn("notify failed")
		}
	}
}
