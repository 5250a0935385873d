// Package scheduler runs the snapshot pipeline on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/ccmoon/moonpulse/internal/pipeline"
	"github.com/ccmoon/moonpulse/internal/store"
	"github.com/ccmoon/moonpulse/pkg/notify"
	"github.com/ccmoon/moonpulse/pkg/redditsrc"
)

// CollectorFactory builds a fresh collector and call counter per run, so
// each run's window and API-call totals are its own.
type CollectorFactory func(now time.Time) (redditsrc.Collector, *redditsrc.CallCounter, error)

// Scheduler triggers snapshot runs.
type Scheduler struct {
	pipe     *pipeline.Pipeline
	store    store.Store
	factory  CollectorFactory
	notifier *notify.Manager
	spec     string
	log      *logrus.Logger
}

// New creates a scheduler. spec is a standard 5-field cron expression.
func New(pipe *pipeline.Pipeline, st store.Store, factory CollectorFactory, notifier *notify.Manager, spec string, log *logrus.Logger) *Scheduler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scheduler{
		pipe:     pipe,
		store:    st,
		factory:  factory,
		notifier: notifier,
		spec:     spec,
		log:      log,
	}
}

// Run blocks until ctx is cancelled, running the snapshot on schedule.
func (s *Scheduler) Run(ctx context.Context) error {
	c := cron.New()

	_, err := c.AddFunc(s.spec, func() { s.runOnce(ctx) })
	if err != nil {
		return fmt.Errorf("parse cron spec %q: %w", s.spec, err)
	}

	s.log.WithField("cron", s.spec).Info("scheduler running")
	c.Start()

	<-ctx.Done()
	stopCtx := c.Stop()
	<-stopCtx.Done()
	s.log.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) runOnce(ctx context.Context) {
	collector, calls, err := s.factory(time.Now().UTC())
	if err != nil {
		s.log.WithError(err).Error("build collector")
		return
	}

	res, err := s.pipe.Snapshot(ctx, collector, s.store, calls)
	if err != nil {
		s.log.WithError(err).Error("snapshot run failed")
		return
	}

	if s.notifier != nil {
		s.notifier.Broadcast(ctx, notify.RunSummary{
			Items:    res.Items,
			Posts:    res.Posts,
			Comments: res.Comments,
			APICalls: res.APICalls,
			Duration: res.Duration,
		})
	}
}
