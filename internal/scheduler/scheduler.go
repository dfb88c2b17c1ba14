// Package scheduler drives the day-rollover flag refresh. Without it, an
// event dated yesterday keeps participating in conflicts until the next
// store mutation happens to re-run detection.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"lifeplanner/internal/event"
	"lifeplanner/pkg/log"
)

type Scheduler struct {
	l       log.Logger
	cron    *cron.Cron
	planner event.Planner
	spec    string
}

// New creates a scheduler that runs planner.RefreshIssues on the given
// cron spec (standard 5-field format).
func New(l log.Logger, planner event.Planner, spec string) *Scheduler {
	return &Scheduler{
		l:       l,
		cron:    cron.New(),
		planner: planner,
		spec:    spec,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.planner.RefreshIssues(ctx); err != nil {
			s.l.Errorf(ctx, "scheduler: RefreshIssues: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.l.Infof(ctx, "scheduler: flag refresh scheduled (%s)", s.spec)
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
