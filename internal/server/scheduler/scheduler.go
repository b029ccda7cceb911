// Package scheduler periodically enqueues the full price sync, replacing an
// external cron/beat process with an in-process ticker loop.
package scheduler

import (
	"context"
	"time"

	"github.com/avoronov/itemkeeper/internal/logging"
	"github.com/avoronov/itemkeeper/internal/server/tasks"
)

// Enqueuer is the slice of the task queue the scheduler needs.
type Enqueuer interface {
	Enqueue(name string, args tasks.Args) (string, error)
}

type Scheduler struct {
	queue     Enqueuer
	interval  time.Duration
	batchSize int
	logger    logging.Logger
}

func NewScheduler(queue Enqueuer, interval time.Duration, batchSize int, logger logging.Logger) *Scheduler {
	return &Scheduler{
		queue:     queue,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger.With("module", "scheduler"),
	}
}

// Run enqueues a full sync every interval until ctx is cancelled. It blocks;
// callers run it on its own goroutine. A non-positive interval disables the
// scheduler.
func (s *Scheduler) Run(ctx context.Context) {

	if s.interval <= 0 {
		s.logger.Info(ctx, "periodic sync disabled")
		return
	}

	s.logger.Info(ctx, "starting periodic sync", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			id, err := s.queue.Enqueue(tasks.TaskSyncAll, tasks.Args{BatchSize: s.batchSize})
			if err != nil {
				s.logger.Error(ctx, "error enqueueing periodic sync", "error", err.Error())
				continue
			}
			s.logger.Info(ctx, "enqueued periodic sync", "task_id", id)
		}
	}
}
