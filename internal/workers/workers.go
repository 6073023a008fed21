package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-gtd/internal/logger"
)

// Workers runs a fixed set of workers side by side.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and returns once all of them
// have stopped after ctx is done.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

// Periodic calls a job every interval.
type Periodic struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context) error
	logger   *logger.Logger
}

func NewPeriodic(name string, interval time.Duration, job func(ctx context.Context) error, logger *logger.Logger) *Periodic {
	return &Periodic{
		name:     name,
		interval: interval,
		job:      job,
		logger:   logger.WithComponent(name),
	}
}

// Run ticks until ctx is done. Job errors are logged and the schedule goes
// on.
func (p *Periodic) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Debug().Dur("interval", p.interval).Msg("worker started")
	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Msg("worker stopped")
			return
		case <-ticker.C:
			if err := p.job(ctx); err != nil {
				p.logger.Warn().Err(err).Msg("worker job failed")
			}
		}
	}
}
