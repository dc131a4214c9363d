// Package cron runs background jobs on a daily schedule without an
// external scheduler dependency.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a named unit of scheduled work.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Scheduler fires its jobs once per day at a fixed wall-clock time.
type Scheduler struct {
	hour   int
	minute int
	loc    *time.Location
	jobs   []Job
	logger *slog.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewScheduler(hour, minute int, loc *time.Location, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		hour:   hour,
		minute: minute,
		loc:    loc,
		logger: logger,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Register adds a job. Must be called before Start.
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
}

// Start launches the scheduler loop in its own goroutine.
func (s *Scheduler) Start() {
	go s.loop()
}

// Stop signals the loop to exit and waits for it.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

func (s *Scheduler) loop() {
	defer close(s.done)

	for {
		next := s.nextRun(time.Now().In(s.loc))
		timer := time.NewTimer(time.Until(next))

		select {
		case <-s.stop:
			timer.Stop()
			return
		case <-timer.C:
			s.runAll()
		}
	}
}

func (s *Scheduler) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, s.minute, 0, 0, s.loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *Scheduler) runAll() {
	for _, job := range s.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)

		start := time.Now()
		if err := job.Run(ctx); err != nil {
			s.logger.Error("scheduled job failed",
				slog.String("job", job.Name),
				slog.String("error", err.Error()),
			)
		} else {
			s.logger.Info("scheduled job completed",
				slog.String("job", job.Name),
				slog.Duration("elapsed", time.Since(start)),
			)
		}

		cancel()
	}
}
