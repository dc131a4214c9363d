package cron

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewScheduler(1, 0, time.UTC, logger)

	// Before today's run time: fires today.
	now := time.Date(2026, 3, 2, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC), s.nextRun(now))

	// After today's run time: fires tomorrow.
	now = time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC), s.nextRun(now))
}

func TestStopWithoutRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewScheduler(1, 0, time.UTC, logger)
	s.Start()
	s.Stop()
}
