package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunOnce(t *testing.T) {
	s := NewScheduler()

	var ran int32
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, int32(2), atomic.LoadInt32(&ran))
}

func TestSchedulerStartStop(t *testing.T) {
	s := NewScheduler()

	var ran int32
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})

	s.Start()
	s.Stop()

	// Jobs run once immediately on start.
	assert.Equal(t, int32(1), atomic.LoadInt32(&ran))
}
