package rate

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Scheduler struct {
	cache            *Cache
	flushJobInterval time.Duration
	// -----
	sched gocron.Scheduler
}

func NewScheduler(cache *Cache, flushJobInterval time.Duration) *Scheduler {
	return &Scheduler{cache: cache, flushJobInterval: flushJobInterval}
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func() {
		execID := uuid.NewString()
		FlushCachedRates(execID, s.cache)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.flushJobInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)

	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}
