package infrastructure

import (
	"time"

	"github.com/go-co-op/gocron"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

// RefreshScheduler triggers a weather update at a fixed interval
type RefreshScheduler struct {
	scheduler *gocron.Scheduler
	trigger   ports.UpdateTrigger
	interval  time.Duration
	logger    ports.Logger
}

// NewRefreshScheduler creates a scheduler; a non-positive interval disables it
func NewRefreshScheduler(trigger ports.UpdateTrigger, interval time.Duration, logger ports.Logger) *RefreshScheduler {
	return &RefreshScheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		trigger:   trigger,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the refresh job. The first run waits one full interval.
func (s *RefreshScheduler) Start() error {
	if s.interval <= 0 {
		s.logger.Info("Periodic refresh disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(func() {
		s.logger.Debug("Periodic refresh triggered")
		s.trigger.TriggerUpdate()
	})
	if err != nil {
		return errors.NewConfigurationError("failed to schedule periodic refresh", err)
	}

	s.scheduler.StartAsync()
	s.logger.Info("Periodic refresh scheduled", ports.F("interval", s.interval.String()))
	return nil
}

// Stop cancels future runs
func (s *RefreshScheduler) Stop() {
	if s.scheduler.IsRunning() {
		s.scheduler.Stop()
	}
}
