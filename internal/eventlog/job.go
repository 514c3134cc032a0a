package eventlog

import (
	"context"
	"time"

	"github.com/osse101/potionshop/internal/domain"
	"github.com/osse101/potionshop/internal/event"
	"github.com/osse101/potionshop/internal/logger"
)

// CleanupJob prunes the journal whenever a day ends
type CleanupJob struct {
	service       Service
	retentionDays int
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob(service Service, retentionDays int) *CleanupJob {
	return &CleanupJob{
		service:       service,
		retentionDays: retentionDays,
	}
}

// Register runs the job after every day.advanced event. Subscribe it after
// the journal so the closing entry is written first.
func (j *CleanupJob) Register(bus event.Bus) {
	bus.Subscribe(domain.EventTypeDayAdvanced, func(ctx context.Context, _ event.Event) error {
		return j.Process(ctx)
	})
}

// Process executes the cleanup job
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCleanupJobStarting, LogFieldRetentionDays, j.retentionDays)

	start := time.Now()
	count, err := j.service.CleanupOldDays(ctx, j.retentionDays)
	duration := time.Since(start)

	if err != nil {
		log.Error(LogMsgCleanupJobFailed, LogFieldError, err, LogFieldDuration, duration)
		return err
	}

	log.Debug(LogMsgCleanupJobCompleted, LogFieldDeletedCount, count, LogFieldDuration, duration)
	return nil
}
