package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/lexicon/internal/dictionary"
)

// StatsSource exposes the cache counters to report.
type StatsSource interface {
	Stats() dictionary.CacheStats
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule validates a five-field cron schedule string.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// StatsReporter periodically logs dictionary cache statistics.
type StatsReporter struct {
	source   StatsSource
	schedule string
	logger   *slog.Logger

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool

	lastMu sync.Mutex
	last   dictionary.CacheStats
}

// NewStatsReporter creates a reporter for source. A nil logger means slog.Default().
func NewStatsReporter(source StatsSource, schedule string, logger *slog.Logger) *StatsReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsReporter{
		source:   source,
		schedule: schedule,
		logger:   logger,
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// Start schedules the report job. The reporter stops when ctx is done.
func (r *StatsReporter) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(r.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", r.schedule, err)
	}

	entryID, err := r.cron.AddFunc(r.schedule, r.Report)
	if err != nil {
		return fmt.Errorf("failed to schedule stats job: %w", err)
	}
	r.entryID = entryID

	r.cron.Start()
	r.isRunning = true

	r.logger.Info("Stats reporter started", slog.String("schedule", r.schedule))

	go func() {
		<-ctx.Done()
		r.Stop()
	}()

	return nil
}

// Stop waits for a running report to finish and stops the scheduler.
func (r *StatsReporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRunning {
		return
	}

	<-r.cron.Stop().Done()
	r.cron.Remove(r.entryID)
	r.isRunning = false

	r.logger.Info("Stats reporter stopped")
}

// IsRunning returns whether the scheduler is active.
func (r *StatsReporter) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isRunning
}

// NextRunTime returns when the next report will be logged, or nil when stopped.
func (r *StatsReporter) NextRunTime() *time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.isRunning {
		return nil
	}

	for _, entry := range r.cron.Entries() {
		if entry.ID == r.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// Report logs the current statistics together with the change since the
// previous report.
func (r *StatsReporter) Report() {
	stats := r.source.Stats()

	r.lastMu.Lock()
	prev := r.last
	r.last = stats
	r.lastMu.Unlock()

	r.logger.Info("Dictionary cache stats",
		slog.Int("partitions", stats.Partitions),
		slog.Int("words", stats.Words),
		slog.Int64("hits", stats.Hits),
		slog.Int64("misses", stats.Misses),
		slog.Int64("loads", stats.Loads),
		slog.Int64("failed_loads", stats.FailedLoads),
		slog.Int64("hits_delta", stats.Hits-prev.Hits),
		slog.Int64("misses_delta", stats.Misses-prev.Misses),
	)
}
