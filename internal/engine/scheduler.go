package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/inventory-tracker/internal/metrics"
	"github.com/donaldgifford/inventory-tracker/internal/store"
)

// Job names recorded in the job run history.
const (
	JobInventoryCheck = "inventory_check"
	JobStoreSync      = "store_sync"
)

const (
	defaultStaleJobAfter = 2 * time.Hour
	storeSyncInterval    = 15 * time.Minute
)

// ErrJobLocked is returned when another scheduler instance holds the job lock.
var ErrJobLocked = errors.New("job is locked by another scheduler")

// Scheduler runs the scheduled inventory check and store health sync.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	log    *slog.Logger

	checkInterval time.Duration
	staleJobAfter time.Duration
	holder        string

	checkEntryID     cron.EntryID
	storeSyncEntryID cron.EntryID
}

// NewScheduler creates a Scheduler that runs a scheduled check every
// checkInterval. Runs left in "running" longer than staleJobAfter are marked
// crashed by RecoverStaleJobRuns; zero uses two hours.
func NewScheduler(
	eng *Engine,
	s store.Store,
	checkInterval time.Duration,
	staleJobAfter time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if checkInterval <= 0 {
		return nil, fmt.Errorf("check interval must be positive, got %s", checkInterval)
	}
	if staleJobAfter <= 0 {
		staleJobAfter = defaultStaleJobAfter
	}

	host, _ := os.Hostname()
	sched := &Scheduler{
		cron:          cron.New(),
		engine:        eng,
		store:         s,
		log:           log,
		checkInterval: checkInterval,
		staleJobAfter: staleJobAfter,
		holder:        fmt.Sprintf("%s-%d", host, os.Getpid()),
	}

	var err error
	sched.checkEntryID, err = sched.cron.AddFunc("@every "+checkInterval.String(), sched.runInventoryCheck)
	if err != nil {
		return nil, fmt.Errorf("scheduling inventory check: %w", err)
	}

	sched.storeSyncEntryID, err = sched.cron.AddFunc("@every "+storeSyncInterval.String(), sched.runStoreSync)
	if err != nil {
		return nil, fmt.Errorf("scheduling store sync: %w", err)
	}

	return sched, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "check_interval", s.checkInterval, "holder", s.holder)
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// NextRuns returns when each job fires next. Jobs are absent until the
// scheduler has been started.
func (s *Scheduler) NextRuns() map[string]time.Time {
	out := make(map[string]time.Time, 2)
	for name, id := range map[string]cron.EntryID{
		JobInventoryCheck: s.checkEntryID,
		JobStoreSync:      s.storeSyncEntryID,
	} {
		if next := s.cron.Entry(id).Next; !next.IsZero() {
			out[name] = next
		}
	}
	return out
}

// SyncNextRunTimestamps publishes the next inventory check time.
func (s *Scheduler) SyncNextRunTimestamps() {
	next := s.cron.Entry(s.checkEntryID).Next
	if !next.IsZero() {
		metrics.SchedulerNextRunTimestamp.Set(float64(next.Unix()))
	}
}

// RecoverStaleJobRuns marks job runs abandoned by a crashed process as crashed.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, s.staleJobAfter)
	if err != nil {
		s.log.Error("recovering stale job runs", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("marked stale job runs as crashed", "count", n)
	}
}

// RunInventoryCheck runs the scheduled check now, under the same job lock
// and history as the cron trigger.
func (s *Scheduler) RunInventoryCheck(ctx context.Context) (*RunSummary, error) {
	var sum *RunSummary
	err := s.runJob(ctx, JobInventoryCheck, s.lockTTL(), func(ctx context.Context) (int, error) {
		var err error
		sum, err = s.engine.RunScheduledCheck(ctx)
		if sum == nil {
			return 0, err
		}
		return sum.Priority + sum.Routine, err
	})
	return sum, err
}

func (s *Scheduler) runInventoryCheck() {
	ctx := context.Background()
	s.log.Info("scheduled inventory check starting")
	sum, err := s.RunInventoryCheck(ctx)
	switch {
	case errors.Is(err, ErrJobLocked):
		s.log.Info("scheduled inventory check skipped, another instance holds the lock")
	case err != nil:
		s.log.Error("scheduled inventory check failed", "error", err)
	default:
		metrics.SchedulerLastRunTimestamp.SetToCurrentTime()
		s.log.Info("scheduled inventory check finished",
			"priority", sum.Priority,
			"routine", sum.Routine,
		)
	}
	s.SyncNextRunTimestamps()
}

func (s *Scheduler) runStoreSync() {
	ctx := context.Background()
	err := s.runJob(ctx, JobStoreSync, time.Minute, func(ctx context.Context) (int, error) {
		return 0, s.engine.SyncStoreMetrics(ctx)
	})
	if err != nil && !errors.Is(err, ErrJobLocked) {
		s.log.Error("store sync failed", "error", err)
	}
}

// lockTTL outlives one check interval so a slow run is not overlapped.
func (s *Scheduler) lockTTL() time.Duration {
	return s.checkInterval + 5*time.Minute
}

// runJob runs fn under a cross-instance lock and records the run along with
// the number of rows fn reports it processed.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	lockTTL time.Duration,
	fn func(context.Context) (int, error),
) error {
	ok, err := s.store.AcquireSchedulerLock(ctx, name, s.holder, lockTTL)
	if err != nil {
		return fmt.Errorf("acquiring lock for %s: %w", name, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrJobLocked)
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(context.WithoutCancel(ctx), name, s.holder); err != nil {
			s.log.Error("releasing scheduler lock", "job", name, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		return fmt.Errorf("recording start of %s: %w", name, err)
	}

	rows, jobErr := fn(ctx)

	status, errText := "succeeded", ""
	if jobErr != nil {
		status, errText = "failed", jobErr.Error()
	}
	if err := s.store.CompleteJobRun(context.WithoutCancel(ctx), runID, status, errText, rows); err != nil {
		s.log.Error("recording end of job run", "job", name, "run_id", runID, "error", err)
	}

	return jobErr
}
