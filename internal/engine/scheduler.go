package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/caroogle/bob/internal/metrics"
	"github.com/caroogle/bob/internal/store"
)

const staleJobAge = 2 * time.Hour

// Intervals configures how often each scheduled job runs. A non-positive
// interval leaves the job unscheduled.
type Intervals struct {
	Matching     time.Duration
	Alerts       time.Duration
	Fingerprints time.Duration
	// Stagger delays each alerts run so it does not start on the same tick
	// as matching.
	Stagger time.Duration
}

// Scheduler manages periodic matching, alerting and fingerprint refresh.
// Every run takes a database lock and is recorded as a job run.
type Scheduler struct {
	cron      *cron.Cron
	engine    *Engine
	store     store.Store
	log       *slog.Logger
	holder    string
	intervals Intervals
	entryIDs  map[string]cron.EntryID

	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a new Scheduler that runs engine tasks on a schedule.
func NewScheduler(
	eng *Engine,
	s store.Store,
	intervals Intervals,
	log *slog.Logger,
) (*Scheduler, error) {
	if log == nil {
		log = slog.Default()
	}
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	ctx, cancel := context.WithCancel(context.Background())
	sched := &Scheduler{
		cron:      cron.New(),
		engine:    eng,
		store:     s,
		log:       log,
		holder:    host + "/" + uuid.NewString(),
		intervals: intervals,
		entryIDs:  make(map[string]cron.EntryID),
		ctx:       ctx,
		cancel:    cancel,
	}

	jobs := []struct {
		name     string
		interval time.Duration
		run      func()
	}{
		{JobShadowPromotion, intervals.Matching, sched.runShadowPromotion},
		{JobCatalogueAlerts, intervals.Alerts, sched.runCatalogueAlerts},
		{JobFingerprints, intervals.Fingerprints, sched.runFingerprintRefresh},
	}
	for _, j := range jobs {
		if j.interval <= 0 {
			continue
		}
		id, err := sched.cron.AddFunc("@every "+j.interval.String(), j.run)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("scheduling %s: %w", j.name, err)
		}
		sched.entryIDs[j.name] = id
	}

	return sched, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "jobs", len(s.entryIDs))
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop cancels running jobs and stops the scheduler. The returned context
// is done once running jobs have returned.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	s.cancel()
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes each job's next run time.
func (s *Scheduler) SyncNextRunTimestamps() {
	for name, id := range s.entryIDs {
		next := s.cron.Entry(id).Next
		if next.IsZero() {
			continue
		}
		metrics.SchedulerNextRunTimestamp.WithLabelValues(name).Set(float64(next.Unix()))
	}
}

// RecoverStaleJobRuns marks job runs left running by a crashed process.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobAge)
	if err != nil {
		s.log.Error("recovering stale job runs", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("marked stale job runs as crashed", "count", n)
	}
}

// runJob takes the job's lock, records a job run around fn and releases the
// lock. A lock held elsewhere skips the run without error.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	ttl time.Duration,
	fn func(context.Context) (int, error),
) error {
	ok, err := s.store.AcquireSchedulerLock(ctx, name, s.holder, ttl)
	if err != nil {
		return fmt.Errorf("acquiring lock for %s: %w", name, err)
	}
	if !ok {
		s.log.Info("job locked by another instance, skipping", "job", name)
		return nil
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(context.WithoutCancel(ctx), name, s.holder); err != nil {
			s.log.Error("releasing scheduler lock", "job", name, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		return fmt.Errorf("recording job run for %s: %w", name, err)
	}

	rows, jobErr := fn(ctx)

	status, errText := store.JobStatusSucceeded, ""
	if jobErr != nil {
		status, errText = store.JobStatusFailed, jobErr.Error()
	}
	if err := s.store.CompleteJobRun(context.WithoutCancel(ctx), runID, status, errText, rows); err != nil {
		s.log.Error("completing job run", "job", name, "run", runID, "error", err)
	}

	s.SyncNextRunTimestamps()
	return jobErr
}

func (s *Scheduler) logResult(name string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, ErrRunInProgress):
		s.log.Warn("scheduled run skipped, previous run still active", "job", name)
	case isCancel(err):
		s.log.Warn("scheduled run cancelled", "job", name)
	default:
		s.log.Error("scheduled run failed", "job", name, "error", err)
	}
}

func (s *Scheduler) runShadowPromotion() {
	s.log.Info("scheduled shadow promotion starting")
	err := s.runJob(s.ctx, JobShadowPromotion, s.intervals.Matching, func(ctx context.Context) (int, error) {
		res, err := s.engine.RunShadowPromotion(ctx)
		if res == nil {
			return 0, err
		}
		return res.Opportunities, err
	})
	s.logResult(JobShadowPromotion, err)
}

func (s *Scheduler) runCatalogueAlerts() {
	if s.intervals.Stagger > 0 {
		select {
		case <-s.ctx.Done():
			return
		case <-time.After(s.intervals.Stagger):
		}
	}

	s.log.Info("scheduled catalogue alerts starting")
	err := s.runJob(s.ctx, JobCatalogueAlerts, s.intervals.Alerts, func(ctx context.Context) (int, error) {
		res, err := s.engine.RunCatalogueAlerts(ctx)
		if err != nil {
			if res == nil {
				return 0, err
			}
			return res.Alerts, err
		}
		// Delivery failures are retried on the next run.
		_ = s.engine.DeliverAlerts(ctx)
		return res.Alerts, nil
	})
	s.logResult(JobCatalogueAlerts, err)
}

func (s *Scheduler) runFingerprintRefresh() {
	s.log.Info("scheduled fingerprint refresh starting")
	err := s.runJob(s.ctx, JobFingerprints, s.intervals.Fingerprints, func(ctx context.Context) (int, error) {
		res, err := s.engine.RefreshFingerprints(ctx)
		if res == nil {
			return 0, err
		}
		return res.Upserted, err
	})
	s.logResult(JobFingerprints, err)
}
