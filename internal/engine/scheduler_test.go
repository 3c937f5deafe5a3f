package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caroogle/bob/internal/metrics"
	storeMocks "github.com/caroogle/bob/internal/store/mocks"
)

func testIntervals() Intervals {
	return Intervals{
		Matching:     30 * time.Minute,
		Alerts:       15 * time.Minute,
		Fingerprints: 24 * time.Hour,
	}
}

// newSchedulerTestEngine returns a test engine and a mock store for use in scheduler tests.
func newSchedulerTestEngine(t *testing.T) (*Engine, *storeMocks.MockStore) {
	t.Helper()
	ms := storeMocks.NewMockStore(t)
	return newTestEngine(t, ms, nil), ms
}

func TestNewScheduler_RegistersCronEntries(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, testIntervals(), quietLogger())
	require.NoError(t, err)

	assert.Len(t, sched.Entries(), 3)
	assert.NotZero(t, sched.entryIDs[JobShadowPromotion])
	assert.NotZero(t, sched.entryIDs[JobCatalogueAlerts])
	assert.NotZero(t, sched.entryIDs[JobFingerprints])
}

func TestNewScheduler_SkipsDisabledJobs(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	iv := testIntervals()
	iv.Fingerprints = 0

	sched, err := NewScheduler(eng, ms, iv, quietLogger())
	require.NoError(t, err)

	assert.Len(t, sched.Entries(), 2)
	_, ok := sched.entryIDs[JobFingerprints]
	assert.False(t, ok)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, testIntervals(), quietLogger())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
	assert.Error(t, sched.ctx.Err())
}

func TestScheduler_SyncNextRunTimestamps(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, testIntervals(), quietLogger())
	require.NoError(t, err)

	// Start so that cron populates Next times.
	sched.Start()
	defer sched.Stop()

	sched.SyncNextRunTimestamps()

	for _, job := range []string{JobShadowPromotion, JobCatalogueAlerts, JobFingerprints} {
		next := ptestutil.ToFloat64(metrics.SchedulerNextRunTimestamp.WithLabelValues(job))
		assert.Greater(t, next, float64(0), "%s next timestamp should be set", job)
	}
}

func TestScheduler_RunJob_Success(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, testIntervals(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "test-job", sched.holder, 5*time.Minute).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "test-job").Return("run-id-1", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-1", "succeeded", "", 7).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "test-job", sched.holder).
		Return(nil).Once()

	called := false
	err = sched.runJob(context.Background(), "test-job", 5*time.Minute, func(_ context.Context) (int, error) {
		called = true
		return 7, nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestScheduler_RunJob_Failure(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, testIntervals(), quietLogger())
	require.NoError(t, err)

	jobErr := errors.New("something went wrong")

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "fail-job", mock.Anything, mock.Anything).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "fail-job").Return("run-id-2", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-2", "failed", jobErr.Error(), 2).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "fail-job", mock.Anything).
		Return(nil).Once()

	err = sched.runJob(context.Background(), "fail-job", 5*time.Minute, func(_ context.Context) (int, error) {
		return 2, jobErr
	})

	require.ErrorIs(t, err, jobErr)
}

func TestScheduler_RunJob_LockHeld(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, testIntervals(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "busy-job", mock.Anything, mock.Anything).
		Return(false, nil).Once()

	err = sched.runJob(context.Background(), "busy-job", time.Minute, func(_ context.Context) (int, error) {
		t.Fatal("job should not run while locked")
		return 0, nil
	})
	require.NoError(t, err)
}

func TestScheduler_RunJob_LockError(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, testIntervals(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "job", mock.Anything, mock.Anything).
		Return(false, errors.New("db down")).Once()

	err = sched.runJob(context.Background(), "job", time.Minute, func(_ context.Context) (int, error) {
		return 0, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acquiring lock for job")
}

func TestScheduler_RunFingerprintRefresh(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, testIntervals(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, JobFingerprints, mock.Anything, 24*time.Hour).Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, JobFingerprints).Return("run-3", nil).Once()
	ms.EXPECT().ListSales(mock.Anything).Return(nil, nil).Once()
	ms.EXPECT().DeactivateExpiredFingerprints(mock.Anything, fixedNow).Return(0, nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-3", "succeeded", "", 0).Return(nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, JobFingerprints, mock.Anything).Return(nil).Once()

	sched.runFingerprintRefresh()
}

func TestScheduler_RecoverStaleJobs(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, testIntervals(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		RecoverStaleJobRuns(mock.Anything, 2*time.Hour).
		Return(3, nil).Once()

	sched.RecoverStaleJobRuns(context.Background())
}
