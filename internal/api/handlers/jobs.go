package handlers

import (
	"context"
	"net/http"
	"slices"

	"github.com/danielgtaylor/huma/v2"

	"github.com/caroogle/bob/internal/engine"
	domain "github.com/caroogle/bob/pkg/types"
)

// scheduledJobs is the display order for the batch jobs the scheduler runs.
var scheduledJobs = []string{
	engine.JobShadowPromotion,
	engine.JobCatalogueAlerts,
	engine.JobFingerprints,
}

// JobsProvider is the slice of the store that reads job run records.
type JobsProvider interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// JobsHandler reports on the shadow promotion, catalogue alert and
// fingerprint refresh runs.
type JobsHandler struct {
	store JobsProvider
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(s JobsProvider) *JobsHandler {
	return &JobsHandler{store: s}
}

// ListJobsOutput holds the latest run of each batch job.
type ListJobsOutput struct {
	Body []domain.JobRun
}

// GetJobHistoryInput selects one batch job's runs.
type GetJobHistoryInput struct {
	JobName string `path:"job_name" enum:"shadow_promotion,catalogue_alerts,fingerprint_refresh" doc:"Batch job"`
	Limit   int    `query:"limit"   minimum:"0" maximum:"500" doc:"Number of runs (default 20)"`
	Status  string `query:"status"  enum:"running,succeeded,failed,crashed" doc:"Only runs that ended in this status"`
}

// GetJobHistoryOutput holds one batch job's runs, newest first.
type GetJobHistoryOutput struct {
	Body []domain.JobRun
}

const defaultJobHistoryLimit = 20

// ListJobs returns the latest run of each batch job, in schedule order
// (shadow promotion, catalogue alerts, fingerprint refresh). Jobs that
// have never run are absent.
func (h *JobsHandler) ListJobs(
	ctx context.Context,
	_ *struct{},
) (*ListJobsOutput, error) {
	runs, err := h.store.ListLatestJobRuns(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing job runs failed: " + err.Error())
	}

	out := make([]domain.JobRun, 0, len(runs))
	out = append(out, runs...)
	slices.SortStableFunc(out, func(a, b domain.JobRun) int {
		return jobOrder(a.JobName) - jobOrder(b.JobName)
	})
	return &ListJobsOutput{Body: out}, nil
}

// jobOrder places unknown job names after the scheduled ones.
func jobOrder(name string) int {
	if i := slices.Index(scheduledJobs, name); i >= 0 {
		return i
	}
	return len(scheduledJobs)
}

// GetJobHistory returns a batch job's runs, newest first. The status filter
// is applied to the limited page, so a filtered page may hold fewer than
// limit runs.
func (h *JobsHandler) GetJobHistory(
	ctx context.Context,
	input *GetJobHistoryInput,
) (*GetJobHistoryOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultJobHistoryLimit
	}

	runs, err := h.store.ListJobRuns(ctx, input.JobName, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError(input.JobName + " history failed: " + err.Error())
	}

	out := make([]domain.JobRun, 0, len(runs))
	for i := range runs {
		if input.Status == "" || runs[i].Status == input.Status {
			out = append(out, runs[i])
		}
	}
	return &GetJobHistoryOutput{Body: out}, nil
}

// RegisterJobRoutes registers the batch job endpoints.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "Latest batch job runs",
		Description: "Returns the most recent shadow promotion, catalogue alert and fingerprint refresh run.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "get-job-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{job_name}",
		Summary:     "Batch job history",
		Description: "Returns one batch job's runs, newest first, optionally filtered by status.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.GetJobHistory)
}
