// Package store defines the datastore abstraction for bob. All business
// logic depends on the Store interface, never on concrete implementations.
// This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/caroogle/bob/pkg/types"
)

// ErrNotFound is returned when a lookup by ID matches no row.
var ErrNotFound = errors.New("not found")

// Job run statuses.
const (
	JobStatusRunning   = "running"
	JobStatusSucceeded = "succeeded"
	JobStatusFailed    = "failed"
	JobStatusCrashed   = "crashed"
)

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	SourceType *string
	Status     *string
	Make       *string
	Outcome    *string
	Limit      int // default 50
	Offset     int
	OrderBy    string // "first_seen_at", "updated_at", "asking_price"
}

// OpportunityQuery defines optional filters for opportunity queries.
type OpportunityQuery struct {
	Status      *string
	Tier        *string
	MatchMode   *string
	Make        *string
	Model       *string
	MinUnderBuy *float64
	Limit       int // default 50
	Offset      int
	OrderBy     string // "priority", "under_buy", "margin", "created_at"
}

// AlertQuery defines optional filters for alert log queries.
type AlertQuery struct {
	Dealer    *string
	AlertType *string
	Notified  *bool
	Since     *time.Time
	Limit     int // default 50
	Offset    int
}

// Store defines all data access operations for bob.
type Store interface {
	// Listings
	UpsertListing(ctx context.Context, l *domain.Listing) error
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, q *ListingQuery) ([]domain.Listing, int, error)
	ListListingsToScore(ctx context.Context, limit int) ([]domain.Listing, error)
	ListListingsToAlert(ctx context.Context, limit int) ([]domain.Listing, error)
	MarkListingScored(ctx context.Context, id string, seen time.Time, outcome string) error
	MarkListingAlerted(ctx context.Context, id string, seen time.Time) error

	// Sales
	UpsertSale(ctx context.Context, s *domain.HistoricalSale) error
	ListSales(ctx context.Context) ([]domain.HistoricalSale, error)

	// Fingerprints
	UpsertFingerprint(ctx context.Context, f *domain.Fingerprint) error
	ListActiveFingerprints(ctx context.Context, dealer string) ([]domain.Fingerprint, error)
	DeactivateExpiredFingerprints(ctx context.Context, now time.Time) (int, error)

	// Opportunities
	UpsertOpportunity(ctx context.Context, o *domain.Opportunity) (created bool, err error)
	GetOpportunity(ctx context.Context, id string) (*domain.Opportunity, error)
	ListOpportunities(ctx context.Context, q *OpportunityQuery) ([]domain.Opportunity, int, error)
	UpdateOpportunityStatus(ctx context.Context, id string, status domain.OpportunityStatus) error

	// Alerts
	InsertAlert(ctx context.Context, a *domain.AlertLogEntry) (inserted bool, err error)
	ListPendingAlerts(ctx context.Context) ([]domain.AlertLogEntry, error)
	ListAlerts(ctx context.Context, q *AlertQuery) ([]domain.AlertLogEntry, int, error)
	MarkAlertsNotified(ctx context.Context, ids []string) error

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
