package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/caroogle/bob/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize sets the maximum number of pooled connections.
func WithPoolSize(n int) PostgresOption {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = int32(n) //nolint:gosec // pool size comes from validated config
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...PostgresOption) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertListing inserts or updates a listing by (source_type, source_id).
func (s *PostgresStore) UpsertListing(ctx context.Context, l *domain.Listing) error {
	args := pgx.NamedArgs{
		"source_type":      l.SourceType,
		"source_id":        l.SourceID,
		"lot_id":           l.LotID,
		"title":            l.Title,
		"description":      l.Description,
		"make":             l.Make,
		"model":            l.Model,
		"variant":          l.Variant,
		"year":             l.Year,
		"km":               l.Km,
		"asking_price":     l.AskingPrice,
		"drivetrain":       l.Drivetrain,
		"location":         l.Location,
		"status":           l.Status,
		"pass_count":       l.PassCount,
		"relist_count":     l.RelistCount,
		"reserve":          l.Reserve,
		"price_change_pct": l.PriceChangePct,
	}

	if err := s.pool.QueryRow(ctx, queryUpsertListing, args).Scan(
		&l.ID, &l.FirstSeenAt, &l.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upserting listing %s/%s: %w", l.SourceType, l.SourceID, err)
	}
	return nil
}

// GetListing retrieves a listing by its internal UUID.
func (s *PostgresStore) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	l := &domain.Listing{}
	err := scanListing(s.pool.QueryRow(ctx, queryGetListingByID, id), l)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting listing: %w", err)
	}
	return l, nil
}

// ListListings queries listings with optional filters, returning results and total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	q *ListingQuery,
) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	listings, err := s.queryListings(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// ListListingsToScore returns open listings changed since they were last scored.
func (s *PostgresStore) ListListingsToScore(ctx context.Context, limit int) ([]domain.Listing, error) {
	return s.queryListings(ctx, queryListListingsToScore, limit)
}

// ListListingsToAlert returns open listings changed since they were last
// checked for alerts.
func (s *PostgresStore) ListListingsToAlert(ctx context.Context, limit int) ([]domain.Listing, error) {
	return s.queryListings(ctx, queryListListingsToAlert, limit)
}

// MarkListingScored records the scoring outcome for the listing state
// loaded at seen (the row's updated_at when it was read).
func (s *PostgresStore) MarkListingScored(ctx context.Context, id string, seen time.Time, outcome string) error {
	if _, err := s.pool.Exec(ctx, queryMarkListingScored, id, outcome, seen); err != nil {
		return fmt.Errorf("marking listing scored: %w", err)
	}
	return nil
}

// MarkListingAlerted records that the listing state loaded at seen was
// checked for alerts.
func (s *PostgresStore) MarkListingAlerted(ctx context.Context, id string, seen time.Time) error {
	if _, err := s.pool.Exec(ctx, queryMarkListingAlerted, id, seen); err != nil {
		return fmt.Errorf("marking listing alerted: %w", err)
	}
	return nil
}

// UpsertSale inserts or updates a historical sale by source_id.
func (s *PostgresStore) UpsertSale(ctx context.Context, sale *domain.HistoricalSale) error {
	args := pgx.NamedArgs{
		"source_id":      sale.SourceID,
		"dealer":         sale.Dealer,
		"make":           sale.Make,
		"model":          sale.Model,
		"platform_class": sale.PlatformClass,
		"trim_class":     sale.TrimClass,
		"variant_raw":    sale.VariantRaw,
		"year":           sale.Year,
		"km":             sale.Km,
		"drivetrain":     string(sale.Drivetrain),
		"buy_price":      sale.BuyPrice,
		"sale_price":     sale.SalePrice,
		"sold_at":        sale.SoldAt,
	}

	if err := s.pool.QueryRow(ctx, queryUpsertSale, args).Scan(&sale.ID); err != nil {
		return fmt.Errorf("upserting sale %s: %w", sale.SourceID, err)
	}
	return nil
}

// ListSales returns the full sales corpus, newest first.
func (s *PostgresStore) ListSales(ctx context.Context) ([]domain.HistoricalSale, error) {
	rows, err := s.pool.Query(ctx, queryListSales)
	if err != nil {
		return nil, fmt.Errorf("querying sales: %w", err)
	}
	defer rows.Close()

	var sales []domain.HistoricalSale
	for rows.Next() {
		var h domain.HistoricalSale
		if err := rows.Scan(
			&h.ID, &h.SourceID, &h.Dealer, &h.Make, &h.Model, &h.PlatformClass,
			&h.TrimClass, &h.VariantRaw, &h.Year, &h.Km, &h.Drivetrain,
			&h.BuyPrice, &h.SalePrice, &h.SoldAt,
		); err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}
		sales = append(sales, h)
	}

	return sales, rows.Err()
}

// UpsertFingerprint inserts or refreshes a fingerprint by (dealer,
// source_sale_id). Operator-set km overrides and do-not-buy flags survive.
func (s *PostgresStore) UpsertFingerprint(ctx context.Context, f *domain.Fingerprint) error {
	args := pgx.NamedArgs{
		"dealer":         f.Dealer,
		"source_sale_id": f.SourceSaleID,
		"make":           f.Make,
		"model":          f.Model,
		"platform_class": f.PlatformClass,
		"variant_raw":    f.VariantRaw,
		"variant_family": f.VariantFamily,
		"year":           f.Year,
		"km":             f.Km,
		"km_min":         f.KmMin,
		"km_max":         f.KmMax,
		"km_spec_only":   f.KmSpecOnly,
		"drivetrain":     string(f.Drivetrain),
		"buy_price":      f.BuyPrice,
		"sale_price":     f.SalePrice,
		"sold_at":        f.SoldAt,
		"active":         f.Active,
		"do_not_buy":     f.DoNotBuy,
		"expires_at":     f.ExpiresAt,
	}

	if err := s.pool.QueryRow(ctx, queryUpsertFingerprint, args).Scan(
		&f.ID, &f.DoNotBuy, &f.KmMin, &f.KmMax, &f.KmSpecOnly, &f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upserting fingerprint %s: %w", f.SourceSaleID, err)
	}
	return nil
}

// ListActiveFingerprints returns the dealer's usable fingerprints.
func (s *PostgresStore) ListActiveFingerprints(
	ctx context.Context,
	dealer string,
) ([]domain.Fingerprint, error) {
	rows, err := s.pool.Query(ctx, queryListActiveFingerprints, dealer)
	if err != nil {
		return nil, fmt.Errorf("querying fingerprints: %w", err)
	}
	defer rows.Close()

	var fps []domain.Fingerprint
	for rows.Next() {
		var f domain.Fingerprint
		if err := rows.Scan(
			&f.ID, &f.Dealer, &f.SourceSaleID, &f.Make, &f.Model, &f.PlatformClass,
			&f.VariantRaw, &f.VariantFamily, &f.Year, &f.Km, &f.KmMin, &f.KmMax,
			&f.KmSpecOnly, &f.Drivetrain, &f.BuyPrice, &f.SalePrice, &f.SoldAt,
			&f.Active, &f.DoNotBuy, &f.ExpiresAt, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning fingerprint: %w", err)
		}
		fps = append(fps, f)
	}

	return fps, rows.Err()
}

// DeactivateExpiredFingerprints turns off fingerprints whose expiry has
// passed and returns how many changed.
func (s *PostgresStore) DeactivateExpiredFingerprints(ctx context.Context, now time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, queryDeactivateExpiredFingerprints, now)
	if err != nil {
		return 0, fmt.Errorf("deactivating expired fingerprints: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// UpsertOpportunity inserts or updates the opportunity for a listing.
// created reports whether a new row was inserted. The stored status is
// never overwritten and is copied back into o.
func (s *PostgresStore) UpsertOpportunity(ctx context.Context, o *domain.Opportunity) (bool, error) {
	status := o.Status
	if status == "" {
		status = domain.StatusNew
	}

	args := pgx.NamedArgs{
		"source_type":         o.SourceType,
		"source_listing_id":   o.SourceListingID,
		"match_mode":          string(o.MatchMode),
		"make":                o.Make,
		"model":               o.Model,
		"variant":             o.Variant,
		"year":                o.Year,
		"km":                  o.Km,
		"asking_price":        o.AskingPrice,
		"matched_sale_id":     o.MatchedSaleID,
		"candidate_count":     o.CandidateCount,
		"dealer_median_price": o.DealerMedian,
		"retail_median_price": o.RetailMedian,
		"median_profit":       o.MedianProfit,
		"deviation":           o.Deviation,
		"expected_margin":     o.ExpectedMargin,
		"confidence_tier":     string(o.ConfidenceTier),
		"priority_level":      o.PriorityLevel,
		"status":              string(status),
		"notes":               o.Notes,
	}

	var created bool
	if err := s.pool.QueryRow(ctx, queryUpsertOpportunity, args).Scan(
		&o.ID, &o.Status, &o.CreatedAt, &o.UpdatedAt, &created,
	); err != nil {
		return false, fmt.Errorf("upserting opportunity %s/%s: %w", o.SourceType, o.SourceListingID, err)
	}
	return created, nil
}

// GetOpportunity retrieves an opportunity by its UUID.
func (s *PostgresStore) GetOpportunity(ctx context.Context, id string) (*domain.Opportunity, error) {
	o := &domain.Opportunity{}
	err := scanOpportunity(s.pool.QueryRow(ctx, queryGetOpportunityByID, id), o)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting opportunity: %w", err)
	}
	return o, nil
}

// ListOpportunities queries opportunities with optional filters, returning
// results and total count.
func (s *PostgresStore) ListOpportunities(
	ctx context.Context,
	q *OpportunityQuery,
) ([]domain.Opportunity, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting opportunities: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying opportunities: %w", err)
	}
	defer rows.Close()

	var opps []domain.Opportunity
	for rows.Next() {
		var o domain.Opportunity
		if err := scanOpportunity(rows, &o); err != nil {
			return nil, 0, fmt.Errorf("scanning opportunity: %w", err)
		}
		opps = append(opps, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating opportunities: %w", err)
	}

	return opps, total, nil
}

// UpdateOpportunityStatus sets the operator status of an opportunity.
func (s *PostgresStore) UpdateOpportunityStatus(
	ctx context.Context,
	id string,
	status domain.OpportunityStatus,
) error {
	tag, err := s.pool.Exec(ctx, queryUpdateOpportunityStatus, id, string(status))
	if err != nil {
		return fmt.Errorf("updating opportunity status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertAlert writes an alert unless its dedup key already exists.
// inserted is false for a duplicate.
func (s *PostgresStore) InsertAlert(ctx context.Context, a *domain.AlertLogEntry) (bool, error) {
	err := s.pool.QueryRow(ctx, queryInsertAlert,
		a.DedupKey, a.Dealer, a.LotID, a.ListingID,
		string(a.AlertType), string(a.Reason), a.Message,
	).Scan(&a.ID, &a.CreatedAt)

	// ON CONFLICT DO NOTHING returns no rows.
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("inserting alert %s: %w", a.DedupKey, err)
	}
	return true, nil
}

// ListPendingAlerts returns all un-notified alerts, oldest first.
func (s *PostgresStore) ListPendingAlerts(ctx context.Context) ([]domain.AlertLogEntry, error) {
	return s.queryAlerts(ctx, queryListPendingAlerts)
}

// ListAlerts queries the alert log with optional filters, returning results
// and total count.
func (s *PostgresStore) ListAlerts(
	ctx context.Context,
	q *AlertQuery,
) ([]domain.AlertLogEntry, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting alerts: %w", err)
	}

	alerts, err := s.queryAlerts(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return alerts, total, nil
}

// MarkAlertsNotified marks multiple alerts as notified.
func (s *PostgresStore) MarkAlertsNotified(ctx context.Context, ids []string) error {
	_, err := s.pool.Exec(ctx, queryMarkAlertsNotified, ids)
	if err != nil {
		return fmt.Errorf("marking alerts notified: %w", err)
	}
	return nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a lock for the given job so that
// only one replica runs it. Returns false if another holder owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *PostgresStore) queryListings(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Listing, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

func (s *PostgresStore) queryAlerts(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.AlertLogEntry, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.AlertLogEntry
	for rows.Next() {
		var a domain.AlertLogEntry
		if err := rows.Scan(
			&a.ID, &a.DedupKey, &a.Dealer, &a.LotID, &a.ListingID,
			&a.AlertType, &a.Reason, &a.Message,
			&a.Notified, &a.NotifiedAt, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanListing scans a full listing row, rebuilding the previous state when
// one was recorded.
func scanListing(row scannable, l *domain.Listing) error {
	var (
		prevStatus  *string
		prevPass    *int
		prevRelist  *int
		prevReserve *float64
		prevPct     *float64
	)
	if err := row.Scan(
		&l.ID, &l.SourceType, &l.SourceID, &l.LotID, &l.Title, &l.Description,
		&l.Make, &l.Model, &l.Variant, &l.Year, &l.Km, &l.AskingPrice, &l.Drivetrain, &l.Location,
		&l.Status, &l.PassCount, &l.RelistCount, &l.Reserve, &l.PriceChangePct,
		&prevStatus, &prevPass, &prevRelist, &prevReserve, &prevPct,
		&l.MatchOutcome, &l.ScoredAt, &l.AlertedAt, &l.FirstSeenAt, &l.UpdatedAt,
	); err != nil {
		return err
	}

	if prevStatus != nil {
		l.Previous = &domain.ListingState{
			Status:         *prevStatus,
			PassCount:      deref(prevPass),
			RelistCount:    deref(prevRelist),
			Reserve:        prevReserve,
			PriceChangePct: prevPct,
		}
	}
	return nil
}

func scanOpportunity(row scannable, o *domain.Opportunity) error {
	return row.Scan(
		&o.ID, &o.SourceType, &o.SourceListingID, &o.MatchMode, &o.Make, &o.Model, &o.Variant,
		&o.Year, &o.Km, &o.AskingPrice, &o.MatchedSaleID, &o.CandidateCount,
		&o.DealerMedian, &o.RetailMedian, &o.MedianProfit, &o.Deviation, &o.ExpectedMargin,
		&o.ConfidenceTier, &o.PriorityLevel, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
