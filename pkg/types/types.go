// Package domain defines the core business types for the fingerprint
// matching service.
package domain

import (
	"strings"
	"time"
)

// DrivetrainBucket is the coarse drivetrain class used for matching.
type DrivetrainBucket string

// Drivetrain bucket constants.
const (
	Drivetrain4WD     DrivetrainBucket = "4WD"
	Drivetrain2WD     DrivetrainBucket = "2WD"
	DrivetrainUnknown DrivetrainBucket = "UNKNOWN"
)

// Resolved reports whether the bucket carries usable information.
func (d DrivetrainBucket) Resolved() bool {
	return d == Drivetrain4WD || d == Drivetrain2WD
}

// MatchMode selects the identity granularity of a matching call.
type MatchMode string

// Match mode constants.
const (
	// MatchExactModel compares make and model exactly; used by the
	// catalogue alert matcher against persisted fingerprints.
	MatchExactModel MatchMode = "EXACT_MODEL"
	// MatchPlatformClass compares make and platform class and judges trims
	// with the trim ladder; used by shadow promotion.
	MatchPlatformClass MatchMode = "PLATFORM_CLASS"
)

// Valid reports whether m is a known mode.
func (m MatchMode) Valid() bool {
	return m == MatchExactModel || m == MatchPlatformClass
}

// ConfidenceTier labels how strong an opportunity is.
type ConfidenceTier string

// Confidence tier constants.
const (
	TierCodeRed ConfidenceTier = "CODE_RED"
	TierHigh    ConfidenceTier = "HIGH"
	TierWatch   ConfidenceTier = "WATCH"
)

// OpportunityStatus is the operator-driven lifecycle of an opportunity.
type OpportunityStatus string

// Opportunity status constants.
const (
	StatusNew       OpportunityStatus = "new"
	StatusOpen      OpportunityStatus = "open"
	StatusActioned  OpportunityStatus = "actioned"
	StatusDismissed OpportunityStatus = "dismissed"
)

// Valid reports whether s is a known status.
func (s OpportunityStatus) Valid() bool {
	switch s {
	case StatusNew, StatusOpen, StatusActioned, StatusDismissed:
		return true
	default:
		return false
	}
}

// AlertType distinguishes catalogue matches from status-change alerts.
type AlertType string

// Alert type constants.
const (
	AlertUpcoming AlertType = "UPCOMING"
	AlertAction   AlertType = "ACTION"
)

// AlertReason explains why an alert fired.
type AlertReason string

// Alert reason constants. ReasonNew is used for UPCOMING alerts.
const (
	ReasonNew             AlertReason = "new"
	ReasonPassedIn        AlertReason = "passed_in"
	ReasonRelisted        AlertReason = "relisted"
	ReasonReserveSoftened AlertReason = "reserve_softened"
	ReasonPriceDrop       AlertReason = "price_drop"
)

// Listing status values reported by auction feeds.
const (
	ListingStatusCatalogue = "catalogue"
	ListingStatusPassedIn  = "passed_in"
	ListingStatusRelisted  = "relisted"
	ListingStatusSold      = "sold"
	ListingStatusWithdrawn = "withdrawn"
)

// RawListing is a listing as it arrives from a feed: already typed, but
// with optional and free-text fields that still need normalization.
type RawListing struct {
	SourceType     string   `json:"source_type"                doc:"Feed that produced the listing (e.g. pickles, manheim, retail)"`
	SourceID       string   `json:"source_id"                  doc:"Stable identifier of the listing within its feed"`
	LotID          string   `json:"lot_id,omitempty"           doc:"Auction lot number"`
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description,omitempty"`
	Make           string   `json:"make,omitempty"`
	Model          string   `json:"model,omitempty"`
	Variant        string   `json:"variant,omitempty"`
	Year           int      `json:"year,omitempty"`
	Km             *int     `json:"km,omitempty"`
	AskingPrice    *float64 `json:"asking_price,omitempty"`
	Drivetrain     string   `json:"drivetrain,omitempty"`
	Location       string   `json:"location,omitempty"`
	Status         string   `json:"status,omitempty"`
	PassCount      int      `json:"pass_count,omitempty"`
	RelistCount    int      `json:"relist_count,omitempty"`
	Reserve        *float64 `json:"reserve,omitempty"`
	PriceChangePct *float64 `json:"price_change_pct,omitempty"`
}

// ListingState is the auction state of a listing at one point in time.
type ListingState struct {
	Status         string   `json:"status"`
	PassCount      int      `json:"pass_count"`
	RelistCount    int      `json:"relist_count"`
	Reserve        *float64 `json:"reserve,omitempty"`
	PriceChangePct *float64 `json:"price_change_pct,omitempty"`
}

// Listing is a persisted feed listing with its current and previous state.
type Listing struct {
	ID string `json:"id" db:"id"`
	RawListing

	Previous     *ListingState `json:"previous,omitempty"      db:"-"`
	MatchOutcome string        `json:"match_outcome,omitempty" db:"match_outcome"`
	ScoredAt     *time.Time    `json:"scored_at,omitempty"     db:"scored_at"`
	AlertedAt    *time.Time    `json:"alerted_at,omitempty"    db:"alerted_at"`
	FirstSeenAt  time.Time     `json:"first_seen_at"           db:"first_seen_at"`
	UpdatedAt    time.Time     `json:"updated_at"              db:"updated_at"`
}

// Open reports whether the listing can still be bought.
func (l *Listing) Open() bool {
	switch strings.ToLower(l.Status) {
	case ListingStatusSold, ListingStatusWithdrawn:
		return false
	default:
		return true
	}
}

// InCatalogue reports whether the lot is still waiting for its auction. A
// feed that sends no status is treated as catalogue.
func (l *Listing) InCatalogue() bool {
	return l.Status == "" || strings.EqualFold(l.Status, ListingStatusCatalogue)
}

// State returns the listing's current auction state.
func (l *Listing) State() ListingState {
	return ListingState{
		Status:         l.Status,
		PassCount:      l.PassCount,
		RelistCount:    l.RelistCount,
		Reserve:        l.Reserve,
		PriceChangePct: l.PriceChangePct,
	}
}

// Lot returns the lot identifier used for alert keys, falling back to the
// feed identifier when the feed carries no lot number.
func (l *Listing) Lot() string {
	if l.LotID != "" {
		return l.LotID
	}
	return l.SourceID
}

// ListingIdentity is the normalized, immutable view of one for-sale vehicle.
// An empty VariantFamily means the variant could not be resolved.
type ListingIdentity struct {
	SourceType    string           `json:"source_type"`
	SourceID      string           `json:"source_id"`
	Make          string           `json:"make"`
	Model         string           `json:"model"`
	PlatformClass string           `json:"platform_class"`
	VariantRaw    string           `json:"variant_raw,omitempty"`
	VariantFamily string           `json:"variant_family,omitempty"`
	Year          int              `json:"year"`
	Km            *int             `json:"km,omitempty"`
	AskingPrice   *float64         `json:"asking_price,omitempty"`
	Drivetrain    DrivetrainBucket `json:"drivetrain"`
}

// RawSale is a completed sale as supplied by the dealer's sales history.
type RawSale struct {
	SourceID      string     `json:"source_id"`
	Dealer        string     `json:"dealer,omitempty"`
	Make          string     `json:"make"`
	Model         string     `json:"model"`
	Variant       string     `json:"variant,omitempty"`
	TrimClass     string     `json:"trim_class,omitempty"`
	PlatformClass string     `json:"platform_class,omitempty"`
	DriveType     string     `json:"drive_type,omitempty"`
	Year          int        `json:"year"`
	Km            *int       `json:"km,omitempty"`
	BuyPrice      *float64   `json:"buy_price,omitempty"`
	SalePrice     *float64   `json:"sale_price,omitempty"`
	SoldAt        *time.Time `json:"sold_at,omitempty"`
}

// HistoricalSale is a normalized completed transaction used as ground truth.
type HistoricalSale struct {
	ID            string           `json:"id"                   db:"id"`
	SourceID      string           `json:"source_id"            db:"source_id"`
	Dealer        string           `json:"dealer,omitempty"     db:"dealer"`
	Make          string           `json:"make"                 db:"make"`
	Model         string           `json:"model"                db:"model"`
	PlatformClass string           `json:"platform_class"       db:"platform_class"`
	TrimClass     string           `json:"trim_class,omitempty" db:"trim_class"`
	VariantRaw    string           `json:"variant_raw,omitempty" db:"variant_raw"`
	Year          int              `json:"year"                 db:"year"`
	Km            *int             `json:"km,omitempty"         db:"km"`
	Drivetrain    DrivetrainBucket `json:"drivetrain"           db:"drivetrain"`
	BuyPrice      *float64         `json:"buy_price,omitempty"  db:"buy_price"`
	SalePrice     *float64         `json:"sale_price,omitempty" db:"sale_price"`
	SoldAt        time.Time        `json:"sold_at"              db:"sold_at"`
}

// Profit returns salePrice - buyPrice. ok is false when either price is
// missing.
func (s *HistoricalSale) Profit() (profit float64, ok bool) {
	if s.BuyPrice == nil || s.SalePrice == nil {
		return 0, false
	}
	return *s.SalePrice - *s.BuyPrice, true
}

// IsProfitable reports whether the sale has both prices and a positive
// profit, which makes it eligible as a match candidate.
func (s *HistoricalSale) IsProfitable() bool {
	p, ok := s.Profit()
	return ok && p > 0
}

// Fingerprint is a persisted comparable owned by a dealer, matched against
// auction catalogues.
type Fingerprint struct {
	ID            string           `json:"id"                       db:"id"`
	Dealer        string           `json:"dealer"                   db:"dealer"`
	SourceSaleID  string           `json:"source_sale_id,omitempty" db:"source_sale_id"`
	Make          string           `json:"make"                     db:"make"`
	Model         string           `json:"model"                    db:"model"`
	PlatformClass string           `json:"platform_class"           db:"platform_class"`
	VariantRaw    string           `json:"variant_raw,omitempty"    db:"variant_raw"`
	VariantFamily string           `json:"variant_family,omitempty" db:"variant_family"`
	Year          int              `json:"year"                     db:"year"`
	Km            *int             `json:"km,omitempty"             db:"km"`
	KmMin         *int             `json:"km_min,omitempty"         db:"km_min"`
	KmMax         *int             `json:"km_max,omitempty"         db:"km_max"`
	KmSpecOnly    bool             `json:"km_spec_only"             db:"km_spec_only"`
	Drivetrain    DrivetrainBucket `json:"drivetrain"               db:"drivetrain"`
	BuyPrice      *float64         `json:"buy_price,omitempty"      db:"buy_price"`
	SalePrice     *float64         `json:"sale_price,omitempty"     db:"sale_price"`
	SoldAt        *time.Time       `json:"sold_at,omitempty"        db:"sold_at"`
	Active        bool             `json:"active"                   db:"active"`
	DoNotBuy      bool             `json:"do_not_buy"               db:"do_not_buy"`
	ExpiresAt     *time.Time       `json:"expires_at,omitempty"     db:"expires_at"`
	CreatedAt     time.Time        `json:"created_at"               db:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"               db:"updated_at"`
}

// Usable reports whether the fingerprint may be matched at time now.
func (f *Fingerprint) Usable(now time.Time) bool {
	if !f.Active || f.DoNotBuy {
		return false
	}
	return f.ExpiresAt == nil || f.ExpiresAt.After(now)
}

// Opportunity is the persisted best match for a listing. It is keyed by
// (SourceType, SourceListingID) and updated in place on later runs.
type Opportunity struct {
	ID              string            `json:"id"                      db:"id"`
	SourceType      string            `json:"source_type"             db:"source_type"`
	SourceListingID string            `json:"source_listing_id"       db:"source_listing_id"`
	MatchMode       MatchMode         `json:"match_mode"              db:"match_mode"`
	Make            string            `json:"make"                    db:"make"`
	Model           string            `json:"model"                   db:"model"`
	Variant         string            `json:"variant,omitempty"       db:"variant"`
	Year            int               `json:"year"                    db:"year"`
	Km              *int              `json:"km,omitempty"            db:"km"`
	AskingPrice     float64           `json:"asking_price"            db:"asking_price"`
	MatchedSaleID   string            `json:"matched_sale_id"         db:"matched_sale_id"`
	CandidateCount  int               `json:"candidate_count"         db:"candidate_count"`
	DealerMedian    float64           `json:"dealer_median_price"     db:"dealer_median_price"`
	RetailMedian    float64           `json:"retail_median_price"     db:"retail_median_price"`
	MedianProfit    float64           `json:"median_profit"           db:"median_profit"`
	Deviation       float64           `json:"deviation"               db:"deviation"`
	ExpectedMargin  float64           `json:"expected_margin"         db:"expected_margin"`
	ConfidenceTier  ConfidenceTier    `json:"confidence_tier"         db:"confidence_tier"`
	PriorityLevel   int               `json:"priority_level"          db:"priority_level"`
	Status          OpportunityStatus `json:"status"                  db:"status"`
	Notes           string            `json:"notes,omitempty"         db:"notes"`
	CreatedAt       time.Time         `json:"created_at"              db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"              db:"updated_at"`
}

// AlertLogEntry is a deduplicated notification. DedupKey is unique.
type AlertLogEntry struct {
	ID         string      `json:"id"                    db:"id"`
	DedupKey   string      `json:"dedup_key"             db:"dedup_key"`
	Dealer     string      `json:"dealer"                db:"dealer"`
	LotID      string      `json:"lot_id"                db:"lot_id"`
	ListingID  string      `json:"listing_id"            db:"listing_id"`
	AlertType  AlertType   `json:"alert_type"            db:"alert_type"`
	Reason     AlertReason `json:"reason"                db:"reason"`
	Message    string      `json:"message"               db:"message"`
	Notified   bool        `json:"notified"              db:"notified"`
	NotifiedAt *time.Time  `json:"notified_at,omitempty" db:"notified_at"`
	CreatedAt  time.Time   `json:"created_at"            db:"created_at"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}
