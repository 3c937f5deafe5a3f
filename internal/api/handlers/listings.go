package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/caroogle/bob/internal/store"
	domain "github.com/caroogle/bob/pkg/types"
)

// ListingsHandler handles listing ingest and query endpoints.
type ListingsHandler struct {
	store store.Store
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store) *ListingsHandler {
	return &ListingsHandler{store: s}
}

// --- Input/Output types ---

// IngestListingsInput is the request body for ingesting feed listings.
type IngestListingsInput struct {
	Body struct {
		Listings []domain.RawListing `json:"listings" minItems:"1" doc:"Raw feed listings keyed by (source_type, source_id)"`
	}
}

// IngestListingsOutput is the response for listing ingest.
type IngestListingsOutput struct {
	Body struct {
		Accepted int      `json:"accepted" doc:"Listings stored"`
		IDs      []string `json:"ids"      doc:"Stored listing IDs in request order"`
	}
}

// ListListingsInput is the input for listing listings with optional filters.
type ListListingsInput struct {
	SourceType string `query:"source_type" doc:"Filter by feed"`
	Status     string `query:"status"      doc:"Filter by auction status (e.g. catalogue, passed_in)"`
	Make       string `query:"make"        doc:"Filter by make (case-insensitive)"`
	Outcome    string `query:"outcome"     doc:"Filter by last match outcome"                                  enum:"opportunity,no_match,no_margin,below_threshold,unpriced,invalid,"`
	Limit      int    `query:"limit"       doc:"Number of results (default 50)"                                minimum:"0" maximum:"500"`
	Offset     int    `query:"offset"      doc:"Pagination offset"                                             minimum:"0"`
	OrderBy    string `query:"order_by"    doc:"Sort field"                                                    enum:"first_seen_at,updated_at,asking_price,"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// GetListingInput is the input for getting a single listing.
type GetListingInput struct {
	ID string `path:"id" doc:"Listing UUID"`
}

// GetListingOutput is the response for getting a single listing.
type GetListingOutput struct {
	Body domain.Listing
}

// --- Handlers ---

// IngestListings stores raw feed listings. Normalization happens when the
// listings are scored, so unrecognised vehicles are still kept.
func (h *ListingsHandler) IngestListings(
	ctx context.Context,
	input *IngestListingsInput,
) (*IngestListingsOutput, error) {
	for i, raw := range input.Body.Listings {
		if raw.SourceType == "" || raw.SourceID == "" {
			return nil, huma.Error422UnprocessableEntity(
				fmt.Sprintf("listing %d: source_type and source_id are required", i),
			)
		}
	}

	resp := &IngestListingsOutput{}
	resp.Body.IDs = make([]string, 0, len(input.Body.Listings))
	for _, raw := range input.Body.Listings {
		l := &domain.Listing{RawListing: raw}
		if err := h.store.UpsertListing(ctx, l); err != nil {
			return nil, huma.Error500InternalServerError("ingesting listings failed: " + err.Error())
		}
		resp.Body.IDs = append(resp.Body.IDs, l.ID)
	}
	resp.Body.Accepted = len(resp.Body.IDs)
	return resp, nil
}

// ListListings returns listings with optional filters and pagination.
func (h *ListingsHandler) ListListings(
	ctx context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	q := &store.ListingQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.SourceType != "" {
		q.SourceType = &input.SourceType
	}

	if input.Status != "" {
		q.Status = &input.Status
	}

	if input.Make != "" {
		q.Make = &input.Make
	}

	if input.Outcome != "" {
		q.Outcome = &input.Outcome
	}

	listings, total, err := h.store.ListListings(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing query failed: " + err.Error())
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	resp := &ListListingsOutput{}
	resp.Body.Listings = listings
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetListing returns a single listing by ID.
func (h *ListingsHandler) GetListing(
	ctx context.Context,
	input *GetListingInput,
) (*GetListingOutput, error) {
	listing, err := h.store.GetListing(ctx, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("listing not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching listing failed: " + err.Error())
	}

	return &GetListingOutput{Body: *listing}, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "ingest-listings",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings",
		Summary:     "Ingest feed listings",
		Description: "Upserts raw auction and retail listings. A listing whose auction state " +
			"changed keeps its prior state for ACTION alert classification.",
		Tags:   []string{"listings"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.IngestListings)

	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listings",
		Description: "Returns listings with optional filters for feed, status, make, outcome, and pagination.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListListings)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing by ID",
		Description: "Returns a single listing by its UUID.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetListing)
}
