package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/caroogle/bob/pkg/types"
)

// ListingsResponse wraps a paginated listings response.
type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
}

// ListListingsParams defines query parameters for listing queries.
type ListListingsParams struct {
	SourceType string
	Status     string
	Make       string
	Outcome    string
	Limit      int
	Offset     int
	OrderBy    string
}

// IngestResponse reports a listing ingest.
type IngestResponse struct {
	Accepted int      `json:"accepted"`
	IDs      []string `json:"ids"`
}

// IngestListings stores raw feed listings.
func (c *Client) IngestListings(ctx context.Context, listings []domain.RawListing) (*IngestResponse, error) {
	body := map[string]any{"listings": listings}

	var resp IngestResponse
	if err := c.post(ctx, "/api/v1/listings", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListListings returns listings matching the given parameters.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*ListingsResponse, error) {
	q := url.Values{}
	if params.SourceType != "" {
		q.Set("source_type", params.SourceType)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Make != "" {
		q.Set("make", params.Make)
	}
	if params.Outcome != "" {
		q.Set("outcome", params.Outcome)
	}
	setPage(q, params.Limit, params.Offset, params.OrderBy)

	var resp ListingsResponse
	if err := c.get(ctx, withQuery("/api/v1/listings", q), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/api/v1/listings/"+url.PathEscape(id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func setPage(q url.Values, limit, offset int, orderBy string) {
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	if orderBy != "" {
		q.Set("order_by", orderBy)
	}
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
