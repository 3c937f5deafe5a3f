package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/caroogle/bob/pkg/types"
)

// OpportunitiesResponse wraps a paginated opportunities response.
type OpportunitiesResponse struct {
	Opportunities []domain.Opportunity `json:"opportunities"`
	Total         int                  `json:"total"`
}

// ListOpportunitiesParams defines query parameters for opportunity queries.
type ListOpportunitiesParams struct {
	Status      string
	Tier        string
	MatchMode   string
	Make        string
	Model       string
	MinUnderBuy float64
	Limit       int
	Offset      int
	OrderBy     string
}

// ListOpportunities returns opportunities matching the given parameters.
func (c *Client) ListOpportunities(
	ctx context.Context,
	params *ListOpportunitiesParams,
) (*OpportunitiesResponse, error) {
	q := url.Values{}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Tier != "" {
		q.Set("tier", params.Tier)
	}
	if params.MatchMode != "" {
		q.Set("match_mode", params.MatchMode)
	}
	if params.Make != "" {
		q.Set("make", params.Make)
	}
	if params.Model != "" {
		q.Set("model", params.Model)
	}
	if params.MinUnderBuy > 0 {
		q.Set("min_under_buy", strconv.FormatFloat(params.MinUnderBuy, 'f', -1, 64))
	}
	setPage(q, params.Limit, params.Offset, params.OrderBy)

	var resp OpportunitiesResponse
	if err := c.get(ctx, withQuery("/api/v1/opportunities", q), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetOpportunity returns a single opportunity by ID.
func (c *Client) GetOpportunity(ctx context.Context, id string) (*domain.Opportunity, error) {
	var o domain.Opportunity
	if err := c.get(ctx, "/api/v1/opportunities/"+url.PathEscape(id), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// SetOpportunityStatus records an operator decision on an opportunity.
func (c *Client) SetOpportunityStatus(ctx context.Context, id string, status domain.OpportunityStatus) error {
	body := map[string]string{"status": string(status)}
	return c.patch(ctx, "/api/v1/opportunities/"+url.PathEscape(id)+"/status", body, nil)
}
