package client

import (
	"context"
	"net/url"

	"github.com/caroogle/bob/internal/engine"
	"github.com/caroogle/bob/pkg/ladder"
	domain "github.com/caroogle/bob/pkg/types"
)

// TrimCheck is the ladder verdict for a trim pair.
type TrimCheck struct {
	Platform    string         `json:"platform"`
	ListingTrim string         `json:"listing_trim"`
	SaleTrim    string         `json:"sale_trim"`
	Verdict     ladder.Verdict `json:"verdict"`
	Allowed     bool           `json:"allowed"`
	HasLadder   bool           `json:"has_ladder"`
}

// Preview scores a listing on the server without storing anything.
func (c *Client) Preview(ctx context.Context, raw *domain.RawListing) (*engine.PreviewResult, error) {
	var res engine.PreviewResult
	if err := c.post(ctx, "/api/v1/match/preview", raw, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckTrim asks whether listingTrim may be compared with saleTrim on
// platform.
func (c *Client) CheckTrim(ctx context.Context, platform, listingTrim, saleTrim string) (*TrimCheck, error) {
	q := url.Values{}
	q.Set("listing_trim", listingTrim)
	q.Set("sale_trim", saleTrim)

	var res TrimCheck
	path := "/api/v1/ladders/" + url.PathEscape(platform) + "/check?" + q.Encode()
	if err := c.get(ctx, path, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
