package client

import (
	"context"

	domain "github.com/caroogle/bob/pkg/types"
)

// SalesIngestResponse reports a sales ingest. Rejected describes rows that
// could not be normalized.
type SalesIngestResponse struct {
	Accepted int      `json:"accepted"`
	Rejected []string `json:"rejected"`
}

// IngestSales normalizes and stores dealer sales history.
func (c *Client) IngestSales(ctx context.Context, sales []domain.RawSale) (*SalesIngestResponse, error) {
	body := map[string]any{"sales": sales}

	var resp SalesIngestResponse
	if err := c.post(ctx, "/api/v1/sales", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
