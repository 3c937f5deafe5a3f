package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	domain "github.com/caroogle/bob/pkg/types"
)

// AlertsResponse wraps a paginated alert log response.
type AlertsResponse struct {
	Alerts []domain.AlertLogEntry `json:"alerts"`
	Total  int                    `json:"total"`
}

// ListAlertsParams defines query parameters for alert log queries.
type ListAlertsParams struct {
	Dealer    string
	AlertType string
	Notified  *bool
	Since     time.Time
	Limit     int
	Offset    int
}

// ListAlerts returns alert log entries, newest first.
func (c *Client) ListAlerts(ctx context.Context, params *ListAlertsParams) (*AlertsResponse, error) {
	q := url.Values{}
	if params.Dealer != "" {
		q.Set("dealer", params.Dealer)
	}
	if params.AlertType != "" {
		q.Set("alert_type", params.AlertType)
	}
	if params.Notified != nil {
		q.Set("notified", strconv.FormatBool(*params.Notified))
	}
	if !params.Since.IsZero() {
		q.Set("since", params.Since.UTC().Format(time.RFC3339))
	}
	setPage(q, params.Limit, params.Offset, "")

	var resp AlertsResponse
	if err := c.get(ctx, withQuery("/api/v1/alerts", q), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
