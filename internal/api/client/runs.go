package client

import (
	"context"

	"github.com/caroogle/bob/internal/engine"
)

type runResponse struct {
	Status string            `json:"status"`
	Result *engine.RunResult `json:"result"`
}

// RunShadow triggers shadow promotion.
func (c *Client) RunShadow(ctx context.Context) (*engine.RunResult, error) {
	var resp runResponse
	if err := c.post(ctx, "/api/v1/run/shadow", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// RunAlerts triggers catalogue alerting and alert delivery.
func (c *Client) RunAlerts(ctx context.Context) (*engine.RunResult, error) {
	var resp runResponse
	if err := c.post(ctx, "/api/v1/run/alerts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// RefreshFingerprints triggers a fingerprint refresh.
func (c *Client) RefreshFingerprints(ctx context.Context) (*engine.FingerprintResult, error) {
	var resp struct {
		Result *engine.FingerprintResult `json:"result"`
	}
	if err := c.post(ctx, "/api/v1/fingerprints/refresh", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}
