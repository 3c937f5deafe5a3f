package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/caroogle/bob/internal/store"
	domain "github.com/caroogle/bob/pkg/types"
)

// AlertsHandler serves the alert log.
type AlertsHandler struct {
	store store.Store
}

// NewAlertsHandler creates a new AlertsHandler.
func NewAlertsHandler(s store.Store) *AlertsHandler {
	return &AlertsHandler{store: s}
}

// ListAlertsInput is the input for querying the alert log.
type ListAlertsInput struct {
	Dealer    string    `query:"dealer"     doc:"Filter by dealer identifier"`
	AlertType string    `query:"alert_type" doc:"Filter by alert type"                 enum:"UPCOMING,ACTION,"`
	Notified  string    `query:"notified"   doc:"Filter by delivery state"             enum:"true,false,"`
	Since     time.Time `query:"since"      doc:"Only alerts created at or after this time (RFC 3339)"`
	Limit     int       `query:"limit"      doc:"Number of results (default 50)"       minimum:"0" maximum:"500"`
	Offset    int       `query:"offset"     doc:"Pagination offset"                    minimum:"0"`
}

// ListAlertsOutput is the response for the alert log query.
type ListAlertsOutput struct {
	Body struct {
		Alerts []domain.AlertLogEntry `json:"alerts"`
		Total  int                    `json:"total"`
		Limit  int                    `json:"limit"`
		Offset int                    `json:"offset"`
	}
}

// ListAlerts returns alert log entries, newest first.
func (h *AlertsHandler) ListAlerts(
	ctx context.Context,
	input *ListAlertsInput,
) (*ListAlertsOutput, error) {
	q := &store.AlertQuery{
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.Dealer != "" {
		q.Dealer = &input.Dealer
	}
	if input.AlertType != "" {
		q.AlertType = &input.AlertType
	}
	if input.Notified != "" {
		notified := input.Notified == "true"
		q.Notified = &notified
	}
	if !input.Since.IsZero() {
		q.Since = &input.Since
	}

	entries, total, err := h.store.ListAlerts(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("alert query failed: " + err.Error())
	}
	if entries == nil {
		entries = []domain.AlertLogEntry{}
	}

	resp := &ListAlertsOutput{}
	resp.Body.Alerts = entries
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// RegisterAlertRoutes registers alert log endpoints with the Huma API.
func RegisterAlertRoutes(api huma.API, h *AlertsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts",
		Summary:     "List alerts",
		Description: "Returns the UPCOMING and ACTION alert log with delivery state.",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListAlerts)
}
