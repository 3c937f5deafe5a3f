package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/caroogle/bob/internal/engine"
)

// Runner defines the engine operations that can be triggered manually.
type Runner interface {
	RunShadowPromotion(ctx context.Context) (*engine.RunResult, error)
	RunCatalogueAlerts(ctx context.Context) (*engine.RunResult, error)
	DeliverAlerts(ctx context.Context) error
	RefreshFingerprints(ctx context.Context) (*engine.FingerprintResult, error)
}

// TriggerHandler handles manual batch run requests.
type TriggerHandler struct {
	runner Runner
}

// NewTriggerHandler creates a new TriggerHandler.
func NewTriggerHandler(r Runner) *TriggerHandler {
	return &TriggerHandler{runner: r}
}

// RunOutput is the response body for a matching run.
type RunOutput struct {
	Body struct {
		Status string            `json:"status" example:"completed" doc:"Run status"`
		Result *engine.RunResult `json:"result"                     doc:"Per-outcome counts"`
	}
}

// FingerprintsOutput is the response body for a fingerprint refresh.
type FingerprintsOutput struct {
	Body struct {
		Status string                    `json:"status" example:"completed"`
		Result *engine.FingerprintResult `json:"result"`
	}
}

// RunShadow runs shadow promotion over the pending listing batch.
func (h *TriggerHandler) RunShadow(ctx context.Context, _ *struct{}) (*RunOutput, error) {
	res, err := h.runner.RunShadowPromotion(ctx)
	if err != nil {
		return nil, runError("shadow promotion", err)
	}

	resp := &RunOutput{}
	resp.Body.Status = "completed"
	resp.Body.Result = res
	return resp, nil
}

// RunAlerts runs catalogue alerting and then delivers pending alerts.
func (h *TriggerHandler) RunAlerts(ctx context.Context, _ *struct{}) (*RunOutput, error) {
	res, err := h.runner.RunCatalogueAlerts(ctx)
	if err != nil {
		return nil, runError("catalogue alerts", err)
	}
	if err := h.runner.DeliverAlerts(ctx); err != nil {
		return nil, huma.Error500InternalServerError("alert delivery failed: " + err.Error())
	}

	resp := &RunOutput{}
	resp.Body.Status = "completed"
	resp.Body.Result = res
	return resp, nil
}

// RefreshFingerprints rebuilds fingerprints from profitable sales.
func (h *TriggerHandler) RefreshFingerprints(ctx context.Context, _ *struct{}) (*FingerprintsOutput, error) {
	res, err := h.runner.RefreshFingerprints(ctx)
	if err != nil {
		return nil, runError("fingerprint refresh", err)
	}

	resp := &FingerprintsOutput{}
	resp.Body.Status = "completed"
	resp.Body.Result = res
	return resp, nil
}

func runError(name string, err error) error {
	if errors.Is(err, engine.ErrRunInProgress) {
		return huma.Error409Conflict(name + " already running")
	}
	return huma.Error500InternalServerError(name + " failed: " + err.Error())
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, h *TriggerHandler) {
	errs := []int{http.StatusConflict, http.StatusInternalServerError}

	huma.Register(api, huma.Operation{
		OperationID: "run-shadow",
		Method:      http.MethodPost,
		Path:        "/api/v1/run/shadow",
		Summary:     "Run shadow promotion",
		Description: "Scores the pending listing batch against profitable sales in " +
			"PLATFORM_CLASS mode and upserts opportunities.",
		Tags:   []string{"runs"},
		Errors: errs,
	}, h.RunShadow)

	huma.Register(api, huma.Operation{
		OperationID: "run-alerts",
		Method:      http.MethodPost,
		Path:        "/api/v1/run/alerts",
		Summary:     "Run catalogue alerts",
		Description: "Matches catalogue listings against active fingerprints, logs " +
			"UPCOMING and ACTION alerts, then delivers pending alerts.",
		Tags:   []string{"runs"},
		Errors: errs,
	}, h.RunAlerts)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-fingerprints",
		Method:      http.MethodPost,
		Path:        "/api/v1/fingerprints/refresh",
		Summary:     "Refresh fingerprints",
		Description: "Upserts fingerprints from profitable sales and deactivates expired ones.",
		Tags:        []string{"runs"},
		Errors:      errs,
	}, h.RefreshFingerprints)
}
