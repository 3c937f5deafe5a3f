// Package handlers implements HTTP handlers for the bob API.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const readyTimeout = 2 * time.Second

// Pinger reports whether the listing and sales database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyResponse is the readiness body. RefData is the version of the
// reference tables the matcher was built with.
type ReadyResponse struct {
	Status  string `json:"status"            example:"ready"`
	RefData string `json:"refdata,omitempty" example:"2026-03"`
	Reason  string `json:"reason,omitempty"  example:"database"`
}

// HealthHandler serves the liveness and readiness checks.
type HealthHandler struct {
	db      Pinger
	refdata string
}

// NewHealthHandler creates a HealthHandler. refdataVersion is echoed by
// Readyz so a rollout can confirm which tables are live.
func NewHealthHandler(db Pinger, refdataVersion string) *HealthHandler {
	return &HealthHandler{db: db, refdata: refdataVersion}
}

// Healthz returns 200 while the process is up.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 once the database answers within readyTimeout, 503
// otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readyTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable", Reason: "database"})
	}
	return c.JSON(http.StatusOK, ReadyResponse{Status: "ready", RefData: h.refdata})
}
