package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/caroogle/bob/internal/engine"
	"github.com/caroogle/bob/pkg/extract"
	domain "github.com/caroogle/bob/pkg/types"
)

// Previewer scores a listing without persisting anything.
type Previewer interface {
	Preview(ctx context.Context, raw domain.RawListing) (*engine.PreviewResult, error)
}

// PreviewHandler handles match preview requests.
type PreviewHandler struct {
	previewer Previewer
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler(p Previewer) *PreviewHandler {
	return &PreviewHandler{previewer: p}
}

// PreviewInput is the listing to score.
type PreviewInput struct {
	Body domain.RawListing
}

// PreviewOutput is the scoring decision with its ranked candidates.
type PreviewOutput struct {
	Body *engine.PreviewResult
}

// Preview normalizes, matches and scores one listing.
func (h *PreviewHandler) Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error) {
	res, err := h.previewer.Preview(ctx, input.Body)
	if errors.Is(err, extract.ErrMissingIdentity) {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("preview failed: " + err.Error())
	}
	return &PreviewOutput{Body: res}, nil
}

// RegisterPreviewRoutes registers the match preview endpoint with the Huma API.
func RegisterPreviewRoutes(api huma.API, h *PreviewHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "preview-match",
		Method:      http.MethodPost,
		Path:        "/api/v1/match/preview",
		Summary:     "Preview a listing match",
		Description: "Normalizes a listing, matches it against profitable sales in " +
			"PLATFORM_CLASS mode and returns the scoring decision. Nothing is stored.",
		Tags:   []string{"matching"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.Preview)
}
