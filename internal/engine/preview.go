package engine

import (
	"context"
	"fmt"

	"github.com/caroogle/bob/pkg/extract"
	"github.com/caroogle/bob/pkg/match"
	score "github.com/caroogle/bob/pkg/scorer"
	domain "github.com/caroogle/bob/pkg/types"
)

// maxPreviewCandidates caps the ranked candidates returned by Preview.
const maxPreviewCandidates = 10

// PreviewResult is the scoring decision for one listing without any writes.
type PreviewResult struct {
	Identity    domain.ListingIdentity `json:"identity"`
	Key         string                 `json:"key"`
	Decision    score.Decision         `json:"decision"`
	Candidates  []score.Ranked         `json:"candidates"`
	Opportunity *domain.Opportunity    `json:"opportunity,omitempty"`
}

// Preview normalizes raw, matches it in PLATFORM_CLASS mode against the
// profitable sales and scores it. Nothing is persisted. A listing that
// cannot be normalized returns an error wrapping extract.ErrMissingIdentity.
func (eng *Engine) Preview(ctx context.Context, raw domain.RawListing) (*PreviewResult, error) {
	id, err := eng.normalizer.NormalizeListing(raw)
	if err != nil {
		return nil, fmt.Errorf("normalizing listing: %w", err)
	}

	m, err := eng.matcher(domain.MatchPlatformClass)
	if err != nil {
		return nil, err
	}

	sales, err := eng.store.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}

	d := score.Decide(id, m.Candidates(id, match.ProfitableSales(sales)), eng.scoring)
	res := &PreviewResult{
		Identity:   id,
		Key:        extract.FingerprintKey(id),
		Decision:   d,
		Candidates: d.Ranked[:min(len(d.Ranked), maxPreviewCandidates)],
	}
	if res.Candidates == nil {
		res.Candidates = []score.Ranked{}
	}
	if d.Accepted() {
		o := d.Opportunity(id, domain.MatchPlatformClass)
		res.Opportunity = &o
	}
	return res, nil
}
