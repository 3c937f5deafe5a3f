// Package extract normalizes raw listing and sale records into the strict
// identities used by the matcher. It resolves make, model, variant family,
// platform class and drivetrain bucket from typed fields and free text.
//
// The normalizer never guesses: an unresolved variant is empty and an
// unresolved drivetrain is UNKNOWN.
package extract

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/caroogle/bob/pkg/refdata"
	domain "github.com/caroogle/bob/pkg/types"
)

// ErrMissingIdentity is returned when a record lacks make, model or year.
var ErrMissingIdentity = errors.New("missing required identity field")

var yearRe = regexp.MustCompile(`\b(19[5-9][0-9]|20[0-9]{2})\b`)

// tokenPattern is a registry token with its compiled matcher.
type tokenPattern struct {
	token string
	re    *regexp.Regexp
}

// Normalizer resolves identities against a set of reference tables. It is
// safe for concurrent use once built.
type Normalizer struct {
	tables     *refdata.Tables
	makes      []tokenPattern // canonical makes and aliases, longest first
	aliases    map[string]string
	models     map[string][]tokenPattern // make -> known model names
	registries map[string][]tokenPattern
	generic    []tokenPattern
}

// NewNormalizer compiles the token matchers for tables.
func NewNormalizer(tables *refdata.Tables) *Normalizer {
	n := &Normalizer{
		tables:     tables,
		aliases:    tables.Aliases(),
		models:     make(map[string][]tokenPattern),
		registries: make(map[string][]tokenPattern),
	}

	names := tables.Makes()
	for alias := range n.aliases {
		names = append(names, alias)
	}
	n.makes = compileTokens(names)

	for _, key := range tables.VariantKeys() {
		v, _ := tables.Variants(splitKey(key))
		n.registries[key] = compileTokens(v)
	}
	for _, mk := range tables.Makes() {
		if models := tables.Models(mk); len(models) > 0 {
			n.models[mk] = compileTokens(models)
		}
	}

	n.generic = compileTokens(tables.GenericVariants())
	return n
}

// Tables returns the reference tables the normalizer was built from.
func (n *Normalizer) Tables() *refdata.Tables { return n.tables }

// NormalizeListing maps a raw feed listing to a ListingIdentity. Make, model
// and year are required; everything else degrades to empty or UNKNOWN.
func (n *Normalizer) NormalizeListing(raw domain.RawListing) (domain.ListingIdentity, error) {
	text := strings.Join([]string{raw.Title, raw.Description}, " ")

	mk, ok := n.ResolveMake(raw.Make, raw.Title, raw.Description)
	if !ok {
		return domain.ListingIdentity{}, fmt.Errorf("%w: make", ErrMissingIdentity)
	}
	model := refdata.Canon(raw.Model)
	if model == "" {
		model = n.findModel(mk, text)
	}
	if model == "" {
		return domain.ListingIdentity{}, fmt.Errorf("%w: model", ErrMissingIdentity)
	}
	year := raw.Year
	if year == 0 {
		year = findYear(raw.Title)
	}
	if year == 0 {
		return domain.ListingIdentity{}, fmt.Errorf("%w: year", ErrMissingIdentity)
	}

	return domain.ListingIdentity{
		SourceType:    raw.SourceType,
		SourceID:      raw.SourceID,
		Make:          mk,
		Model:         model,
		PlatformClass: n.tables.PlatformClass(mk, model),
		VariantRaw:    strings.TrimSpace(raw.Variant),
		VariantFamily: n.ResolveVariant(mk, model, raw.Variant, raw.Title, raw.Description),
		Year:          year,
		Km:            raw.Km,
		AskingPrice:   raw.AskingPrice,
		Drivetrain:    ResolveDrivetrain(raw.Drivetrain, raw.Variant, raw.Title, raw.Description),
	}, nil
}

// NormalizeSale maps a raw sales-history row to a HistoricalSale. Prices stay
// nullable; profitability is checked by the caller.
func (n *Normalizer) NormalizeSale(raw domain.RawSale) (domain.HistoricalSale, error) {
	mk, ok := n.ResolveMake(raw.Make)
	if !ok {
		return domain.HistoricalSale{}, fmt.Errorf("%w: make", ErrMissingIdentity)
	}
	model := refdata.Canon(raw.Model)
	if model == "" {
		return domain.HistoricalSale{}, fmt.Errorf("%w: model", ErrMissingIdentity)
	}
	if raw.Year == 0 {
		return domain.HistoricalSale{}, fmt.Errorf("%w: year", ErrMissingIdentity)
	}

	trim := refdata.Canon(raw.TrimClass)
	if trim == "" {
		trim = n.ResolveVariant(mk, model, raw.Variant)
	}

	platform := refdata.Canon(raw.PlatformClass)
	switch {
	case platform == "":
		platform = n.tables.PlatformClass(mk, model)
	case !strings.Contains(platform, ":"):
		platform = mk + ":" + platform
	}

	s := domain.HistoricalSale{
		SourceID:      raw.SourceID,
		Dealer:        raw.Dealer,
		Make:          mk,
		Model:         model,
		PlatformClass: platform,
		TrimClass:     trim,
		VariantRaw:    strings.TrimSpace(raw.Variant),
		Year:          raw.Year,
		Km:            raw.Km,
		Drivetrain:    ResolveDrivetrain(raw.DriveType, raw.Variant),
		BuyPrice:      raw.BuyPrice,
		SalePrice:     raw.SalePrice,
	}
	if raw.SoldAt != nil {
		s.SoldAt = *raw.SoldAt
	}
	return s, nil
}

// ResolveMake returns the canonical make from the first text that names one.
// An exact make or alias wins; otherwise the earliest make mentioned in the
// text, preferring the longest name at the same position.
func (n *Normalizer) ResolveMake(texts ...string) (string, bool) {
	for _, text := range texts {
		if mk, ok := n.tables.CanonicalMake(text); ok {
			return mk, true
		}
		upper := strings.ToUpper(text)
		best, bestAt := "", -1
		for _, p := range n.makes {
			loc := p.re.FindStringIndex(upper)
			if loc == nil {
				continue
			}
			if bestAt < 0 || loc[0] < bestAt {
				best, bestAt = p.token, loc[0]
			}
		}
		if best != "" {
			if target, ok := n.aliases[best]; ok {
				return target, true
			}
			return best, true
		}
	}
	return "", false
}

// ResolveVariant searches texts in order for a trim token. The registry for
// the make and model (or its platform class) is used when one exists;
// otherwise the generic cross-brand list. Returns "" when nothing matches.
func (n *Normalizer) ResolveVariant(mk, model string, texts ...string) string {
	patterns, ok := n.registries[refdata.Key(mk, model)]
	if !ok {
		patterns, ok = n.registries[n.tables.PlatformClass(mk, model)]
	}
	if !ok {
		patterns = n.generic
	}

	var strip []*regexp.Regexp
	for _, w := range []string{refdata.Canon(mk), refdata.Canon(model)} {
		if w != "" {
			strip = append(strip, tokenRegexp(w))
		}
	}
	for _, text := range texts {
		upper := strings.ToUpper(text)
		for _, re := range strip {
			upper = re.ReplaceAllString(upper, " ")
		}
		if strings.TrimSpace(upper) == "" {
			continue
		}
		for _, p := range patterns {
			if p.re.MatchString(upper) {
				return p.token
			}
		}
	}
	return ""
}

func (n *Normalizer) findModel(mk, text string) string {
	upper := strings.ToUpper(text)
	for _, p := range n.models[mk] {
		if p.re.MatchString(upper) {
			return p.token
		}
	}
	return ""
}

func findYear(text string) int {
	m := yearRe.FindString(text)
	if m == "" {
		return 0
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return y
}

// compileTokens builds matchers ordered longest token first. Ties keep the
// registry order.
func compileTokens(tokens []string) []tokenPattern {
	out := make([]tokenPattern, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		c := refdata.Canon(tok)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, tokenPattern{token: c, re: tokenRegexp(c)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].token) > len(out[j].token)
	})
	return out
}

// tokenRegexp matches tok as a whole word in uppercased text. Hyphens and
// spaces inside the token match a hyphen, a space or nothing; a plus may be
// preceded by a space.
func tokenRegexp(tok string) *regexp.Regexp {
	parts := strings.FieldsFunc(tok, func(r rune) bool { return r == ' ' || r == '-' })
	for i, p := range parts {
		p = regexp.QuoteMeta(p)
		parts[i] = strings.ReplaceAll(p, `\+`, `\s?\+`)
	}
	body := strings.Join(parts, `[\s\-]?`)
	return regexp.MustCompile(`(?:^|[^A-Z0-9+])` + body + `(?:$|[^A-Z0-9+])`)
}

func splitKey(key string) (string, string) {
	mk, model, _ := strings.Cut(key, ":")
	return mk, model
}
