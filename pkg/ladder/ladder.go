// Package ladder ranks trim levels per platform class and decides whether a
// listing's trim can be compared against a historical sale's trim.
package ladder

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Verdict is the outcome of a trim comparison.
type Verdict string

// Verdict constants. VerdictNone means the trims are not comparable.
const (
	VerdictNone    Verdict = ""
	VerdictExact   Verdict = "EXACT"
	VerdictUpgrade Verdict = "UPGRADE"
)

// Allowed reports whether the verdict permits a match.
func (v Verdict) Allowed() bool {
	return v == VerdictExact || v == VerdictUpgrade
}

// ErrInvalidLadder is returned when ladder reference data is malformed.
var ErrInvalidLadder = errors.New("invalid trim ladder")

// Ladder maps a trim token to its seniority rank (higher is more premium).
type Ladder map[string]int

// Set holds the trim ladders for every platform class. A Set is read-only
// after construction.
type Set struct {
	ladders map[string]Ladder
}

// New builds a Set from platform -> trim -> rank. Platform and trim keys are
// uppercased. Ranks must be positive and unique within a platform.
func New(raw map[string]map[string]int) (*Set, error) {
	s := &Set{ladders: make(map[string]Ladder, len(raw))}

	var errs []error
	for platform, trims := range raw {
		p := canon(platform)
		l := make(Ladder, len(trims))
		seen := make(map[int]string, len(trims))
		for trim, rank := range trims {
			t := canon(trim)
			if rank <= 0 {
				errs = append(errs, fmt.Errorf("%w: %s %s has rank %d", ErrInvalidLadder, p, t, rank))
				continue
			}
			if other, dup := seen[rank]; dup {
				errs = append(errs, fmt.Errorf("%w: %s ranks %s and %s both at %d",
					ErrInvalidLadder, p, other, t, rank))
				continue
			}
			seen[rank] = t
			l[t] = rank
		}
		s.ladders[p] = l
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return s, nil
}

// TrimAllowed compares a listing trim with a sale trim on one platform.
//
// Equal trims are EXACT. UPGRADE requires both trims to be ranked on the
// platform's ladder with the listing exactly one rank above the sale. Any
// other gap, an unranked trim, or a platform without a ladder is
// VerdictNone. Empty trims never compare.
func (s *Set) TrimAllowed(platform, listingTrim, saleTrim string) Verdict {
	lt, st := canon(listingTrim), canon(saleTrim)
	if lt == "" || st == "" {
		return VerdictNone
	}
	if lt == st {
		return VerdictExact
	}
	if s == nil {
		return VerdictNone
	}

	l, ok := s.ladders[canon(platform)]
	if !ok {
		return VerdictNone
	}
	lr, lok := l[lt]
	sr, sok := l[st]
	if !lok || !sok {
		return VerdictNone
	}
	if lr == sr+1 {
		return VerdictUpgrade
	}
	return VerdictNone
}

// Rank returns the rank of trim on platform.
func (s *Set) Rank(platform, trim string) (int, bool) {
	l, ok := s.ladders[canon(platform)]
	if !ok {
		return 0, false
	}
	r, ok := l[canon(trim)]
	return r, ok
}

// Has reports whether platform has a ladder.
func (s *Set) Has(platform string) bool {
	_, ok := s.ladders[canon(platform)]
	return ok
}

// Platforms returns the platform classes with a ladder, sorted.
func (s *Set) Platforms() []string {
	out := make([]string, 0, len(s.ladders))
	for p := range s.ladders {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Trims returns the trims of a platform ordered from lowest to highest rank.
func (s *Set) Trims(platform string) []string {
	l := s.ladders[canon(platform)]
	out := make([]string, 0, len(l))
	for t := range l {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return l[out[i]] < l[out[j]] })
	return out
}

func canon(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
