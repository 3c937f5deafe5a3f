package extract

import (
	"fmt"
	"strings"

	domain "github.com/caroogle/bob/pkg/types"
)

// FingerprintKey generates a stable grouping key for an identity, in the
// form make:model:variant:year:drivetrain. Unresolved parts read "unknown".
func FingerprintKey(id domain.ListingIdentity) string {
	variant := id.VariantFamily
	if variant == "" {
		variant = id.VariantRaw
	}
	return fmt.Sprintf("%s:%s:%s:%d:%s",
		normalizeStr(id.Make),
		normalizeStr(id.Model),
		normalizeStr(variant),
		id.Year,
		driveKey(id.Drivetrain),
	)
}

// SaleKey is FingerprintKey for a historical sale, keyed on its trim class.
func SaleKey(s domain.HistoricalSale) string {
	return FingerprintKey(domain.ListingIdentity{
		Make:          s.Make,
		Model:         s.Model,
		VariantFamily: s.TrimClass,
		VariantRaw:    s.VariantRaw,
		Year:          s.Year,
		Drivetrain:    s.Drivetrain,
	})
}

const unknownKey = "unknown"

func normalizeStr(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return unknownKey
	}
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), "_")
	return s
}

func driveKey(d domain.DrivetrainBucket) string {
	if !d.Resolved() {
		return unknownKey
	}
	return strings.ToLower(string(d))
}
