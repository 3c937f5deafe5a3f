package extract

import (
	"regexp"
	"strings"

	domain "github.com/caroogle/bob/pkg/types"
)

var (
	fourWDRe = regexp.MustCompile(
		`\b(?:4\s?X\s?4|4WD|AWD|4MOTION|QUATTRO|FOUR[\s\-]WHEEL[\s\-]DRIVE|ALL[\s\-]WHEEL[\s\-]DRIVE)\b`)
	twoWDRe = regexp.MustCompile(
		`\b(?:4\s?X\s?2|2WD|FWD|RWD|TWO[\s\-]WHEEL[\s\-]DRIVE|FRONT[\s\-]WHEEL[\s\-]DRIVE|REAR[\s\-]WHEEL[\s\-]DRIVE)\b`)
)

// Drivetrain buckets one text. Text naming both a 4WD and a 2WD pattern is
// ambiguous and returns UNKNOWN.
func Drivetrain(text string) domain.DrivetrainBucket {
	upper := strings.ToUpper(text)
	four := fourWDRe.MatchString(upper)
	two := twoWDRe.MatchString(upper)
	switch {
	case four && !two:
		return domain.Drivetrain4WD
	case two && !four:
		return domain.Drivetrain2WD
	default:
		return domain.DrivetrainUnknown
	}
}

// ResolveDrivetrain returns the bucket of the first text that resolves.
func ResolveDrivetrain(texts ...string) domain.DrivetrainBucket {
	for _, text := range texts {
		if b := Drivetrain(text); b.Resolved() {
			return b
		}
	}
	return domain.DrivetrainUnknown
}
