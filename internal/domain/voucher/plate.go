package voucher

import (
	"regexp"
	"strings"
)

var (
	legacyPlate   = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlate = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

type PlateResult struct {
	Valid     bool
	Formatted string
}

// ValidatePlate accepts free-form plate input. Legacy Brazilian plates come
// back as AAA-9999, Mercosul plates as AAA9A99. Anything else is reported
// invalid together with the cleaned input.
func ValidatePlate(input string) PlateResult {
	cleaned := cleanPlate(input)
	switch {
	case legacyPlate.MatchString(cleaned):
		return PlateResult{Valid: true, Formatted: cleaned[:3] + "-" + cleaned[3:]}
	case mercosulPlate.MatchString(cleaned):
		return PlateResult{Valid: true, Formatted: cleaned}
	default:
		return PlateResult{Valid: false, Formatted: cleaned}
	}
}

func cleanPlate(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	// ASCII letters and digits only, folded byte by byte.
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case 'a' <= c && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		case ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9'):
			b.WriteByte(c)
		}
	}
	return b.String()
}
