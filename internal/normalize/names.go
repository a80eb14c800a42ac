package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// NormalizeName collapses whitespace and trims the input.
// Returns "" if the input is nil or the result is empty.
func NormalizeName(v *string) string {
	if v == nil {
		return ""
	}
	return multiSpace.ReplaceAllString(strings.TrimSpace(*v), " ")
}

// NormalizeHN trims, uppercases and strips separators from a hospital number.
func NormalizeHN(s string) string {
	return strings.ToUpper(nonAlphanumeric.ReplaceAllString(strings.TrimSpace(s), ""))
}

// NormalizeGender maps common spellings to "male" or "female"; anything else
// is returned lowercased.
func NormalizeGender(v *string) string {
	if v == nil {
		return ""
	}
	switch g := canonical(*v); g {
	case "m", "male":
		return "male"
	case "f", "female":
		return "female"
	default:
		return g
	}
}

// NormalizeValue trims a measurement field. Returns "" for nil.
func NormalizeValue(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
