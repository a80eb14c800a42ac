// Package bands evaluates values against ordered score tables.
package bands

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Band is a closed interval [Min, Max] mapped to a score. Either end may be
// infinite to leave that side open.
type Band struct {
	Min   float64
	Max   float64
	Score int
}

// Table is an ordered list of bands. The first band containing a value wins.
type Table []Band

var (
	NegInf = math.Inf(-1)
	PosInf = math.Inf(1)
)

// Below returns the largest float64 strictly less than x. It turns a "< x"
// threshold into an inclusive band edge.
func Below(x float64) float64 {
	return math.Nextafter(x, NegInf)
}

// Contains reports whether v falls inside the band.
func (b Band) Contains(v float64) bool {
	return (math.IsInf(b.Min, -1) || v >= b.Min) && (math.IsInf(b.Max, 1) || v <= b.Max)
}

// Score returns the score of the first band containing v, or 0 when v is NaN
// or no band matches.
func Score(v float64, t Table) int {
	if math.IsNaN(v) {
		return 0
	}
	for _, b := range t {
		if b.Contains(v) {
			return b.Score
		}
	}
	return 0
}

// Lookup parses a raw form value and scores it against t. Empty or
// unparseable input scores 0.
func Lookup(value string, t Table) int {
	v, ok := ParseFloat(value)
	if !ok {
		return 0
	}
	return Score(v, t)
}

// ParseFloat reads the longest decimal number at the start of value, after
// leading whitespace: "38.5 C" reads as 38.5 and "1_000" as 1. Hex, NaN and
// underscores are not numbers here. "Infinity" and overflow read as ±Inf,
// which land in the open-ended bands.
func ParseFloat(value string) (float64, bool) {
	s := strings.TrimLeftFunc(value, unicode.IsSpace)
	n := leadingDecimal(s)
	if n == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil && !isRangeErr(err) {
		return 0, false
	}
	return v, true
}

// ParseInt reads the leading base-10 integer of value: "14.7" reads as 14 and
// "1e3" as 1. Values outside the int32 range are rejected.
func ParseInt(value string) (int, bool) {
	s := strings.TrimLeftFunc(value, unicode.IsSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	d := digits(s[i:])
	if d == 0 {
		return 0, false
	}
	v, err := strconv.ParseInt(s[:i+d], 10, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// leadingDecimal returns the length of the number prefix of s: an optional
// sign, then "Infinity" or digits with an optional fraction and exponent.
// It returns 0 when s does not start with a number.
func leadingDecimal(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return i + len("Infinity")
	}
	whole := digits(s[i:])
	i += whole
	frac := 0
	if i < len(s) && s[i] == '.' {
		frac = digits(s[i+1:])
		if whole > 0 || frac > 0 {
			i += 1 + frac
		}
	}
	if whole == 0 && frac == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if exp := digits(s[j:]); exp > 0 {
			i = j + exp
		}
	}
	return i
}

func digits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// ParseFloat reports ErrRange for overflow but still returns ±Inf, which is a
// usable value for open-ended bands.
func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
