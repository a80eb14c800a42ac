package bands

import (
	"math"
	"testing"
)

var threeBands = Table{
	{Min: NegInf, Max: Below(10), Score: 3},
	{Min: 10, Max: 20, Score: 1},
	{Min: 30, Max: PosInf, Score: 2},
}

func TestScore_FirstMatchAndGap(t *testing.T) {
	cases := []struct {
		v    float64
		want int
	}{
		{-1000, 3},
		{9.999, 3},
		{10, 1},
		{20, 1},
		{25, 0},
		{30, 2},
		{math.Inf(1), 2},
		{math.Inf(-1), 3},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		if got := Score(c.v, threeBands); got != c.want {
			t.Errorf("Score(%v) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestScore_OverlapPrefersEarlierBand(t *testing.T) {
	tbl := Table{{Min: 70, Max: PosInf, Score: 0}, {Min: 61, Max: 70, Score: 1}}
	if got := Score(70, tbl); got != 0 {
		t.Errorf("Score(70) = %d, want 0", got)
	}
}

func TestLookup_Unparseable(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "NaN", "-", ".", "inf"} {
		if got := Lookup(in, threeBands); got != 0 {
			t.Errorf("Lookup(%q) = %d, want 0", in, got)
		}
	}
}

func TestLookup_TrimsWhitespace(t *testing.T) {
	if got := Lookup("  15 ", threeBands); got != 1 {
		t.Errorf("Lookup = %d, want 1", got)
	}
}

func TestBelow(t *testing.T) {
	b := Below(100)
	if !(b < 100) {
		t.Fatalf("Below(100) = %v, not below 100", b)
	}
	if !(99.99999 < b) {
		t.Errorf("Below(100) = %v, too far from 100", b)
	}
}

func TestParseFloat(t *testing.T) {
	if _, ok := ParseFloat("NaN"); ok {
		t.Error("NaN should be rejected")
	}
	v, ok := ParseFloat("1e400")
	if !ok || !math.IsInf(v, 1) {
		t.Errorf("overflow: got %v, %v; want +Inf, true", v, ok)
	}
	v, ok = ParseFloat(" 7.25")
	if !ok || v != 7.25 {
		t.Errorf("got %v, %v", v, ok)
	}
}

func TestParseFloat_LeadingNumber(t *testing.T) {
	cases := map[string]float64{
		"7.4abc":   7.4,
		"38.5 C":   38.5,
		"1_000":    1,
		"1,5":      1,
		"0x1p3":    0,
		"1e3":      1000,
		"1e":       1,
		"2.5e-1mg": 0.25,
		".5":       0.5,
		"-.5":      -0.5,
		"5.":       5,
		"+12":      12,
		"\t\n 42":  42,
	}
	for in, want := range cases {
		got, ok := ParseFloat(in)
		if !ok || got != want {
			t.Errorf("ParseFloat(%q) = %v, %v; want %v", in, got, ok, want)
		}
	}
	v, ok := ParseFloat("-Infinity")
	if !ok || !math.IsInf(v, -1) {
		t.Errorf("-Infinity: got %v, %v", v, ok)
	}
}

func TestLookup_TrailingText(t *testing.T) {
	if got := Lookup("15 mmHg", threeBands); got != 1 {
		t.Errorf("Lookup = %d, want 1", got)
	}
	if got := Lookup("1,5", threeBands); got != 3 {
		t.Errorf("Lookup(1,5) = %d, want 3", got)
	}
}

func TestParseInt_Truncates(t *testing.T) {
	cases := map[string]int{"14.7": 14, "-2.9": -2, "15": 15, " 3 ": 3, "1e3": 1, "+7x": 7, "0x1A": 0}
	for in, want := range cases {
		got, ok := ParseInt(in)
		if !ok || got != want {
			t.Errorf("ParseInt(%q) = %d, %v; want %d", in, got, ok, want)
		}
	}
	for _, in := range []string{"", "x", "Inf", "-", "99999999999"} {
		if _, ok := ParseInt(in); ok {
			t.Errorf("ParseInt(%q) should fail", in)
		}
	}
}
