package reh

import "testing"

func TestSofaReh(t *testing.T) {
	cases := map[int]int{0: 2, 6: 2, 7: 3, 9: 3, 10: 4, 12: 4, 13: 2, 15: 2, 16: 0, 24: 0}
	for raw, want := range cases {
		if got := SofaReh(raw); got != want {
			t.Errorf("SofaReh(%d) = %d, want %d", raw, got, want)
		}
	}
}

func TestApacheReh(t *testing.T) {
	cases := map[int]int{0: 2, 9: 2, 10: 3, 14: 3, 15: 4, 19: 4, 20: 2, 24: 2, 25: 0, 71: 0}
	for raw, want := range cases {
		if got := ApacheReh(raw); got != want {
			t.Errorf("ApacheReh(%d) = %d, want %d", raw, got, want)
		}
	}
}

func TestCciReh(t *testing.T) {
	cases := map[int]int{0: 2, 2: 2, 3: 1, 4: 1, 5: 0, 12: 0}
	for raw, want := range cases {
		if got := CciReh(raw); got != want {
			t.Errorf("CciReh(%d) = %d, want %d", raw, got, want)
		}
	}
}

func TestSofaReh_NotMonotonic(t *testing.T) {
	if !(SofaReh(12) > SofaReh(13)) {
		t.Errorf("expected SOFA 12 to outrank SOFA 13, got %d vs %d", SofaReh(12), SofaReh(13))
	}
	if !(ApacheReh(19) > ApacheReh(25)) {
		t.Errorf("expected APACHE 19 to outrank APACHE 25")
	}
}
