package reh

import (
	"strings"
	"testing"
)

func TestGuidelinesFor_ReturnsCopy(t *testing.T) {
	a := GuidelinesFor(Key1To4)
	if len(a) != 7 {
		t.Fatalf("expected 7 items, got %d", len(a))
	}
	a[0] = "mutated"
	if GuidelinesFor(Key1To4)[0] == "mutated" {
		t.Error("registry was mutated through returned slice")
	}
}

func TestGuidelinesFor_Unknown(t *testing.T) {
	if got := GuidelinesFor("9"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if _, ok := Lookup("9"); ok {
		t.Error("expected Lookup to miss")
	}
}

func TestGuidelineLists(t *testing.T) {
	if !strings.Contains(GuidelinesFor(Key5To6)[0], "semi-critical zone") {
		t.Errorf("5-6 should move the patient to the semi-critical zone")
	}
	noICU := GuidelinesFor(Key7NoICU)
	if len(noICU) != 8 || noICU[7] != "Consider booking an ICU bed daily" {
		t.Errorf("unexpected 7_no_icu list: %v", noICU)
	}
	withICU := GuidelinesFor(Key7WithICU)
	if len(withICU) != 1 || withICU[0] != "Provide care according to ICU standards" {
		t.Errorf("unexpected 7_with_icu list: %v", withICU)
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(all))
	}
	keys := AllGuidelineKeys()
	for i, g := range all {
		if g.Key != keys[i] {
			t.Errorf("entry %d: key %s, want %s", i, g.Key, keys[i])
		}
	}
}
