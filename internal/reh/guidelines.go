package reh

import (
	"slices"
	"sort"
)

// GuidelineKey names one guideline list.
type GuidelineKey string

const (
	Key1To4     GuidelineKey = "1-4"
	Key5To6     GuidelineKey = "5-6"
	Key7NoICU   GuidelineKey = "7_no_icu"
	Key7WithICU GuidelineKey = "7_with_icu"
)

// Guideline is one registry entry.
type Guideline struct {
	Key     GuidelineKey `json:"key"`
	Items   []string     `json:"items"`
	IcuNote string       `json:"icu_note,omitempty"`
}

type entry struct {
	items   []string
	icuNote string
}

const (
	itemScreen       = "Screen and identify critically ill patients"
	itemVitals       = "Assess vital signs every 1 hour"
	itemEquipment    = "Keep resuscitation equipment, monitor and defibrillator ready for use"
	itemNurse        = "Assign a nurse experienced or trained in critical care"
	itemScoringForm  = "Use the REH scoring form every shift"
	itemReportChange = "Report to the physician on any change or a GCS drop of 2 or more points"
	itemISBAR        = "Use ISBAR when reporting the case"
	itemBookICUBed   = "Consider booking an ICU bed daily"
	itemICUStandard  = "Provide care according to ICU standards"
	zoneSemiCritical = "; move the patient to the semi-critical zone"
	zoneCritical     = "; move the patient to the critical zone near the nursing counter"
	noteFirstQueue   = "For ICU cases, consider transferring the patient to a general semi-ICU ward, first queue"
	noteSecondQueue  = "For ICU cases, consider transferring the patient to a general semi-ICU ward, second queue"
)

var registry = map[GuidelineKey]entry{
	Key1To4: {
		items: []string{
			itemScreen, itemVitals, itemEquipment, itemNurse,
			itemScoringForm, itemReportChange, itemISBAR,
		},
		icuNote: noteFirstQueue,
	},
	Key5To6: {
		items: []string{
			itemScreen + zoneSemiCritical, itemVitals, itemEquipment, itemNurse,
			itemScoringForm, itemReportChange, itemISBAR,
		},
		icuNote: noteSecondQueue,
	},
	Key7NoICU: {
		items: []string{
			itemScreen + zoneCritical, itemVitals, itemEquipment, itemNurse,
			itemScoringForm, itemReportChange, itemISBAR, itemBookICUBed,
		},
	},
	Key7WithICU: {
		items: []string{itemICUStandard},
	},
}

// GuidelinesFor returns a copy of the list stored under key, or nil for an
// unknown key.
func GuidelinesFor(key GuidelineKey) []string {
	e, ok := registry[key]
	if !ok {
		return nil
	}
	return slices.Clone(e.items)
}

// Lookup returns the full registry entry for key.
func Lookup(key GuidelineKey) (Guideline, bool) {
	e, ok := registry[key]
	if !ok {
		return Guideline{}, false
	}
	return Guideline{Key: key, Items: slices.Clone(e.items), IcuNote: e.icuNote}, true
}

// All returns every registry entry ordered by key.
func All() []Guideline {
	keys := AllGuidelineKeys()
	out := make([]Guideline, 0, len(keys))
	for _, k := range keys {
		g, _ := Lookup(k)
		out = append(out, g)
	}
	return out
}

// AllGuidelineKeys returns the registry keys in sorted order.
func AllGuidelineKeys() []GuidelineKey {
	keys := make([]GuidelineKey, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
