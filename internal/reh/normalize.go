// Package reh maps raw severity scores onto the hospital's REH point scale and
// classifies the composite total into a risk tier with nursing guidelines.
package reh

// The REH point curves peak in the middle bands and fall back for the most
// severe scores, following the ward protocol.
type step struct {
	max    int
	points int
}

var (
	sofaSteps   = []step{{6, 2}, {9, 3}, {12, 4}, {15, 2}}
	apacheSteps = []step{{9, 2}, {14, 3}, {19, 4}, {24, 2}}
	cciSteps    = []step{{2, 2}, {4, 1}}
)

func stepPoints(raw int, steps []step) int {
	for _, s := range steps {
		if raw <= s.max {
			return s.points
		}
	}
	return 0
}

// SofaReh converts a raw SOFA total into REH points.
func SofaReh(raw int) int { return stepPoints(raw, sofaSteps) }

// ApacheReh converts a raw APACHE II total into REH points.
func ApacheReh(raw int) int { return stepPoints(raw, apacheSteps) }

// CciReh converts a raw Charlson index into REH points.
func CciReh(raw int) int { return stepPoints(raw, cciSteps) }
