// mkfixture writes a small Parquet evaluation fixture. With --in it samples a
// larger export so every risk tier and assessment type is represented; without
// it, rows are generated from a seeded random source.
// Usage: go run ./cmd/mkfixture --in export.parquet --out testdata/evaluations-small.parquet --rows 200
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/gyeh/rehtriage/internal/model"
	"github.com/gyeh/rehtriage/internal/normalize"
	"github.com/gyeh/rehtriage/internal/parquetio"
	"github.com/gyeh/rehtriage/internal/triage"
)

func main() {
	in := flag.String("in", "", "input parquet to sample (empty = generate)")
	out := flag.String("out", "testdata/evaluations-small.parquet", "output parquet")
	maxRows := flag.Int("rows", 200, "max rows to output")
	seed := flag.Int64("seed", 1, "random seed for generated rows")
	flag.Parse()

	var selected []model.EvaluationRow
	if *in != "" {
		rows, err := parquetio.ReadAll(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scanned %d rows\n", len(rows))
		selected = sample(rows, *maxRows)
	} else {
		g := newGenerator(*seed)
		selected = make([]model.EvaluationRow, *maxRows)
		for i := range selected {
			selected[i] = g.row(i)
		}
	}

	if err := parquetio.WriteEvaluations(*out, selected); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}

	tiers := make(map[model.RiskLevel]int)
	kinds := make(map[model.AssessmentType]int)
	rejected := 0
	for i := range selected {
		rec, err := normalize.ToPatientRecord(&selected[i])
		if err != nil {
			rejected++
			continue
		}
		res := triage.Evaluate(rec)
		tiers[res.RiskLevel]++
		kinds[res.AssessmentType]++
	}
	fmt.Printf("Wrote %d rows to %s\n", len(selected), *out)
	fmt.Println("Distribution:")
	for _, at := range model.AllAssessmentTypes {
		fmt.Printf("  %-10s %d\n", at, kinds[at])
	}
	for _, lvl := range model.AllRiskLevels {
		fmt.Printf("  %-10s %d\n", lvl, tiers[lvl])
	}
	fmt.Printf("  %-10s %d\n", "rejected", rejected)
}

// sample buckets rows by assessment type and risk tier and takes an even
// share from each bucket, topping up with rejected rows and then the rest.
func sample(rows []model.EvaluationRow, maxRows int) []model.EvaluationRow {
	type bucket struct {
		name string
		rows []model.EvaluationRow
	}
	var buckets []*bucket
	bucketMap := make(map[string]*bucket)
	for _, at := range model.AllAssessmentTypes {
		for _, lvl := range model.AllRiskLevels {
			b := &bucket{name: string(at) + "/" + string(lvl)}
			buckets = append(buckets, b)
			bucketMap[b.name] = b
		}
	}
	rejected := &bucket{name: "rejected"}
	buckets = append(buckets, rejected)

	want := maxRows / len(buckets)
	if want == 0 {
		want = 1
	}
	var general []model.EvaluationRow
	for i := range rows {
		rec, err := normalize.ToPatientRecord(&rows[i])
		if err != nil {
			if len(rejected.rows) < want {
				rejected.rows = append(rejected.rows, rows[i])
			}
			continue
		}
		res := triage.Evaluate(rec)
		b := bucketMap[string(res.AssessmentType)+"/"+string(res.RiskLevel)]
		switch {
		case b != nil && len(b.rows) < want:
			b.rows = append(b.rows, rows[i])
		case len(general) < maxRows:
			general = append(general, rows[i])
		}
	}

	var selected []model.EvaluationRow
	for _, b := range buckets {
		for _, row := range b.rows {
			if len(selected) >= maxRows {
				return selected
			}
			selected = append(selected, row)
		}
	}
	for _, row := range general {
		if len(selected) >= maxRows {
			break
		}
		selected = append(selected, row)
	}
	return selected
}

type generator struct {
	rng *rand.Rand
}

func newGenerator(seed int64) *generator {
	return &generator{rng: rand.New(rand.NewSource(seed))}
}

var (
	wards      = []string{"AE", "ward", "ICU"}
	priorities = []string{"P1", "P2", "P3", "P4"}
	genders    = []string{"M", "F"}
)

func (g *generator) pick(opts []string) string {
	return opts[g.rng.Intn(len(opts))]
}

func (g *generator) num(lo, hi float64) *string {
	s := strconv.FormatFloat(lo+g.rng.Float64()*(hi-lo), 'f', 1, 64)
	return &s
}

func (g *generator) integer(lo, hi int) *string {
	s := strconv.Itoa(lo + g.rng.Intn(hi-lo+1))
	return &s
}

func (g *generator) row(i int) model.EvaluationRow {
	gender := g.pick(genders)
	row := model.EvaluationRow{
		HN:       fmt.Sprintf("HN%06d", i+1),
		Gender:   &gender,
		Ward:     g.pick(wards),
		Priority: g.pick(priorities),
	}
	for _, c := range model.AllConditions {
		if g.rng.Intn(8) == 0 {
			row.Comorbidities = append(row.Comorbidities, string(c.Key))
		}
	}
	if g.rng.Intn(2) == 0 {
		row.AssessmentType = string(model.AssessmentSOFA)
		cv := model.CardiovascularOptions[g.rng.Intn(len(model.CardiovascularOptions))].Value
		row.SofaRespiration = g.num(80, 500)
		row.SofaVentilated = g.rng.Intn(3) == 0
		row.SofaPlatelets = g.num(10, 300)
		row.SofaBilirubin = g.num(0.3, 14)
		row.SofaCardiovascular = &cv
		row.SofaCNS = g.integer(3, 15)
		row.SofaRenal = g.num(0.5, 6)
		return row
	}
	row.AssessmentType = string(model.AssessmentAPACHE)
	mode := string(model.AcidBasePH)
	status := string(model.OperativeNone)
	row.ApacheTemperature = g.num(29, 42)
	row.ApacheMAP = g.integer(40, 170)
	row.ApacheHeartRate = g.integer(35, 190)
	row.ApacheRespiratoryRate = g.integer(5, 55)
	row.ApacheFiO2 = g.num(0.21, 1)
	row.ApacheOxygenation = g.integer(50, 550)
	row.ApacheAcidBaseMode = &mode
	row.ApacheAcidBaseValue = g.num(7.1, 7.7)
	row.ApacheSodium = g.integer(115, 165)
	row.ApachePotassium = g.num(2.5, 7.5)
	row.ApacheCreatinine = g.num(0.5, 4)
	row.ApacheARF = g.rng.Intn(5) == 0
	row.ApacheHematocrit = g.integer(18, 62)
	row.ApacheWBC = g.num(0.5, 42)
	row.ApacheGCS = g.integer(3, 15)
	row.ApacheAge = g.integer(18, 90)
	row.ApacheOperativeStatus = &status
	return row
}
