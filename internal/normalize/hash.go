package normalize

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gyeh/rehtriage/internal/model"
)

// FileHash returns the hex SHA-256 of the file at path. Batch runs use it to
// identify their input.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hash: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// rowHasher writes NUL-terminated fields so adjacent values cannot run
// together.
type rowHasher struct {
	h hash.Hash
}

func (r rowHasher) str(s string) {
	r.h.Write([]byte(strings.TrimSpace(s)))
	r.h.Write([]byte{0})
}

func (r rowHasher) opt(s *string) { r.str(derefStr(s)) }

func (r rowHasher) flag(b bool) { r.str(strconv.FormatBool(b)) }

// RowHash is the SHA-256 of a source row's position and every column value.
// Evaluation IDs are derived from it.
func RowHash(rowNum int64, row *model.EvaluationRow) []byte {
	r := rowHasher{h: sha256.New()}
	var num [8]byte
	binary.LittleEndian.PutUint64(num[:], uint64(rowNum))
	r.h.Write(num[:])

	r.str(row.HN)
	r.opt(row.FirstName)
	r.opt(row.LastName)
	r.opt(row.Gender)
	r.str(row.Ward)
	r.opt(row.EvaluatedOn)
	r.str(row.AssessmentType)
	r.str(row.Priority)
	r.str(strings.Join(row.Comorbidities, ","))

	for _, v := range []*string{row.SofaRespiration, row.SofaPlatelets, row.SofaBilirubin,
		row.SofaCardiovascular, row.SofaCNS, row.SofaRenal} {
		r.opt(v)
	}
	r.flag(row.SofaVentilated)

	for _, v := range []*string{row.ApacheTemperature, row.ApacheMAP, row.ApacheHeartRate,
		row.ApacheRespiratoryRate, row.ApacheFiO2, row.ApacheOxygenation, row.ApacheAcidBaseMode,
		row.ApacheAcidBaseValue, row.ApacheSodium, row.ApachePotassium, row.ApacheCreatinine,
		row.ApacheHematocrit, row.ApacheWBC, row.ApacheGCS, row.ApacheAge, row.ApacheOperativeStatus} {
		r.opt(v)
	}
	r.flag(row.ApacheARF)
	r.str(strings.Join(row.ApacheChronicConditions, ","))

	return r.h.Sum(nil)
}
