package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/rehtriage/internal/normalize"
	"github.com/gyeh/rehtriage/internal/parquetio"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the input path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the input.
	FileSHA256 string
	// FileSize is the input size in bytes.
	FileSize int64
	// OutputPath is where the scored file lands after finalize.
	OutputPath string
	// TempPath receives rows during scoring and is renamed onto OutputPath.
	TempPath string
	// BatchID identifies this run and seeds the per-row evaluation IDs.
	BatchID uuid.UUID
	// NumRows is the row count from the Parquet footer.
	NumRows int64
	// AlreadyScored is true when OutputPath exists and force is off.
	AlreadyScored bool
}

// Preflight hashes the input, validates its schema and decides whether the
// run can be skipped.
func Preflight(log zerolog.Logger, filePath, outPath string, force bool) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	reader, err := parquetio.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	defer reader.Close()

	if err := parquetio.ValidateSchema(reader.Schema()); err != nil {
		return nil, fmt.Errorf("preflight validate: %w", err)
	}

	alreadyScored := false
	if _, err := os.Stat(outPath); err == nil && !force {
		alreadyScored = true
	}

	batchID := uuid.New()
	pf := &PreflightResult{
		FilePath:      filePath,
		FileSHA256:    sha,
		FileSize:      stat.Size(),
		OutputPath:    outPath,
		TempPath:      filepath.Join(filepath.Dir(outPath), fmt.Sprintf(".%s.%s.tmp", filepath.Base(outPath), batchID)),
		BatchID:       batchID,
		NumRows:       reader.NumRows(),
		AlreadyScored: alreadyScored,
	}

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", sha).
		Int64("rows", pf.NumRows).
		Str("batch_id", batchID.String()).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	return pf, nil
}
