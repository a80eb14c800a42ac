package batch

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Cleanup removes a partial scored file. A missing file is not an error.
func Cleanup(log zerolog.Logger, tempPath string) error {
	start := time.Now()

	if err := os.Remove(tempPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	log.Info().
		Str("temp", tempPath).
		Dur("duration", time.Since(start)).
		Msg("temp cleanup complete")

	return nil
}
