package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLevel(t *testing.T) {
	log, err := SetupLevel("json", "warn")
	if err != nil {
		t.Fatalf("SetupLevel: %v", err)
	}
	if log.GetLevel() != zerolog.WarnLevel {
		t.Errorf("expected warn level, got %s", log.GetLevel())
	}

	log, err = SetupLevel("text", "")
	if err != nil {
		t.Fatalf("SetupLevel: %v", err)
	}
	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("expected info level, got %s", log.GetLevel())
	}

	if _, err := SetupLevel("json", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
