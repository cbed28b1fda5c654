package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("warn", "json", &buf)

	log.Info().Msg("dropped")
	log.Warn().Str("topic", "Proteins").Msg("kept")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "kept" || entry["topic"] != "Proteins" {
		t.Errorf("unexpected entry %v", entry)
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("expected global level warn, got %v", zerolog.GlobalLevel())
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	Setup("loud", "json", &bytes.Buffer{})
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("expected info fallback, got %v", zerolog.GlobalLevel())
	}
}

func TestDefaultLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	p, err := DefaultLogPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(dir, "proteinlab", "proteinlab.log"); p != want {
		t.Errorf("got %q, want %q", p, want)
	}

	f, err := OpenFile(p)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	f.Close()
}
