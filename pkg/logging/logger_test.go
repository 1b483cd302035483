package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error", "bogus", ""}
	for _, level := range levels {
		logger := New(level)
		if logger == nil || logger.Logger == nil {
			t.Fatalf("New(%q) returned nil logger", level)
		}
	}
}

func TestNewWithWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("info", &buf)

	logger.Info("record saved", "collection", "patients", "id", "PID-1")

	line := strings.TrimSpace(buf.String())
	var record map[string]any
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, line)
	}
	if record["msg"] != "record saved" {
		t.Errorf("msg = %v, want 'record saved'", record["msg"])
	}
	if record["collection"] != "patients" {
		t.Errorf("collection = %v, want patients", record["collection"])
	}
}

func TestNewWithWriterFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("error", &buf)

	logger.Info("should be dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info record to be filtered, got %q", buf.String())
	}

	logger.Error("should be kept")
	if buf.Len() == 0 {
		t.Error("expected error record to be emitted")
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("Default returned nil")
	}
}
