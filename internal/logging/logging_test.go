package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONOnlyWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(nil)
		SetTraceEnabled(false)
	})

	Trace("ignored", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output while tracing is disabled, got %q", buf.String())
	}

	SetTraceEnabled(true)
	Trace("node.add", map[string]interface{}{"id": "a"})
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON trace entry, got %q: %v", buf.String(), err)
	}
	if entry.Event != "node.add" || entry.Payload["id"] != "a" {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestErrorAppendsLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Error(nil)
	Error(errors.New("boom"))
	if !strings.HasSuffix(buf.String(), "boom\n") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestConfigureCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(errors.New("to file"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Fatalf("unexpected file content %q", data)
	}
}
