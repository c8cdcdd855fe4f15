package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger(LevelInfo)
	if logger.level != LevelInfo {
		t.Errorf("expected level %s, got %s", LevelInfo, logger.level)
	}
	if logger.format != FormatJSON {
		t.Errorf("expected default format %s, got %s", FormatJSON, logger.format)
	}
}

func TestLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LevelDebug)
	logger.SetOutput(&buf)

	logger.Debug("test message", map[string]any{"key": "value"})

	output := buf.String()
	if !strings.Contains(output, `"level":"debug"`) {
		t.Errorf("expected debug level in output, got: %s", output)
	}
	if !strings.Contains(output, `"message":"test message"`) {
		t.Errorf("expected message in output, got: %s", output)
	}
}

func TestLogger_DebugFiltered(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LevelInfo)
	logger.SetOutput(&buf)

	logger.Debug("test message")

	if buf.Len() > 0 {
		t.Errorf("expected no output for debug when level is info, got: %s", buf.String())
	}
}

func TestLogger_WarnFilteredAtError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LevelError)
	logger.SetOutput(&buf)

	logger.Warn("warn message")

	if buf.Len() > 0 {
		t.Errorf("expected no output for warn when level is error, got: %s", buf.String())
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LevelInfo)
	logger.SetOutput(&buf)
	logger.SetFormat(FormatText)

	logger.Info("doing things", map[string]any{"path": "/tmp/x", "attempt": 2})

	output := buf.String()
	if !strings.Contains(output, "INFO doing things") {
		t.Errorf("expected text rendering, got: %s", output)
	}
	if !strings.Contains(output, "attempt=2 path=/tmp/x") {
		t.Errorf("expected fields in stable order, got: %s", output)
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LevelInfo)
	logger.SetOutput(&buf)

	child := logger.WithFields(map[string]any{"op": "remove"})
	child.Info("message")

	output := buf.String()
	if !strings.Contains(output, `"op":"remove"`) {
		t.Errorf("expected inherited field in output, got: %s", output)
	}
}

func TestLogger_ErrorErr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LevelError)
	logger.SetOutput(&buf)

	logger.ErrorErr("failed", errFixture("kaput"))

	output := buf.String()
	if !strings.Contains(output, `"error":"kaput"`) {
		t.Errorf("expected error field in output, got: %s", output)
	}
}

type errFixture string

func (e errFixture) Error() string { return string(e) }
