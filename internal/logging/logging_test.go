package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	// Must not panic and must not write anywhere.
	Logger().Info("quiet", "k", "v")
	Logger().Warn("still quiet")
}

func TestSetLoggerRoutesOutput(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Warn("dangling edge dropped", "source", "a")

	if !strings.Contains(buf.String(), "dangling edge dropped") {
		t.Errorf("Expected the message in the handler output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "source=a") {
		t.Errorf("Expected attributes in output, got %q", buf.String())
	}
}
