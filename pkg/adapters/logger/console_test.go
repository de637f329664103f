package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/postergen/pkg/ports"
)

func TestConsoleLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleTo(ports.LevelWarn, &buf)

	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line")
	l.Error("error line")

	out := buf.String()
	if strings.Contains(out, "debug line") || strings.Contains(out, "info line") {
		t.Errorf("messages below the level were written: %q", out)
	}
	if !strings.Contains(out, "warn line") || !strings.Contains(out, "error line") {
		t.Errorf("messages at or above the level missing: %q", out)
	}
}

func TestConsoleLogger_ComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleTo(ports.LevelDebug, &buf).WithComponent("compose")

	l.Info("rendered")

	if !strings.Contains(buf.String(), "[compose] rendered") {
		t.Errorf("component prefix missing: %q", buf.String())
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoop()
	// Must not panic and WithComponent must stay a no-op.
	l.WithComponent("x").Info("ignored %d", 1)
}
