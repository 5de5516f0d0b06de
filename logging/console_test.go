package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerWritesOneLine(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)

	log.Info("game finished", "winner", "computer", "moves", 17)

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected one line, got %q", out)
	}
	for _, want := range []string{"INFO", "game finished", "winner=computer", "moves=17"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestHandlerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn)

	log.Info("quiet")
	log.Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info record not filtered: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo).With("series", "abc")

	log.WithGroup("game").Info("done", "id", 3)

	out := buf.String()
	if !strings.Contains(out, "series=abc") {
		t.Errorf("output %q missing inherited attr", out)
	}
	if !strings.Contains(out, "game.id=3") {
		t.Errorf("output %q missing grouped attr", out)
	}
}
