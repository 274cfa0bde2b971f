package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		debug   bool
		wantLog bool
	}{
		{"info at info", log.InfoLevel, false, true},
		{"debug at info", log.InfoLevel, true, false},
		{"debug at debug", log.DebugLevel, true, true},
		{"info at warn", log.WarnLevel, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			if tt.debug {
				logger.Debug("bellman-ford pass", "pass", 1)
			} else {
				logger.Info("loaded graph")
			}
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("ready")
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(buf.String()) {
		t.Errorf("line should start with HH:MM:SS.cc, got %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	if prog.elapsed() < 0 {
		t.Fatal("elapsed must not be negative")
	}

	prog.done("Ran Bellman-Ford over 5 nodes")
	out := buf.String()
	if !strings.Contains(out, "Ran Bellman-Ford over 5 nodes (") || !strings.Contains(out, "s)") {
		t.Errorf("done output = %q", out)
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Fatal("loggerFromContext should return the attached logger")
	}
	loggerFromContext(ctx).Info("from context")
	if !strings.Contains(buf.String(), "from context") {
		t.Error("attached logger should write to its buffer")
	}
}
