package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
			os.Unsetenv(k)
		}
	}
}

func TestNewLevel(t *testing.T) {
	unsetEnv(t, "LOG_LEVEL", "LOG_FORMAT")
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"ERROR", logrus.ErrorLevel},
		{"bogus", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}
	for _, tt := range tests {
		if got := New(tt.in, "text").GetLevel(); got != tt.want {
			t.Errorf("New(%q) level = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEnvOverridesConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	log := newWithOutput("error", "text", &buf)
	if log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v, want debug", log.GetLevel())
	}
	log.WithField("seed", 7).Info("world generated")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %q", buf.String())
	}
	if entry["msg"] != "world generated" || entry["seed"] != float64(7) {
		t.Errorf("entry = %v", entry)
	}
}

func TestTextFormat(t *testing.T) {
	unsetEnv(t, "LOG_LEVEL", "LOG_FORMAT")
	var buf bytes.Buffer
	newWithOutput("info", "text", &buf).WithField("zone", "town").Info("ready")
	if out := buf.String(); !strings.Contains(out, "zone=town") || !strings.Contains(out, "msg=ready") {
		t.Errorf("text output = %q", out)
	}
}
