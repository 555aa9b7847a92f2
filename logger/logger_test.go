package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{"Debug text", "debug", "text", logrus.DebugLevel, false},
		{"Warn json", "warn", "JSON", logrus.WarnLevel, true},
		{"Unknown level falls back to info", "chatty", "", logrus.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Init(tt.level, tt.format, &buf)

			if Log.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", Log.GetLevel(), tt.wantLevel)
			}

			For("caster").Error("boom")
			line := strings.TrimSpace(buf.String())

			var fields map[string]any
			isJSON := json.Unmarshal([]byte(line), &fields) == nil
			if isJSON != tt.wantJSON {
				t.Errorf("json output = %v, want %v (%q)", isJSON, tt.wantJSON, line)
			}
			if !strings.Contains(line, "caster") {
				t.Errorf("subsystem field missing from %q", line)
			}
		})
	}
}
