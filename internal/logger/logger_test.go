package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("pricing-service", &buf, slog.LevelDebug)

	log.Info("quote_priced", "Quote priced", "req-1", map[string]interface{}{"price": 74})

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	for key, want := range map[string]interface{}{
		"msg":        "Quote priced",
		"service":    "pricing-service",
		"action":     "quote_priced",
		"request_id": "req-1",
		"price":      float64(74),
	} {
		if record[key] != want {
			t.Errorf("record[%q] = %v, want %v", key, record[key], want)
		}
	}
}

func TestLogger_ErrorGroup(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("pricing-service", &buf, slog.LevelInfo)

	log.Error("quote_rejected", "Quote rejected", "req-2", errors.New("boom"), nil)

	var record struct {
		Level string `json:"level"`
		Error struct {
			Msg   string `json:"msg"`
			Stack string `json:"stack"`
		} `json:"error"`
	}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if record.Level != "ERROR" {
		t.Errorf("level = %q, want ERROR", record.Level)
	}
	if record.Error.Msg != "boom" || record.Error.Stack == "" {
		t.Errorf("error group = %+v", record.Error)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("pricing-service", &buf, slog.LevelInfo)

	log.Debug("noise", "should be dropped", "", nil)
	if buf.Len() != 0 {
		t.Errorf("debug record written at info level: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLevel(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == "" || a == b {
		t.Errorf("GenerateRequestID() returned %q and %q", a, b)
	}
}
