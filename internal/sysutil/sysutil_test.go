package sysutil

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"  debug  ", zerolog.DebugLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range tests {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSetupLogging_SetsGlobalLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	SetupLogging("error", false)
	if got := zerolog.GlobalLevel(); got != zerolog.ErrorLevel {
		t.Errorf("global level=%v, want %v", got, zerolog.ErrorLevel)
	}

	SetupLogging("nonsense", false)
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Errorf("global level=%v, want %v", got, zerolog.InfoLevel)
	}
}
