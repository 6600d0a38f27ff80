package cli

import (
	"reflect"
	"testing"
	"time"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Provider", flags.Provider, "openai"},
		{"MaxAttempts", flags.MaxAttempts, 3},
		{"RetryDelay", flags.RetryDelay, time.Second},
		{"Pace", flags.Pace, 100 * time.Millisecond},
		{"KoreanThreshold", flags.KoreanThreshold, 0.0},
		{"LogDir", flags.LogDir, "logs"},
		{"LogLevel", flags.LogLevel, "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"OutputPath", flags.OutputPath},
		{"Model", flags.Model},
		{"MemoryDB", flags.MemoryDB},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}

	if flags.NoLogFile {
		t.Error("NoLogFile should default to false")
	}
}
