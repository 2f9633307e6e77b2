package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		// Lowercase
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},

		// Uppercase
		{"DEBUG", LevelDebug},
		{"INFO", LevelInfo},
		{"WARN", LevelWarn},
		{"WARNING", LevelWarn},
		{"ERROR", LevelError},

		// Mixed case
		{"Debug", LevelDebug},
		{"Info", LevelInfo},
		{"Warn", LevelWarn},
		{"Warning", LevelWarn},
		{"Error", LevelError},
		{"dEbUg", LevelDebug},

		// Empty string defaults to Info
		{"", LevelInfo},

		// Unrecognized defaults to Info
		{"trace", LevelInfo},
		{"fatal", LevelInfo},
		{"unknown", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"Json", FormatJSON},
		{"text", FormatText},
		{"TEXT", FormatText},
		{"", FormatText},
		{"yaml", FormatText}, // unrecognized defaults to text
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseFormat(tt.input)
			if result != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseLevelStrict_RejectsUnknown(t *testing.T) {
	if _, err := ParseLevelStrict("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	level, err := ParseLevelStrict("Warning")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != LevelWarn {
		t.Errorf("ParseLevelStrict(Warning) = %v, want %v", level, LevelWarn)
	}
}

func TestNew_JSONIncludesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf}), "ews")
	logger.Debug("call finished", "operation", "GetItem")

	out := buf.String()
	for _, want := range []string{`"component":"ews"`, `"operation":"GetItem"`, `"msg":"call finished"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %s", out, want)
		}
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Output: &buf})
	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn record missing")
	}
}

func TestNop_DiscardsAndComponentAcceptsNil(t *testing.T) {
	Nop().Error("nothing")
	if Component(nil, "x") == nil {
		t.Fatal("Component(nil) returned nil")
	}
}

func TestParseFormatStrict(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "Text": FormatText, "JSON": FormatJSON} {
		got, err := ParseFormatStrict(in)
		if err != nil {
			t.Fatalf("ParseFormatStrict(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseFormatStrict(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseFormatStrict("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
