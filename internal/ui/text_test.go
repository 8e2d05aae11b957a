package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	// Ensure NO_COLOR is not set for this test.
	os.Unsetenv("NO_COLOR")
	// Force color output for testing.
	color.NoColor = false

	// Highlight formatter should not have quotes when color is enabled.
	result := Highlight.Sprint("main-wallet")
	if strings.Contains(result, "'") {
		t.Errorf("Highlight.Sprint should not contain quotes when color is enabled, got: %s", result)
	}

	// Verify it contains ANSI escape codes (color output).
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Highlight.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Path has no decoration", Path, "params.json", "params.json"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "main-wallet", "'main-wallet'"},
		{"Muted adds parentheses", Muted, "not set", "(not set)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	result := Highlight.Sprintf("wallet %s", "main")
	want := "'wallet main'"
	if result != want {
		t.Errorf("Highlight.Sprintf() = %q, want %q", result, want)
	}
}

func TestMasked(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	if got := Masked(true); got != "(********)" {
		t.Errorf("Masked(true) = %q, want placeholder with no plaintext", got)
	}
	if got := Masked(false); got != "(not set)" {
		t.Errorf("Masked(false) = %q", got)
	}
}

func TestEnsureNewline(t *testing.T) {
	if got := EnsureNewline("done"); got != "done\n" {
		t.Errorf("EnsureNewline(%q) = %q", "done", got)
	}
	if got := EnsureNewline("done\n"); got != "done\n" {
		t.Errorf("EnsureNewline should not double a trailing newline, got %q", got)
	}
	if got := EnsureNewline(""); got != "\n" {
		t.Errorf("EnsureNewline(\"\") = %q", got)
	}
}

func TestNoColorFunction(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	if !noColor() {
		t.Error("noColor() should return true when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	originalNoColor := color.NoColor
	color.NoColor = true
	if !noColor() {
		t.Error("noColor() should return true when color.NoColor is true")
	}
	color.NoColor = originalNoColor
}
