package synclog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveColor verifies the color decision for each mode and sink kind.
func TestResolveColor(t *testing.T) {
	tests := []struct {
		name     string
		mode     ColorMode
		isFile   bool
		probe    TerminalProbe
		expected bool
	}{
		{"file always", ColorAlways, true, fixedProbe(true), false},
		{"file auto", ColorAuto, true, fixedProbe(true), false},
		{"always", ColorAlways, false, fixedProbe(false), true},
		{"never", ColorNever, false, fixedProbe(true), false},
		{"auto terminal", ColorAuto, false, fixedProbe(true), true},
		{"auto no terminal", ColorAuto, false, fixedProbe(false), false},
		{"auto nil probe", ColorAuto, false, nil, false},
		{"unknown mode", ColorMode(7), false, fixedProbe(true), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ResolveColor(test.mode, test.isFile, test.probe, new(bytes.Buffer)))
		})
	}
}

// TestEscapeFor verifies the escape sequence of each severity and the reset.
func TestEscapeFor(t *testing.T) {
	expected := map[Severity]string{
		TraceIssuer: "\033[90m",
		DebugIssuer: "\033[36m",
		InfoIssuer:  "\033[32m",
		WarnIssuer:  "\033[33m",
		ErrorIssuer: "\033[31m",
		FatalIssuer: "\033[91m",
	}
	for level, escape := range expected {
		assert.Equal(t, escape, EscapeFor(level), level.String())
	}
	assert.Empty(t, EscapeFor(FatalIssuer+1))
	assert.Equal(t, "\033[0m", ResetEscape())
}

// TestTTYProbeRejectsNonTerminals verifies that buffers and regular files are never color-capable.
func TestTTYProbeRejectsNonTerminals(t *testing.T) {
	probe := TTYProbe{Getenv: func(string) string { return "xterm-256color" }}

	assert.False(t, probe.ColorCapable(new(bytes.Buffer)))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, probe.ColorCapable(f))
}

// TestTTYProbeTerm verifies the TERM check on a real terminal, when one is attached.
func TestTTYProbeTerm(t *testing.T) {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		t.Skip("no controlling terminal")
	}
	defer tty.Close()

	for term, expected := range map[string]bool{"": false, "dumb": false, "xterm": true} {
		probe := TTYProbe{Getenv: func(string) string { return term }}
		assert.Equal(t, expected, probe.ColorCapable(tty), "TERM=%q", term)
	}
}
