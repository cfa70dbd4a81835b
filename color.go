package synclog

import (
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ResolveColor decides whether records written to w carry color escapes.
// File sinks never do. For ColorAuto the decision is delegated to probe;
// a nil probe disables color.
func ResolveColor(mode ColorMode, sinkIsFile bool, probe TerminalProbe, w io.Writer) bool {
	if sinkIsFile {
		return false
	}
	switch mode {
	case ColorAlways:
		return true
	case ColorAuto:
		return probe != nil && probe.ColorCapable(w)
	default:
		return false
	}
}

// EscapeFor returns the ANSI escape sequence that colors the given severity,
// or an empty string for an unknown severity.
func EscapeFor(s Severity) string {
	if !s.Valid() {
		return ""
	}
	return sgr(severityColors[s])
}

// ResetEscape returns the sequence written after each colored field.
func ResetEscape() string {
	return sgr(color.Reset)
}

// sgr builds the sequence directly from the attribute code: color.Color would
// apply its own NoColor and tty checks on top of ResolveColor.
func sgr(attr color.Attribute) string {
	return "\x1b[" + strconv.Itoa(int(attr)) + "m"
}

// TTYProbe is the default TerminalProbe. A destination is color-capable when
// it is backed by an interactive terminal and the terminal type, read from
// the TERM environment variable, is set and is not "dumb".
type TTYProbe struct {
	// Getenv overrides os.Getenv when looking up TERM.
	Getenv func(string) string
}

// ColorCapable implements TerminalProbe. When w is the process's standard output,
// virtual-terminal processing is switched on where the platform requires it;
// if that fails the result is false.
func (p TTYProbe) ColorCapable(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}

	getenv := p.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if term := getenv("TERM"); term == "" || term == "dumb" {
		return false
	}

	if w == io.Writer(os.Stdout) {
		var enabled bool
		colorable.EnableColorsStdout(&enabled)
		return enabled
	}
	return true
}
