package synclog

import (
	"strings"

	"github.com/pkg/errors"
)

// Rank returns the stable ascending index of a severity used for filtering.
func Rank(s Severity) int {
	return int(s)
}

// String returns the canonical display name of the severity, or "UNKNOWN"
// for a value outside the defined range.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return unknownName
}

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool {
	return int(s) < len(severityNames)
}

// Set parses value into s. Together with String and Type it lets a Severity
// be bound to a command-line flag.
func (s *Severity) Set(value string) error {
	parsed, err := ParseSeverity(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type names the flag value type.
func (s *Severity) Type() string {
	return "severity"
}

// Severities returns every defined severity in ascending order.
func Severities() []Severity {
	out := make([]Severity, len(severityNames))
	for i := range severityNames {
		out[i] = Severity(i)
	}
	return out
}

// ParseSeverity parses a severity name (case-insensitive).
// "warning" is accepted as an alias of WARN.
func ParseSeverity(name string) (Severity, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "WARNING" {
		return WarnIssuer, nil
	}
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidSeverity, "%q", name)
}

// String returns the lower-case name of the color mode, or "UNKNOWN".
func (m ColorMode) String() string {
	if int(m) < len(colorModeNames) {
		return colorModeNames[m]
	}
	return unknownName
}

// Set parses value into m.
func (m *ColorMode) Set(value string) error {
	parsed, err := ParseColorMode(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type names the flag value type.
func (m *ColorMode) Type() string {
	return "color-mode"
}

// ParseColorMode parses "auto", "always" or "never" (case-insensitive).
func ParseColorMode(name string) (ColorMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorModeNames {
		if n == name {
			return ColorMode(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidColorMode, "%q", name)
}
