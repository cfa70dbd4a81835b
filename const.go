package synclog

import "github.com/fatih/color"

// Predefined severity levels for logging, in ascending order.
const (
	// TraceIssuer represents fine-grained tracing of execution paths
	TraceIssuer Severity = iota

	// DebugIssuer represents debug-level messages for development diagnostics
	DebugIssuer

	// InfoIssuer indicates normal operational messages for tracking progress
	InfoIssuer

	// WarnIssuer signifies potential issues that don't disrupt core functionality
	WarnIssuer

	// ErrorIssuer denotes failures in specific operations or components
	ErrorIssuer

	// FatalIssuer represents critical errors the application cannot recover from.
	// Logging at this level does not terminate the process.
	FatalIssuer
)

// Color modes accepted by WithColorMode and Logger.SetColorMode.
const (
	// ColorAuto enables color only when the console is an interactive,
	// color-capable terminal.
	ColorAuto ColorMode = iota

	// ColorAlways enables color on console sinks unconditionally.
	ColorAlways

	// ColorNever disables color.
	ColorNever
)

const (
	// TimestampLayout is the layout of the timestamp field of every record.
	TimestampLayout = "2006-01-02 15:04:05.000"

	// DefaultFileMode is the permission used when a file sink has to be created.
	DefaultFileMode = 0o644

	// unknownName is reported for values outside the defined enumerations.
	unknownName = "UNKNOWN"
)

var severityNames = [...]string{
	TraceIssuer: "TRACE",
	DebugIssuer: "DEBUG",
	InfoIssuer:  "INFO",
	WarnIssuer:  "WARN",
	ErrorIssuer: "ERROR",
	FatalIssuer: "FATAL",
}

// Colors increase in intensity with severity.
var severityColors = [...]color.Attribute{
	TraceIssuer: color.FgHiBlack,
	DebugIssuer: color.FgCyan,
	InfoIssuer:  color.FgGreen,
	WarnIssuer:  color.FgYellow,
	ErrorIssuer: color.FgRed,
	FatalIssuer: color.FgHiRed,
}

var colorModeNames = [...]string{
	ColorAuto:   "auto",
	ColorAlways: "always",
	ColorNever:  "never",
}
