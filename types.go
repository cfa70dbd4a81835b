package synclog

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Severity defines the logging severity level as an unsigned 32-bit integer.
// Higher values indicate more severe messages.
type Severity uint32

// ColorMode controls whether ANSI color escapes are ever considered for console output.
type ColorMode uint8

// Logger serializes leveled records from any number of goroutines to a single sink.
// A Logger must be shared by pointer and never copied.
type Logger struct {
	_ noCopy

	level        atomic.Uint32 // Current threshold; read without the lock on the fast path.
	mu           sync.Mutex    // Guards colorEnabled, threshold writes and all emission.
	sink         *sink         // Fixed for the lifetime of the Logger.
	colorEnabled bool          // Derived from the color mode and the sink kind.
	probe        TerminalProbe // Consulted again by SetColorMode.
	now          func() time.Time
}

// Option defines a functional option for configuring a Logger instance during creation.
type Option func(*config)

// config collects the construction-time settings that Options modify.
type config struct {
	level     Severity
	colorMode ColorMode
	writer    io.Writer
	probe     TerminalProbe
	now       func() time.Time
	fileMode  os.FileMode
	fsync     bool
}

// TerminalProbe reports whether a console destination can render ANSI colors.
// It isolates platform-specific terminal probing from the Logger.
type TerminalProbe interface {
	ColorCapable(w io.Writer) bool
}

// Lazy defers computing a log argument until the record is actually rendered.
// A Lazy passed to a suppressed severity is never called.
type Lazy func() any

// fder is satisfied by *os.File and any other writer backed by a descriptor.
type fder interface {
	Fd() uintptr
}

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
