// Package synclog provides a minimal, embeddable synchronous logger that
// serializes leveled, templated records from concurrent goroutines to a single
// console or file sink.
//
// Key features:
//   - Six severity levels (Trace, Debug, Info, Warn, Error, Fatal) with a mutable threshold
//   - Records below the threshold are rejected without locking or formatting
//   - "{}" positional templates rendered only for records that are written
//   - Optional ANSI coloring of the level field on interactive terminals
//   - Append-only file sinks flushed after every record, never colored
//
// Every record is one line:
//
//	[2006-01-02 15:04:05.000] [INFO] message
package synclog

import (
	"io"
	"os"
	"strings"
	"time"
)

// NewConsole creates a Logger writing to standard output, which it never closes.
// Unless overridden, the threshold is INFO and the color mode is ColorAuto.
//
// Example:
//
//	logger := NewConsole(WithLevel(WarnIssuer), WithColorMode(ColorNever))
func NewConsole(opts ...Option) *Logger {
	cfg := newConfig(opts)
	w := cfg.writer
	if w == nil {
		w = os.Stdout
	}
	return newLogger(newConsoleSink(w), cfg)
}

// NewFile creates a Logger appending to the file at path, creating it if needed.
// Existing contents are never truncated, and the Logger owns the file until Close.
//
// Parameters:
//   - path: the log file; its parent directory must already exist.
//   - opts: functional options (e.g., WithLevel, WithFsync). The threshold defaults
//     to INFO. Color is always disabled, whatever WithColorMode requests.
//
// Returns:
//   - the Logger, or nil and an error matching ErrOpenSink (and the underlying
//     *os.PathError) if the file cannot be opened.
//
// Example:
//
//	logger, err := NewFile("app.log", WithLevel(DebugIssuer))
//	if err != nil {
//		return err
//	}
//	defer logger.Close()
func NewFile(path string, opts ...Option) (*Logger, error) {
	cfg := newConfig(opts)
	s, err := openFileSink(path, cfg.fileMode, cfg.fsync)
	if err != nil {
		return nil, err
	}
	return newLogger(s, cfg), nil
}

func newConfig(opts []Option) *config {
	cfg := &config{
		level:     InfoIssuer,
		colorMode: ColorAuto,
		probe:     TTYProbe{},
		now:       time.Now,
		fileMode:  DefaultFileMode,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func newLogger(s *sink, cfg *config) *Logger {
	l := &Logger{
		sink:  s,
		probe: cfg.probe,
		now:   cfg.now,
	}
	l.level.Store(uint32(cfg.level))
	l.colorEnabled = ResolveColor(cfg.colorMode, s.isFile(), l.probe, s.w)
	return l
}

// WithLevel returns an Option that sets the initial threshold.
func WithLevel(level Severity) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithColorMode returns an Option that sets the initial color mode.
// It has no effect on file loggers.
func WithColorMode(mode ColorMode) Option {
	return func(c *config) {
		c.colorMode = mode
	}
}

// WithWriter returns an Option that replaces standard output as the console
// stream. The Logger does not take ownership of w. Ignored by NewFile.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}

// WithProbe returns an Option that replaces the terminal probe used by ColorAuto.
func WithProbe(p TerminalProbe) Option {
	return func(c *config) {
		c.probe = p
	}
}

// WithClock returns an Option that replaces time.Now as the source of record timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithFileMode returns an Option that sets the permissions of a log file NewFile creates.
func WithFileMode(mode os.FileMode) Option {
	return func(c *config) {
		c.fileMode = mode
	}
}

// WithFsync returns an Option that makes file loggers fsync after flushing each record.
func WithFsync(enabled bool) Option {
	return func(c *config) {
		c.fsync = enabled
	}
}

// SetLevel changes the Logger's minimum severity at runtime. Only records at or
// above the new level are written by calls made after SetLevel returns.
//
// Parameters:
//   - level: the new threshold. Values above FatalIssuer suppress every record.
//
// A call that already passed the threshold check may still be written after
// SetLevel raises the threshold: the check is a best-effort filter and is not
// atomic with the write that follows it.
func (l *Logger) SetLevel(level Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level.Store(uint32(level))
}

// Level returns the current threshold.
func (l *Logger) Level() Severity {
	return Severity(l.level.Load())
}

// SetColorMode recomputes whether records are colored. File loggers stay uncolored.
func (l *Logger) SetColorMode(mode ColorMode) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.colorEnabled = ResolveColor(mode, l.sink.isFile(), l.probe, l.sink.w)
}

// ColorEnabled reports whether records are currently colored.
func (l *Logger) ColorEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.colorEnabled
}

// Enabled reports whether a record at level would pass the current threshold.
func (l *Logger) Enabled(level Severity) bool {
	return Rank(level) >= Rank(Severity(l.level.Load()))
}

// Log is the core function that writes a record to the Logger's sink if level is
// at or above the current threshold.
//
// Below the threshold Log returns nil immediately: no lock is taken, no timestamp
// is computed and args are never stringified. Otherwise the template is rendered
// with args (see Render) and the line is written in one operation under the
// Logger's lock, then flushed if the sink is a file.
//
// Parameters:
//   - level: the Severity of the record.
//   - template: the message, with "{}" placeholders substituted left to right.
//   - args: one value per placeholder; every value must be used.
//
// Returns:
//   - nil if the record was written or suppressed.
//   - an error matching ErrWriteSink if the sink rejected the write or the flush,
//     or ErrClosed if a file Logger was already closed.
//
// Panics:
//   - with a *FormatError, writing nothing, if template does not agree with args.
func (l *Logger) Log(level Severity, template string, args ...any) error {
	if !l.Enabled(level) {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg, err := Render(template, args...)
	if err != nil {
		panic(err)
	}

	name := level.String()
	var b strings.Builder
	b.Grow(len(TimestampLayout) + len(name) + len(msg) + 24)

	b.WriteByte('[')
	b.WriteString(FormatTimestamp(l.now()))
	b.WriteString("] ")
	escape := ""
	if l.colorEnabled {
		escape = EscapeFor(level)
	}
	b.WriteString(escape)
	b.WriteByte('[')
	b.WriteString(name)
	b.WriteByte(']')
	if escape != "" {
		b.WriteString(ResetEscape())
	}
	b.WriteByte(' ')
	b.WriteString(msg)
	b.WriteByte('\n')

	return l.sink.writeRecord([]byte(b.String()))
}

// Trace logs a trace-level record.
//
// Example:
//
//	logger.Trace("entering {}", "handler")
func (l *Logger) Trace(template string, args ...any) error {
	return l.Log(TraceIssuer, template, args...)
}

// Debug logs a debug-level record.
func (l *Logger) Debug(template string, args ...any) error {
	return l.Log(DebugIssuer, template, args...)
}

// Info logs an informational record.
//
// Example:
//
//	logger.Info("Server listening on port {}", 8080)
func (l *Logger) Info(template string, args ...any) error {
	return l.Log(InfoIssuer, template, args...)
}

// Warn logs a warning record.
func (l *Logger) Warn(template string, args ...any) error {
	return l.Log(WarnIssuer, template, args...)
}

// Error logs an error record.
func (l *Logger) Error(template string, args ...any) error {
	return l.Log(ErrorIssuer, template, args...)
}

// Fatal logs a fatal record. Unlike log.Fatal it does not exit; terminating
// the process is left to the caller.
func (l *Logger) Fatal(template string, args ...any) error {
	return l.Log(FatalIssuer, template, args...)
}

// Close releases the log file of a file Logger. Records logged afterwards fail
// with ErrClosed. Closing a console Logger does nothing and leaves the stream open.
// Close may be called more than once.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sink.close()
}
