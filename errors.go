package synclog

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sink errors are returned by constructors and logging calls.
var (
	// ErrOpenSink indicates the file sink could not be opened.
	ErrOpenSink = errors.New("synclog: cannot open log file")

	// ErrWriteSink indicates the sink rejected a write or a flush.
	ErrWriteSink = errors.New("synclog: cannot write record")

	// ErrClosed is returned when a record reaches a file sink after Close.
	ErrClosed = errors.New("synclog: logger is closed")
)

// Parse errors are returned when configuration values are not recognized.
var (
	ErrInvalidSeverity  = errors.New("synclog: invalid severity")
	ErrInvalidColorMode = errors.New("synclog: invalid color mode")
)

// ErrFormat is matched by every FormatError.
var ErrFormat = errors.New("synclog: malformed template")

// FormatError describes a template that does not agree with its arguments.
// Logging calls panic with a *FormatError, since the mismatch is a defect
// at the call site.
type FormatError struct {
	Template string
	Offset   int // Byte offset in Template, or -1 for argument count problems.
	Reason   string
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%v: %s in %q", ErrFormat, e.Reason, e.Template)
	}
	return fmt.Sprintf("%v: %s at offset %d in %q", ErrFormat, e.Reason, e.Offset, e.Template)
}

// Is reports a match against ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
