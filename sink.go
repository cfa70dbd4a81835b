package synclog

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// sink is the single destination of a Logger: either a console stream the
// Logger does not own, or an append-mode file it owns and flushes after
// every record.
type sink struct {
	w      io.Writer
	file   *os.File      // Non-nil only for file sinks.
	buf    *bufio.Writer // Wraps file; flushed after every record.
	fsync  bool
	owned  bool
	closed bool
}

func newConsoleSink(w io.Writer) *sink {
	return &sink{w: w}
}

// openFileSink opens path for appending, creating it with mode if needed.
// Existing contents are never truncated.
func openFileSink(path string, mode os.FileMode, fsync bool) (*sink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenSink, err)
	}
	buf := bufio.NewWriter(f)
	return &sink{w: buf, file: f, buf: buf, fsync: fsync, owned: true}, nil
}

func (s *sink) isFile() bool {
	return s.owned
}

// writeRecord writes one complete line and, for a file sink, flushes it.
// Callers hold the Logger's lock.
func (s *sink) writeRecord(line []byte) error {
	if s.closed {
		return ErrClosed
	}
	if _, err := s.w.Write(line); err != nil {
		s.reset()
		return fmt.Errorf("%w: %w", ErrWriteSink, err)
	}
	if s.buf == nil {
		return nil
	}
	if err := s.buf.Flush(); err != nil {
		s.reset()
		return fmt.Errorf("%w: flush: %w", ErrWriteSink, err)
	}
	if s.fsync {
		if err := s.file.Sync(); err != nil {
			return fmt.Errorf("%w: sync: %w", ErrWriteSink, err)
		}
	}
	return nil
}

// reset discards a partially written record. bufio.Writer stays failed after
// an error, which would otherwise refuse every later record.
func (s *sink) reset() {
	if s.buf != nil {
		s.buf.Reset(s.file)
	}
}

// close releases an owned file. Console streams are left open.
func (s *sink) close() error {
	if !s.owned || s.closed {
		return nil
	}
	s.closed = true
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("%w: close: %w", ErrWriteSink, err)
	}
	return nil
}
