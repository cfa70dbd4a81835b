package synclog

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestFormatTimestamp verifies zero-padded, truncated milliseconds.
func TestFormatTimestamp(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 7*int(time.Millisecond)+999, time.Local)

	assert.Equal(t, "2026-01-02 03:04:05.007", FormatTimestamp(at))
}

// TestTimestampConcurrent verifies the timestamp layout under concurrent calls.
func TestTimestampConcurrent(t *testing.T) {
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}$`)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Timestamp()
		}()
	}
	wg.Wait()

	for _, ts := range results {
		assert.Regexp(t, re, ts)
	}
}
