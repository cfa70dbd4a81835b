package synclog

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ X, Y int }

// TestRender verifies placeholder substitution for every supported placeholder
// form and for arguments whose own text or methods could trip up fmt.
func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{"no placeholders", "Application starting...", nil, "Application starting..."},
		{"single", "Server listening on port {}", []any{8080}, "Server listening on port 8080"},
		{"several", "User '{}' connected from {}", []any{"bob", "192.168.1.100"}, "User 'bob' connected from 192.168.1.100"},
		{"percent is literal", "Memory usage: {}%", []any{90}, "Memory usage: 90%"},
		{"mixed types", "Processed {} of {} items ({}% complete)", []any{150, 200, 75}, "Processed 150 of 200 items (75% complete)"},
		{"manual index", "{1} before {0}", []any{"a", "b"}, "b before a"},
		{"manual index reused", "{0}{0}{0}", []any{"x"}, "xxx"},
		{"escaped braces", "{{}} {{{}}}", []any{1}, "{} {1}"},
		{"precision spec", "{:.2f}", []any{3.14159}, "3.14"},
		{"width spec", "[{:5}]", []any{42}, "[   42]"},
		{"left aligned", "[{:-5}]", []any{42}, "[42   ]"},
		{"hex spec", "{:x}", []any{255}, "ff"},
		{"manual with spec", "{0:q}", []any{"hi"}, `"hi"`},
		{"struct", "{}", []any{point{1, 2}}, "{1 2}"},
		{"error", "failed: {}", []any{errors.New("boom")}, "failed: boom"},
		{"nil pointer in error", "failed: {}", []any{error((*os.PathError)(nil))}, "failed: <nil>"},
		{"nil pointer stringer", "{}", []any{(*countingStringer)(nil)}, "<nil>"},
		{"bad-verb text in argument", "[{:14}]", []any{"%!v(MISSING)"}, "[  %!v(MISSING)]"},
		{"bad-verb text left aligned", "[{:-14}]", []any{"%!d(x)"}, "[%!d(x)        ]"},
		{"bad-verb text with verb", "{:s}", []any{"%!s(int=1)"}, "%!s(int=1)"},
		{"nil", "{}", []any{nil}, "<nil>"},
		{"lazy", "{}", []any{Lazy(func() any { return 7 })}, "7"},
		{"empty", "", nil, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := Render(test.template, test.args...)
			require.NoError(t, err)

			assert.Equal(t, test.expected, out)
		})
	}
}

// TestRenderErrors verifies that templates disagreeing with their arguments
// fail with a FormatError naming the reason.
func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		reason   string
	}{
		{"missing argument", "{} {}", []any{1}, "missing argument 1"},
		{"unused argument", "{}", []any{1, 2}, "argument 1 is never used"},
		{"no placeholder", "static", []any{1}, "argument 0 is never used"},
		{"unterminated", "value {", nil, "unterminated placeholder"},
		{"lone close", "value }", nil, "unmatched '}'"},
		{"bad index", "{a}", []any{1}, `invalid argument index "a"`},
		{"index out of range", "{3}", []any{1}, "missing argument 3"},
		{"auto then manual", "{} {0}", []any{1}, "cannot switch from automatic to manual indexing"},
		{"manual then auto", "{0} {}", []any{1}, "cannot switch from manual to automatic indexing"},
		{"empty spec", "{:}", []any{1}, `invalid format spec ""`},
		{"wrong verb", "{:d}", []any{"text"}, `format spec "d" does not apply to string`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := Render(test.template, test.args...)

			assert.Empty(t, out)
			require.ErrorIs(t, err, ErrFormat)
			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, test.template, fe.Template)
			assert.Equal(t, test.reason, fe.Reason)
		})
	}
}

// TestRenderLazyCalledOnce verifies that a Lazy used by several placeholders
// is computed only once.
func TestRenderLazyCalledOnce(t *testing.T) {
	calls := 0
	lazy := Lazy(func() any {
		calls++
		return "v"
	})

	out, err := Render("{0}-{0}", lazy)

	require.NoError(t, err)
	assert.Equal(t, "v-v", out)
	assert.Equal(t, 1, calls)
}
