package synclog

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Render substitutes args into the placeholders of template.
//
// Supported placeholders:
//   - {} takes the next argument, left to right
//   - {N} takes argument N (zero based); cannot be mixed with {}
//   - {:spec} and {N:spec} format the argument with the fmt verb %spec,
//     or %specv when spec does not end in a letter (e.g. {:.2f}, {:5}, {:x})
//   - {{ and }} produce literal braces
//
// Every argument must be consumed. A Lazy argument is called at most once,
// and only from here.
func Render(template string, args ...any) (string, error) {
	var b strings.Builder
	b.Grow(len(template) + 16*len(args))

	r := renderer{template: template, args: args, used: make([]bool, len(args))}
	if err := r.render(&b); err != nil {
		return "", err
	}
	for i, used := range r.used {
		if !used {
			return "", r.fail(-1, "argument "+strconv.Itoa(i)+" is never used")
		}
	}
	return b.String(), nil
}

type renderer struct {
	template string
	args     []any
	used     []bool
	next     int
	auto     bool
	manual   bool
	lazy     map[int]any
}

func (r *renderer) render(b *strings.Builder) error {
	t := r.template
	for i := 0; i < len(t); i++ {
		c := t[i]
		switch c {
		case '{':
			if i+1 < len(t) && t[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(t[i+1:], '}')
			if end < 0 {
				return r.fail(i, "unterminated placeholder")
			}
			if err := r.field(b, i, t[i+1:i+1+end]); err != nil {
				return err
			}
			i += end + 1
		case '}':
			if i+1 < len(t) && t[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return r.fail(i, "unmatched '}'")
		default:
			b.WriteByte(c)
		}
	}
	return nil
}

// field writes a single placeholder whose body (the text between the braces)
// starts at offset.
func (r *renderer) field(b *strings.Builder, offset int, body string) error {
	index, spec, hasSpec := strings.Cut(body, ":")

	var n int
	if index == "" {
		if r.manual {
			return r.fail(offset, "cannot switch from manual to automatic indexing")
		}
		r.auto = true
		n = r.next
		r.next++
	} else {
		if r.auto {
			return r.fail(offset, "cannot switch from automatic to manual indexing")
		}
		r.manual = true
		v, err := strconv.Atoi(index)
		if err != nil || v < 0 {
			return r.fail(offset, "invalid argument index "+strconv.Quote(index))
		}
		n = v
	}
	if n >= len(r.args) {
		return r.fail(offset, "missing argument "+strconv.Itoa(n))
	}
	r.used[n] = true

	arg := r.value(n)
	if !hasSpec {
		writeArg(b, arg)
		return nil
	}
	if spec == "" || strings.ContainsAny(spec, "%{") {
		return r.fail(offset, "invalid format spec "+strconv.Quote(spec))
	}
	verb := "%" + spec
	if last := spec[len(spec)-1]; !isLetter(last) {
		verb += "v"
	}
	if !verbFits(verb, arg) {
		return r.fail(offset, fmt.Sprintf("format spec %q does not apply to %T", spec, arg))
	}
	fmt.Fprintf(b, verb, arg)
	return nil
}

// verbFits reports whether verb applies to values of arg's dynamic type.
// It formats the zero value of that type, never arg itself, so text the
// argument produces cannot pass for fmt's "%!x(" bad-verb marker.
func verbFits(verb string, arg any) bool {
	sample := arg
	if arg != nil {
		sample = reflect.Zero(reflect.TypeOf(arg)).Interface()
	}
	return !strings.HasPrefix(fmt.Sprintf(verb, sample), "%!"+verb[len(verb)-1:]+"(")
}

// value returns argument n, resolving a Lazy exactly once.
func (r *renderer) value(n int) any {
	lz, ok := r.args[n].(Lazy)
	if !ok {
		return r.args[n]
	}
	if v, ok := r.lazy[n]; ok {
		return v
	}
	if r.lazy == nil {
		r.lazy = make(map[int]any)
	}
	v := lz()
	r.lazy[n] = v
	return v
}

func (r *renderer) fail(offset int, reason string) error {
	return &FormatError{Template: r.template, Offset: offset, Reason: reason}
}

// writeArg leaves everything but plain strings to fmt, which recovers from
// panicking Error and String methods, including those on nil receivers.
func writeArg(b *strings.Builder, arg any) {
	if s, ok := arg.(string); ok {
		b.WriteString(s)
		return
	}
	fmt.Fprint(b, arg)
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
