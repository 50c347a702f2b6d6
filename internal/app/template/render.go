// Package template renders the line templates used by palette export.
//
// A template is plain text with {{var}} placeholders. A placeholder may pipe
// its value through filters: {{hex | upper | nohash}}.
package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aalvaropc/chromix/internal/domain"
)

const op = "template.render"

// Filters available inside placeholders.
var filters = map[string]func(string) string{
	"upper":  strings.ToUpper,
	"lower":  strings.ToLower,
	"nohash": func(s string) string { return strings.TrimPrefix(s, "#") },
	"kebab":  kebab,
	"snake":  func(s string) string { return strings.ReplaceAll(kebab(s), "-", "_") },
}

type segment struct {
	text    string
	key     string
	filters []func(string) string
}

// Template is a parsed template, safe to execute many times.
type Template struct {
	segs []segment
}

// Parse checks the placeholder syntax and filter names of input.
func Parse(input string) (*Template, error) {
	t := &Template{}
	rest := input
	for rest != "" {
		start := strings.Index(rest, "{{")
		if start == -1 {
			t.segs = append(t.segs, segment{text: rest})
			break
		}
		if start > 0 {
			t.segs = append(t.segs, segment{text: rest[:start]})
		}
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return nil, invalid(errors.New("unclosed template expression"))
		}

		seg, err := parsePlaceholder(rest[:end])
		if err != nil {
			return nil, err
		}
		t.segs = append(t.segs, seg)
		rest = rest[end+2:]
	}
	return t, nil
}

func parsePlaceholder(expr string) (segment, error) {
	parts := strings.Split(expr, "|")

	key := strings.TrimSpace(parts[0])
	if key == "" {
		return segment{}, invalid(errors.New("empty template expression"))
	}

	seg := segment{key: key}
	for _, p := range parts[1:] {
		name := strings.TrimSpace(p)
		f, ok := filters[name]
		if !ok {
			return segment{}, invalid(fmt.Errorf("unknown filter %q in {{%s}}", name, strings.TrimSpace(expr)))
		}
		seg.filters = append(seg.filters, f)
	}
	return seg, nil
}

// Execute substitutes vars. A placeholder without a value is an error.
func (t *Template) Execute(vars map[string]string) (string, error) {
	var out strings.Builder
	for _, s := range t.segs {
		if s.key == "" {
			out.WriteString(s.text)
			continue
		}

		v, ok := vars[s.key]
		if !ok {
			return "", &domain.OpError{
				Op:   op,
				Kind: domain.KindMissingVar,
				Err:  fmt.Errorf("%w: %s", domain.ErrMissingVar, s.key),
			}
		}
		for _, f := range s.filters {
			v = f(v)
		}
		out.WriteString(v)
	}
	return out.String(), nil
}

// RenderString parses and executes input in one step.
func RenderString(input string, vars map[string]string) (string, error) {
	t, err := Parse(input)
	if err != nil {
		return "", err
	}
	return t.Execute(vars)
}

func invalid(err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: err}
}

func kebab(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
