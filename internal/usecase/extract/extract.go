// Package extract pulls color tokens out of design-token JSON documents using
// JSONPath.
package extract

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/chromix/internal/domain"
)

// Token is a string leaf found under the selected node. Name is the dotted
// key path relative to that node.
type Token struct {
	Name  string
	Value string
}

// Skip records a leaf that cannot be a color (number, bool, null, non-color $type).
type Skip struct {
	Name   string
	Reason string
}

// Apply evaluates expr against body and flattens the result into tokens.
//
// Both plain nested objects ({"brand": {"primary": "#f00"}}) and the design
// tokens community format ({"primary": {"$value": "#f00", "$type": "color"}})
// are understood. Output order is stable: object keys are visited sorted.
func Apply(body []byte, expr string) ([]Token, []Skip, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		expr = "$"
	}

	doc, err := parseJSON(body)
	if err != nil {
		return nil, nil, &domain.OpError{
			Op:   "extract.parse",
			Kind: domain.KindInvalidFormat,
			Err:  fmt.Errorf("%w: document is not valid JSON: %v", domain.ErrInvalidFormat, err),
		}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		kind := domain.KindInvalidConfig
		if strings.Contains(err.Error(), "unknown key") {
			kind = domain.KindNotFound
		}
		return nil, nil, &domain.OpError{
			Op:   "extract.jsonpath",
			Kind: kind,
			Err:  fmt.Errorf("jsonpath %q: %w", expr, err),
		}
	}
	if isEmptyValue(val) {
		return nil, nil, &domain.OpError{
			Op:   "extract.jsonpath",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("jsonpath %q: no value found", expr),
		}
	}

	w := &walker{}
	w.walk(rootName(expr, val), val)
	return w.tokens, w.skips, nil
}

type walker struct {
	tokens []Token
	skips  []Skip
}

func (w *walker) walk(name string, v any) {
	switch t := v.(type) {
	case string:
		w.tokens = append(w.tokens, Token{Name: name, Value: t})

	case map[string]any:
		if raw, ok := tokenValue(t); ok {
			if typ, _ := t["$type"].(string); typ != "" && typ != "color" {
				w.skips = append(w.skips, Skip{Name: name, Reason: fmt.Sprintf("$type %q is not color", typ)})
				return
			}
			w.walk(name, raw)
			return
		}

		keys := make([]string, 0, len(t))
		for k := range t {
			if strings.HasPrefix(k, "$") {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			w.walk(join(name, k), t[k])
		}

	case []any:
		// A single match is what most path expressions produce; unwrap it.
		if len(t) == 1 {
			w.walk(name, t[0])
			return
		}
		for i, item := range t {
			w.walk(join(name, strconv.Itoa(i+1)), item)
		}

	case nil:
		w.skips = append(w.skips, Skip{Name: name, Reason: "value is null"})

	default:
		w.skips = append(w.skips, Skip{Name: name, Reason: fmt.Sprintf("value %v is not a string", t)})
	}
}

// tokenValue returns the "$value" (or legacy "value") member of a token object.
func tokenValue(m map[string]any) (any, bool) {
	if v, ok := m["$value"]; ok {
		return v, true
	}
	if v, ok := m["value"]; ok {
		if _, nested := v.(map[string]any); !nested {
			return v, true
		}
	}
	return nil, false
}

// rootName names a scalar match after the last key in expr, so "$.brand.primary"
// yields a token called "primary". Container matches start unnamed.
func rootName(expr string, val any) string {
	switch t := val.(type) {
	case map[string]any:
		if _, ok := tokenValue(t); !ok {
			return ""
		}
	case []any:
		if len(t) != 1 {
			return ""
		}
	}

	s := strings.TrimPrefix(expr, "$")
	s = strings.TrimRight(s, "]'\"")
	if i := strings.LastIndexAny(s, ".['\""); i >= 0 {
		s = s[i+1:]
	}
	if s == "" || s == "*" {
		return "value"
	}
	return s
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
