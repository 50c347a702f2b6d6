package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/chromix/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a one-line message fit for the status bar.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "palettefile") {
				return "Palette not found"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidFormat:
			return "Invalid color"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid " + syntaxName(base) + " at " + base + " line " + line
			}

			if looksLikeSyntaxProblem(err.Error()) {
				return "Invalid " + syntaxName(base) + " at " + base
			}
			if field := extractField(err.Error()); field != "" {
				return "Invalid " + field + " in " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeSyntaxProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid file at line " + line
		}
		return "Invalid file"
	}

	return "Unexpected error (see logs)"
}

func syntaxName(file string) string {
	if strings.EqualFold(filepath.Ext(file), ".toml") {
		return "TOML"
	}
	return "YAML"
}

func looksLikeSyntaxProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") ||
		strings.Contains(ls, "toml:") ||
		strings.Contains(ls, "did not find expected") ||
		strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

// extractField pulls "swatches[2].color" out of "... field swatches[2].color: ...".
func extractField(s string) string {
	i := strings.LastIndex(s, "field ")
	if i < 0 {
		return ""
	}
	rest := s[i+len("field "):]
	if j := strings.IndexAny(rest, ": "); j >= 0 {
		rest = rest[:j]
	}
	return strings.TrimSpace(rest)
}
