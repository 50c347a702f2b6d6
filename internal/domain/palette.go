package domain

import (
	"fmt"
	"strings"
	"time"
)

// Swatch is a named color inside a palette.
type Swatch struct {
	Name string   `json:"name"`
	Hex  HexColor `json:"hex"`
}

// ContrastCheck declares a minimum WCAG contrast ratio between two swatches.
type ContrastCheck struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	MinRatio   float64 `json:"min_ratio"`
}

// Name identifies the check in reports.
func (c ContrastCheck) Name() string {
	return c.Foreground + "/" + c.Background
}

// Palette is an ordered set of swatches plus optional contrast checks.
type Palette struct {
	Name        string
	Description string
	Swatches    []Swatch
	Checks      []ContrastCheck
}

// PaletteRef points at a palette file without loading its swatches.
type PaletteRef struct {
	Name string
	Path string
}

// Lookup returns the swatch with the given name (case-insensitive).
func (p Palette) Lookup(name string) (Swatch, bool) {
	for _, s := range p.Swatches {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Swatch{}, false
}

// Validate checks structural invariants. Swatch colors must already be in
// canonical "#rrggbb" form; loaders normalize user input before building a Palette.
func (p Palette) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalidPalette("name", "palette name is required")
	}

	seen := map[string]bool{}
	for i, s := range p.Swatches {
		field := fmt.Sprintf("swatches[%d]", i)
		key := strings.ToLower(strings.TrimSpace(s.Name))
		if key == "" {
			return invalidPalette(field+".name", "swatch name is required")
		}
		if seen[key] {
			return invalidPalette(field+".name", fmt.Sprintf("duplicate swatch name %q", s.Name))
		}
		seen[key] = true

		if !s.Hex.Canonical() {
			return invalidPalette(field+".hex", fmt.Sprintf("color %q is not in #rrggbb form", s.Hex))
		}
	}

	for i, c := range p.Checks {
		field := fmt.Sprintf("checks[%d]", i)
		if !seen[strings.ToLower(c.Foreground)] {
			return invalidPalette(field+".foreground", fmt.Sprintf("unknown swatch %q", c.Foreground))
		}
		if !seen[strings.ToLower(c.Background)] {
			return invalidPalette(field+".background", fmt.Sprintf("unknown swatch %q", c.Background))
		}
		if c.MinRatio < 1 || c.MinRatio > 21 {
			return invalidPalette(field+".min_ratio", fmt.Sprintf("ratio %g outside [1,21]", c.MinRatio))
		}
	}

	return nil
}

// Canonical reports whether h is exactly '#' followed by six lowercase hex digits.
func (h HexColor) Canonical() bool {
	s := string(h)
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}

func invalidPalette(field, msg string) error {
	return &OpError{
		Op:   "palette.validate",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}

// CheckResult is the outcome of a single contrast check.
type CheckResult struct {
	Name    string  `json:"name"`
	Passed  bool    `json:"passed"`
	Ratio   float64 `json:"ratio"`
	Message string  `json:"message"`
}

// ArtifactKind says which operation produced a stored palette.
type ArtifactKind string

const (
	ArtifactShades ArtifactKind = "shades"
	ArtifactMix    ArtifactKind = "mix"
	ArtifactImport ArtifactKind = "import"
)

// PaletteArtifact is a generated palette persisted under the exports dir.
type PaletteArtifact struct {
	ID        string       `json:"id,omitempty"`
	Kind      ArtifactKind `json:"kind"`
	Name      string       `json:"name"`
	Source    string       `json:"source,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	Swatches  []Swatch     `json:"swatches"`
}
