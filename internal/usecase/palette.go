package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/chromix/internal/app/notation"
	"github.com/aalvaropc/chromix/internal/app/template"
	"github.com/aalvaropc/chromix/internal/colorspace"
	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/ports"
	"github.com/aalvaropc/chromix/internal/usecase/checks"
)

type ValidatePalette struct {
	palettes ports.PaletteLoader
}

func NewValidatePalette(pl ports.PaletteLoader) *ValidatePalette {
	return &ValidatePalette{palettes: pl}
}

// Execute loads the palette at path and re-checks its structural invariants.
func (uc *ValidatePalette) Execute(ctx context.Context, path string) (domain.Palette, error) {
	if err := ctx.Err(); err != nil {
		return domain.Palette{}, err
	}

	p, err := uc.palettes.LoadPalette(path)
	if err != nil {
		return domain.Palette{}, err
	}
	if err := p.Validate(); err != nil {
		return domain.Palette{}, err
	}
	return p, nil
}

type CheckPalette struct {
	settings
	palettes ports.PaletteLoader
}

func NewCheckPalette(pl ports.PaletteLoader, opts ...Option) *CheckPalette {
	return &CheckPalette{settings: newSettings(opts), palettes: pl}
}

// Execute runs the contrast checks declared in the palette. A failed check is a
// result, not an error.
func (uc *CheckPalette) Execute(ctx context.Context, path string) (domain.Palette, []domain.CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.Palette{}, nil, err
	}

	p, err := uc.palettes.LoadPalette(path)
	if err != nil {
		return domain.Palette{}, nil, err
	}

	res := checks.Evaluate(p)
	pass, fail := checks.CountPassFail(res)
	uc.log.Info("palette.checked", "palette", p.Name, "pass", pass, "fail", fail)
	return p, res, nil
}

// DefaultExportTemplate renders one CSS custom property per swatch.
const DefaultExportTemplate = "--{{name}}: {{hex}};"

type ExportPalette struct {
	palettes ports.PaletteLoader
}

func NewExportPalette(pl ports.PaletteLoader) *ExportPalette {
	return &ExportPalette{palettes: pl}
}

// Execute renders tmpl once per swatch and joins the lines with "\n".
// Available variables: name hex r g b rgb hsl hsv cmyk.
func (uc *ExportPalette) Execute(path string, tmpl string) (string, error) {
	p, err := uc.palettes.LoadPalette(path)
	if err != nil {
		return "", err
	}
	return RenderSwatches(p.Swatches, tmpl)
}

// RenderSwatches applies tmpl to every swatch.
func RenderSwatches(swatches []domain.Swatch, tmpl string) (string, error) {
	if strings.TrimSpace(tmpl) == "" {
		tmpl = DefaultExportTemplate
	}

	t, err := template.Parse(tmpl)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(swatches))
	for _, s := range swatches {
		vars, err := SwatchVars(s)
		if err != nil {
			return "", fmt.Errorf("swatch %q: %w", s.Name, err)
		}
		line, err := t.Execute(vars)
		if err != nil {
			return "", fmt.Errorf("swatch %q: %w", s.Name, err)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// SwatchVars exposes a swatch to the export template.
func SwatchVars(s domain.Swatch) (map[string]string, error) {
	rgb, err := colorspace.HexToRGB(string(s.Hex))
	if err != nil {
		return nil, err
	}
	hsl, err := colorspace.RGBToHSL(rgb)
	if err != nil {
		return nil, err
	}
	hsv, err := colorspace.RGBToHSV(rgb)
	if err != nil {
		return nil, err
	}
	cmyk, err := colorspace.RGBToCMYK(rgb)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"name": s.Name,
		"hex":  string(colorspace.RGBToHex(rgb)),
		"r":    strconv.Itoa(rgb.R),
		"g":    strconv.Itoa(rgb.G),
		"b":    strconv.Itoa(rgb.B),
		"rgb":  notation.RGB(rgb),
		"hsl":  notation.HSL(hsl),
		"hsv":  notation.HSV(hsv),
		"cmyk": notation.CMYK(cmyk),
	}, nil
}

// slug turns a display name into a swatch-name prefix.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "shade"
	}
	return out
}
