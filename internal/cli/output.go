package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/chromix/internal/app/notation"
	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/usecase"
	"github.com/aalvaropc/chromix/internal/usecase/checks"
)

// resolveFormat prefers the flag, then the workspace config.
func resolveFormat(flag string, cfg domain.Config) (string, error) {
	f := strings.ToLower(strings.TrimSpace(flag))
	if f == "" {
		f = cfg.Output.Format
	}
	switch f {
	case "", "pretty":
		return "pretty", nil
	case "json":
		return "json", nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected pretty|json)", flag)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// chip renders a small block filled with hex. On terminals without color
// support lipgloss drops the background and only the padding remains.
func chip(hex domain.HexColor) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(string(hex))).Render("  ")
}

type conversionJSON struct {
	usecase.Conversion
	CSS map[string]string `json:"css"`
}

func printConversion(w io.Writer, c usecase.Conversion, format string) error {
	if format == "json" {
		// Integer degrees and percents, as shown everywhere else.
		out := c
		out.HSL = c.HSL.Rounded()
		out.HSV = c.HSV.Rounded()
		out.CMYK = c.CMYK.Rounded()
		return writeJSON(w, conversionJSON{
			Conversion: out,
			CSS: map[string]string{
				"rgb":  notation.RGB(c.RGB),
				"hsl":  notation.HSL(c.HSL),
				"hsv":  notation.HSV(c.HSV),
				"cmyk": notation.CMYK(c.CMYK),
			},
		})
	}

	name := "~" + c.Name
	if c.ExactName {
		name = c.Name
	}

	fmt.Fprintf(w, "%s %s\n", chip(c.Hex), c.Hex)
	fmt.Fprintf(w, "RGB:       %s\n", notation.RGB(c.RGB))
	fmt.Fprintf(w, "HSL:       %s\n", notation.HSL(c.HSL))
	fmt.Fprintf(w, "HSV:       %s\n", notation.HSV(c.HSV))
	fmt.Fprintf(w, "CMYK:      %s\n", notation.CMYK(c.CMYK))
	fmt.Fprintf(w, "Name:      %s\n", name)
	fmt.Fprintf(w, "Luminance: %s\n", strconv.FormatFloat(c.Luminance, 'f', 4, 64))
	return nil
}

func printArtifact(w io.Writer, art domain.PaletteArtifact, id string, format string) error {
	if format == "json" {
		return writeJSON(w, map[string]any{
			"id":       id,
			"artifact": art,
		})
	}

	for _, s := range art.Swatches {
		fmt.Fprintf(w, "%s %s  %s\n", chip(s.Hex), s.Hex, s.Name)
	}
	if id != "" {
		fmt.Fprintf(w, "\nSaved:     %s\n", id)
	}
	return nil
}

func printChecks(w io.Writer, p domain.Palette, res []domain.CheckResult, format string) error {
	if format == "json" {
		return writeJSON(w, map[string]any{
			"palette": p.Name,
			"checks":  res,
		})
	}

	pass, fail := checks.CountPassFail(res)
	fmt.Fprintf(w, "Palette: %s\n", p.Name)
	fmt.Fprintf(w, "Checks:  %d pass / %d fail\n\n", pass, fail)
	for _, r := range res {
		mark := "✓"
		if !r.Passed {
			mark = "✗"
		}
		fmt.Fprintf(w, "  %s %s: %s\n", mark, r.Name, r.Message)
	}
	return nil
}

type paletteJSON struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Swatches    []domain.Swatch        `json:"swatches"`
	Checks      []domain.ContrastCheck `json:"checks,omitempty"`
}

func printPalette(w io.Writer, p domain.Palette, format string) error {
	if format == "json" {
		return writeJSON(w, paletteJSON{
			Name:        p.Name,
			Description: p.Description,
			Swatches:    p.Swatches,
			Checks:      p.Checks,
		})
	}

	fmt.Fprintf(w, "Palette: %s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(w, "         %s\n", p.Description)
	}
	fmt.Fprintln(w)

	width := 0
	for _, s := range p.Swatches {
		width = max(width, len(s.Name))
	}
	for _, s := range p.Swatches {
		fmt.Fprintf(w, "%s %-*s  %s\n", chip(s.Hex), width, s.Name, s.Hex)
	}
	return nil
}

func printImport(w io.Writer, res usecase.ImportResult, format string) error {
	if format == "json" {
		return writeJSON(w, res)
	}

	if err := printArtifact(w, res.Artifact, res.ID, format); err != nil {
		return err
	}
	if len(res.Issues) > 0 {
		fmt.Fprintf(w, "\nSkipped %d token(s):\n", len(res.Issues))
		for _, is := range res.Issues {
			fmt.Fprintf(w, "  ✗ %s: %s\n", is.Token, is.Message)
		}
	}
	return nil
}

func printExports(w io.Writer, rows []usecase.ExportSummary, format string) error {
	if format == "json" {
		return writeJSON(w, rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(w, "(no exports saved)")
		return nil
	}
	for _, r := range rows {
		if r.Problem != "" {
			fmt.Fprintf(w, "✗ %s  unreadable: %s\n", r.ID, r.Problem)
			continue
		}
		fmt.Fprintf(w, "- %s  %-6s %s (%d swatch(es))\n", r.ID, r.Kind, r.Name, r.Swatches)
	}
	return nil
}
