package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/chromix/internal/app/notation"
	"github.com/aalvaropc/chromix/internal/colorspace"
	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/usecase"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// inkFor picks black or white text for a background.
func inkFor(hex domain.HexColor) string {
	rgb, err := colorspace.HexToRGB(string(hex))
	if err != nil {
		return "#ffffff"
	}
	black := colorspace.ContrastRatio(rgb, domain.RGB{})
	white := colorspace.ContrastRatio(rgb, domain.RGB{R: 255, G: 255, B: 255})
	if black >= white {
		return "#000000"
	}
	return "#ffffff"
}

func renderConversion(t Theme, c usecase.Conversion) string {
	var b strings.Builder

	b.WriteString(t.Swatch(string(c.Hex), string(c.Hex), 24, inkFor(c.Hex)))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"HEX", string(c.Hex)},
		{"RGB", notation.RGB(c.RGB)},
		{"HSL", notation.HSL(c.HSL)},
		{"HSV", notation.HSV(c.HSV)},
		{"CMYK", notation.CMYK(c.CMYK)},
		{"Name", nameLabel(c)},
		{"On white", contrastLabel(c.RGB, domain.RGB{R: 255, G: 255, B: 255})},
		{"On black", contrastLabel(c.RGB, domain.RGB{})},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-9s %s\n", r[0], r[1]))
	}
	return b.String()
}

func nameLabel(c usecase.Conversion) string {
	if c.ExactName {
		return c.Name
	}
	return "~" + c.Name
}

func contrastLabel(fg, bg domain.RGB) string {
	return notation.Ratio(colorspace.ContrastRatio(fg, bg))
}

func renderPaletteDetail(t Theme, p domain.Palette, res []domain.CheckResult, maxWidth int) string {
	var b strings.Builder

	b.WriteString(t.Title.Render(p.Name))
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(t.Subtitle.Render(clampString(p.Description, max(maxWidth, 20))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	width := 0
	for _, s := range p.Swatches {
		width = max(width, utf8.RuneCountInString(s.Name))
	}
	for _, s := range p.Swatches {
		b.WriteString(t.Swatch(string(s.Hex), string(s.Hex), 10, inkFor(s.Hex)))
		b.WriteString(fmt.Sprintf("  %s\n", s.Name))
	}

	if len(res) > 0 {
		b.WriteString("\nContrast checks (")
		b.WriteString(checksSummary(res))
		b.WriteString("):\n")
		for _, r := range res {
			mark := t.Pass.Render("PASS")
			if !r.Passed {
				mark = t.Fail.Render("FAIL")
			}
			b.WriteString(fmt.Sprintf("  [%s] %-*s %s\n", mark, width*2+1, r.Name, r.Message))
		}
	}

	return b.String()
}
