// Package checks evaluates WCAG contrast requirements declared by a palette.
package checks

import (
	"fmt"

	"github.com/aalvaropc/chromix/internal/app/notation"
	"github.com/aalvaropc/chromix/internal/colorspace"
	"github.com/aalvaropc/chromix/internal/domain"
)

// Level names the WCAG tier a ratio reaches for normal-size text.
func Level(ratio float64) string {
	switch {
	case ratio >= colorspace.ContrastAAA:
		return "AAA"
	case ratio >= colorspace.ContrastAA:
		return "AA"
	default:
		return "fail"
	}
}

// Pair compares two colors against a minimum ratio.
func Pair(name string, fg, bg domain.HexColor, minRatio float64) domain.CheckResult {
	a, err := colorspace.HexToRGB(string(fg))
	if err != nil {
		return domain.CheckResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("foreground %q: %v", fg, err),
		}
	}
	b, err := colorspace.HexToRGB(string(bg))
	if err != nil {
		return domain.CheckResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("background %q: %v", bg, err),
		}
	}

	ratio := colorspace.ContrastRatio(a, b)
	if ratio >= minRatio {
		return domain.CheckResult{
			Name:    name,
			Passed:  true,
			Ratio:   ratio,
			Message: fmt.Sprintf("%s >= %s (%s)", notation.Ratio(ratio), notation.Ratio(minRatio), Level(ratio)),
		}
	}

	return domain.CheckResult{
		Name:    name,
		Passed:  false,
		Ratio:   ratio,
		Message: fmt.Sprintf("expected >= %s, got %s", notation.Ratio(minRatio), notation.Ratio(ratio)),
	}
}

// Evaluate runs every contrast check declared on p, in declaration order.
// A check naming an unknown swatch fails instead of aborting the rest.
func Evaluate(p domain.Palette) []domain.CheckResult {
	out := make([]domain.CheckResult, 0, len(p.Checks))

	for _, c := range p.Checks {
		fg, ok := p.Lookup(c.Foreground)
		if !ok {
			out = append(out, domain.CheckResult{
				Name:    c.Name(),
				Passed:  false,
				Message: fmt.Sprintf("unknown swatch %q", c.Foreground),
			})
			continue
		}
		bg, ok := p.Lookup(c.Background)
		if !ok {
			out = append(out, domain.CheckResult{
				Name:    c.Name(),
				Passed:  false,
				Message: fmt.Sprintf("unknown swatch %q", c.Background),
			})
			continue
		}

		threshold := c.MinRatio
		if threshold == 0 {
			threshold = colorspace.ContrastAA
		}
		out = append(out, Pair(c.Name(), fg.Hex, bg.Hex, threshold))
	}

	return out
}

// CountPassFail summarizes a result set.
func CountPassFail(in []domain.CheckResult) (pass int, fail int) {
	for _, r := range in {
		if r.Passed {
			pass++
		} else {
			fail++
		}
	}
	return pass, fail
}
