package colorspace

import (
	"math"

	"github.com/aalvaropc/chromix/internal/domain"
)

// WCAG 2.x thresholds for normal-size text.
const (
	ContrastAA  = 4.5
	ContrastAAA = 7.0
)

// RelativeLuminance returns the WCAG relative luminance of c in [0,1].
func RelativeLuminance(c domain.RGB) float64 {
	c = c.Clamp()
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between a and b, in [1,21].
// The order of the arguments does not matter.
func ContrastRatio(a, b domain.RGB) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func linearize(v int) float64 {
	s := float64(v) / 255
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}
