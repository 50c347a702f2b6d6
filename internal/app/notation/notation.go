// Package notation formats color values the way CSS and design tools write them.
package notation

import (
	"fmt"
	"strconv"

	"github.com/aalvaropc/chromix/internal/domain"
)

func RGB(c domain.RGB) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL uses the rounded form: integer degrees and percentages.
func HSL(c domain.HSL) string {
	r := c.Rounded()
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", num(r.H), num(r.S), num(r.L))
}

func HSV(c domain.HSV) string {
	r := c.Rounded()
	return fmt.Sprintf("hsv(%s, %s%%, %s%%)", num(r.H), num(r.S), num(r.V))
}

func CMYK(c domain.CMYK) string {
	r := c.Rounded()
	return fmt.Sprintf("cmyk(%s%%, %s%%, %s%%, %s%%)", num(r.C), num(r.M), num(r.Y), num(r.K))
}

// Ratio prints a contrast ratio the way WCAG tools do, e.g. "4.54:1".
func Ratio(r float64) string {
	return strconv.FormatFloat(r, 'f', 2, 64) + ":1"
}

// num prints an already-rounded value without a trailing ".0" or a negative zero.
func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
