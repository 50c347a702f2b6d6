package colorspace

import (
	"math"

	"github.com/aalvaropc/chromix/internal/domain"
)

// RGBToHSL converts c to full-precision HSL. Grays (max == min) get hue 0 and
// saturation 0. Use HSL.Rounded for the integer display form.
func RGBToHSL(c domain.RGB) (domain.HSL, error) {
	if err := c.Validate(); err != nil {
		return domain.HSL{}, err
	}

	r, g, b := unit(c)
	maxC := max(r, g, b)
	minC := min(r, g, b)
	l := (maxC + minC) / 2

	if maxC == minC {
		return domain.HSL{H: 0, S: 0, L: l * 100}, nil
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	return domain.HSL{H: hue(r, g, b, maxC, d), S: s * 100, L: l * 100}, nil
}

// HSLToRGB converts c back to RGB. A finite hue outside [0,360) is taken modulo 360.
func HSLToRGB(c domain.HSL) (domain.RGB, error) {
	c.H = normalizeHue(c.H)
	if err := c.Validate(); err != nil {
		return domain.RGB{}, err
	}

	s, l := c.S/100, c.L/100
	if s == 0 {
		v := toByte(l)
		return domain.RGB{R: v, G: v, B: v}, nil
	}

	chroma := (1 - math.Abs(2*l-1)) * s
	return fromChroma(c.H, chroma, l-chroma/2), nil
}

// hue picks the sector from the channel holding the max, checking R, then G, then B.
func hue(r, g, b, maxC, d float64) float64 {
	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	h *= 60
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}

func fromChroma(h, chroma, m float64) domain.RGB {
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return domain.RGB{R: toByte(r + m), G: toByte(g + m), B: toByte(b + m)}
}

func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return h
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func unit(c domain.RGB) (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

func toByte(v float64) int {
	n := int(math.Round(v * 255))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
