package colorspace

import "github.com/aalvaropc/chromix/internal/domain"

// RGBToHSV converts c to full-precision HSV. Value is the max channel; black
// has saturation 0.
func RGBToHSV(c domain.RGB) (domain.HSV, error) {
	if err := c.Validate(); err != nil {
		return domain.HSV{}, err
	}

	r, g, b := unit(c)
	maxC := max(r, g, b)
	d := maxC - min(r, g, b)

	out := domain.HSV{V: maxC * 100}
	if maxC == 0 {
		return out, nil
	}
	out.S = d / maxC * 100
	if d != 0 {
		out.H = hue(r, g, b, maxC, d)
	}
	return out, nil
}

// HSVToRGB converts c back to RGB. A finite hue outside [0,360) is taken modulo 360.
func HSVToRGB(c domain.HSV) (domain.RGB, error) {
	c.H = normalizeHue(c.H)
	if err := c.Validate(); err != nil {
		return domain.RGB{}, err
	}

	v, s := c.V/100, c.S/100
	chroma := v * s
	return fromChroma(c.H, chroma, v-chroma), nil
}
