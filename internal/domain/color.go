package domain

import "math"

// HexColor is a canonical "#rrggbb" string: a leading '#', exactly six
// lowercase hex digits. Use colorspace.ParseHex to build one from user input.
type HexColor string

func (h HexColor) String() string { return string(h) }

// RGB is an additive 8-bit color. It is the pivot representation every other
// encoding converts through.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Validate reports channels outside [0,255].
func (c RGB) Validate() error {
	for _, ch := range []struct {
		name string
		v    int
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}} {
		if ch.v < 0 || ch.v > 255 {
			return InvalidFormat("rgb.validate", "channel %s=%d outside [0,255]", ch.name, ch.v)
		}
	}
	return nil
}

// Clamp forces every channel into [0,255].
func (c RGB) Clamp() RGB {
	return RGB{R: clampInt(c.R, 0, 255), G: clampInt(c.G, 0, 255), B: clampInt(c.B, 0, 255)}
}

// HSL is hue in degrees [0,360), saturation and lightness in percent [0,100].
// Values keep full precision; Rounded gives the integer display form.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

func (c HSL) Validate() error {
	if err := validateHue("hsl.validate", c.H); err != nil {
		return err
	}
	if err := validatePercent("hsl.validate", "s", c.S); err != nil {
		return err
	}
	return validatePercent("hsl.validate", "l", c.L)
}

// Rounded returns the color with hue rounded to the nearest degree and the
// percentages rounded to the nearest integer. A hue that rounds to 360 wraps to 0.
func (c HSL) Rounded() HSL {
	return HSL{H: roundHue(c.H), S: math.Round(c.S), L: math.Round(c.L)}
}

// HSV (also known as HSB) is hue in degrees [0,360), saturation and value in percent.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

func (c HSV) Validate() error {
	if err := validateHue("hsv.validate", c.H); err != nil {
		return err
	}
	if err := validatePercent("hsv.validate", "s", c.S); err != nil {
		return err
	}
	return validatePercent("hsv.validate", "v", c.V)
}

func (c HSV) Rounded() HSV {
	return HSV{H: roundHue(c.H), S: math.Round(c.S), V: math.Round(c.V)}
}

// CMYK is a subtractive color with every component in percent [0,100].
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

func (c CMYK) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{{"c", c.C}, {"m", c.M}, {"y", c.Y}, {"k", c.K}} {
		if err := validatePercent("cmyk.validate", p.name, p.v); err != nil {
			return err
		}
	}
	return nil
}

func (c CMYK) Rounded() CMYK {
	return CMYK{C: math.Round(c.C), M: math.Round(c.M), Y: math.Round(c.Y), K: math.Round(c.K)}
}

func validateHue(op string, h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return InvalidFormat(op, "hue is not a finite number")
	}
	if h < 0 || h >= 360 {
		return InvalidFormat(op, "hue %g outside [0,360)", h)
	}
	return nil
}

func validatePercent(op, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return InvalidFormat(op, "%s is not a finite number", name)
	}
	if v < 0 || v > 100 {
		return InvalidFormat(op, "%s=%g outside [0,100]", name, v)
	}
	return nil
}

func roundHue(h float64) float64 {
	r := math.Round(h)
	if r >= 360 {
		r -= 360
	}
	return r
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
