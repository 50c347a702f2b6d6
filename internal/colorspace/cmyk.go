package colorspace

import (
	"math"

	"github.com/aalvaropc/chromix/internal/domain"
)

// RGBToCMYK converts c with the naive (profile-free) formula. Pure black
// short-circuits to C=M=Y=0, K=100.
func RGBToCMYK(c domain.RGB) (domain.CMYK, error) {
	if err := c.Validate(); err != nil {
		return domain.CMYK{}, err
	}

	r, g, b := unit(c)
	k := 1 - max(r, g, b)
	if k == 1 {
		return domain.CMYK{K: 100}, nil
	}

	ink := func(ch float64) float64 {
		// float error can leave 1-ch-k a hair below zero
		return math.Max(0, math.Min(100, (1-ch-k)/(1-k)*100))
	}
	return domain.CMYK{C: ink(r), M: ink(g), Y: ink(b), K: k * 100}, nil
}

// CMYKToRGB is the inverse of RGBToCMYK.
func CMYKToRGB(c domain.CMYK) (domain.RGB, error) {
	if err := c.Validate(); err != nil {
		return domain.RGB{}, err
	}

	k := 1 - c.K/100
	ch := func(p float64) int {
		return int(math.Round(255 * (1 - p/100) * k))
	}
	return domain.RGB{R: ch(c.C), G: ch(c.M), B: ch(c.Y)}, nil
}
