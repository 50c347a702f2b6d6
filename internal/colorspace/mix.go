package colorspace

import (
	"iter"
	"math"

	"github.com/aalvaropc/chromix/internal/domain"
)

// DefaultMixWeight mixes two colors in equal parts.
const DefaultMixWeight = 0.5

// Mix blends a and b channel by channel: round(a*weight + b*(1-weight)).
// Rounding is half away from zero, so Mix("#000000", "#ffffff", 0.5) is "#808080".
func Mix(a, b string, weight float64) (domain.HexColor, error) {
	if math.IsNaN(weight) || weight < 0 || weight > 1 {
		return "", domain.InvalidFormat("colorspace.mix", "weight %g outside [0,1]", weight)
	}

	ca, err := HexToRGB(a)
	if err != nil {
		return "", err
	}
	cb, err := HexToRGB(b)
	if err != nil {
		return "", err
	}

	return RGBToHex(mixRGB(ca, cb, weight)), nil
}

// Shades returns steps colors evenly interpolated from start to end, both
// included. Inputs are parsed up front, so the sequence itself cannot fail;
// it is lazy and can be ranged over any number of times.
func Shades(start, end string, steps int) (iter.Seq[domain.HexColor], error) {
	if steps < 2 {
		return nil, domain.InvalidFormat("colorspace.shades", "steps must be >= 2, got %d", steps)
	}

	from, err := HexToRGB(start)
	if err != nil {
		return nil, err
	}
	to, err := HexToRGB(end)
	if err != nil {
		return nil, err
	}

	last := float64(steps - 1)
	return func(yield func(domain.HexColor) bool) {
		for i := 0; i < steps; i++ {
			// weight on the end color; i == 0 is exactly start, i == last exactly end
			if !yield(RGBToHex(mixRGB(to, from, float64(i)/last))) {
				return
			}
		}
	}, nil
}

func mixRGB(a, b domain.RGB, w float64) domain.RGB {
	return domain.RGB{
		R: lerp(a.R, b.R, w),
		G: lerp(a.G, b.G, w),
		B: lerp(a.B, b.B, w),
	}
}

func lerp(a, b int, w float64) int {
	return int(math.Round(float64(a)*w + float64(b)*(1-w)))
}
