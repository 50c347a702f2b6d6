package colorspace

import (
	"math"
	"strconv"
	"strings"

	"github.com/aalvaropc/chromix/internal/domain"
)

// Parse reads a color in any notation chromix understands:
//
//	#ff8800, ff8800, #f80
//	rgb(255, 136, 0)
//	hsl(32deg, 100%, 50%)
//	hsv(32, 100%, 100%)   (hsb is accepted as an alias)
//	cmyk(0%, 47%, 100%, 0%)
//	coral                 (CSS named colors)
//
// Arguments may be separated by commas or whitespace.
func Parse(s string) (domain.RGB, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return domain.RGB{}, domain.InvalidFormat("colorspace.parse", "empty color")
	}

	if open := strings.IndexByte(in, '('); open > 0 {
		if !strings.HasSuffix(in, ")") {
			return domain.RGB{}, domain.InvalidFormat("colorspace.parse", "%q: missing closing parenthesis", s)
		}
		fn := strings.TrimSpace(in[:open])
		args := splitArgs(in[open+1 : len(in)-1])

		switch fn {
		case "rgb":
			return parseRGBArgs(s, args)
		case "hsl":
			v, err := parseCylindrical(s, args)
			if err != nil {
				return domain.RGB{}, err
			}
			return HSLToRGB(domain.HSL{H: v[0], S: v[1], L: v[2]})
		case "hsv", "hsb":
			v, err := parseCylindrical(s, args)
			if err != nil {
				return domain.RGB{}, err
			}
			return HSVToRGB(domain.HSV{H: v[0], S: v[1], V: v[2]})
		case "cmyk":
			return parseCMYKArgs(s, args)
		default:
			return domain.RGB{}, domain.InvalidFormat("colorspace.parse", "%q: unknown color function %q", s, fn)
		}
	}

	if named, ok := Lookup(in); ok {
		return named.RGB, nil
	}

	return HexToRGB(in)
}

func splitArgs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func parseRGBArgs(src string, args []string) (domain.RGB, error) {
	if len(args) != 3 {
		return domain.RGB{}, domain.InvalidFormat("colorspace.parse", "%q: rgb() takes 3 arguments, got %d", src, len(args))
	}

	var ch [3]int
	for i, a := range args {
		v, err := parseNumber(src, a)
		if err != nil {
			return domain.RGB{}, err
		}
		if v < 0 || v > 255 {
			return domain.RGB{}, domain.InvalidFormat("colorspace.parse", "%q: channel %s outside [0,255]", src, a)
		}
		ch[i] = int(math.Round(v))
	}
	return domain.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// parseCylindrical reads "h, s%, x%" for hsl/hsv. The hue may carry a "deg"
// suffix; the percent signs are optional.
func parseCylindrical(src string, args []string) ([3]float64, error) {
	var out [3]float64
	if len(args) != 3 {
		return out, domain.InvalidFormat("colorspace.parse", "%q: expected 3 arguments, got %d", src, len(args))
	}

	h, err := parseNumber(src, strings.TrimSuffix(args[0], "deg"))
	if err != nil {
		return out, err
	}
	out[0] = h

	for i := 1; i < 3; i++ {
		v, err := parseNumber(src, strings.TrimSuffix(args[i], "%"))
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

func parseCMYKArgs(src string, args []string) (domain.RGB, error) {
	if len(args) != 4 {
		return domain.RGB{}, domain.InvalidFormat("colorspace.parse", "%q: cmyk() takes 4 arguments, got %d", src, len(args))
	}

	var v [4]float64
	for i, a := range args {
		n, err := parseNumber(src, strings.TrimSuffix(a, "%"))
		if err != nil {
			return domain.RGB{}, err
		}
		v[i] = n
	}
	return CMYKToRGB(domain.CMYK{C: v[0], M: v[1], Y: v[2], K: v[3]})
}

func parseNumber(src, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.InvalidFormat("colorspace.parse", "%q: %q is not a number", src, s)
	}
	return v, nil
}
