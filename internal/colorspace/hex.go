package colorspace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/chromix/internal/domain"
)

// ParseHex normalizes user input into canonical lowercase "#rrggbb".
// The leading '#' is optional and 3-digit shorthand is expanded.
func ParseHex(s string) (domain.HexColor, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(digits) {
	case 6:
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	default:
		return "", domain.InvalidFormat("colorspace.parsehex", "%q: expected 3 or 6 hex digits", s)
	}

	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return "", domain.InvalidFormat("colorspace.parsehex", "%q: %q is not a hex digit", s, digits[i])
		}
	}

	return domain.HexColor("#" + strings.ToLower(digits)), nil
}

// HexToRGB decodes a hex color into its exact byte channels.
func HexToRGB(s string) (domain.RGB, error) {
	h, err := ParseHex(s)
	if err != nil {
		return domain.RGB{}, err
	}

	v, err := strconv.ParseUint(string(h[1:]), 16, 32)
	if err != nil {
		return domain.RGB{}, domain.InvalidFormat("colorspace.hextorgb", "%q: %v", s, err)
	}

	return domain.RGB{
		R: int(v >> 16 & 0xFF),
		G: int(v >> 8 & 0xFF),
		B: int(v & 0xFF),
	}, nil
}

// RGBToHex encodes c as lowercase "#rrggbb". Out-of-range channels are
// clamped to [0,255], never wrapped.
func RGBToHex(c domain.RGB) domain.HexColor {
	c = c.Clamp()
	return domain.HexColor(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
