package colorspace

import (
	"math"
	"testing"

	"github.com/aalvaropc/chromix/internal/domain"
)

var (
	black = domain.RGB{}
	white = domain.RGB{R: 255, G: 255, B: 255}
)

func TestRelativeLuminanceBounds(t *testing.T) {
	if got := RelativeLuminance(black); got != 0 {
		t.Fatalf("black luminance = %g", got)
	}
	if got := RelativeLuminance(white); math.Abs(got-1) > 1e-9 {
		t.Fatalf("white luminance = %g", got)
	}
}

func TestContrastRatio(t *testing.T) {
	if got := ContrastRatio(black, white); math.Abs(got-21) > 1e-9 {
		t.Fatalf("black/white = %g, want 21", got)
	}
	if ContrastRatio(white, black) != ContrastRatio(black, white) {
		t.Fatalf("ratio must not depend on argument order")
	}
	if got := ContrastRatio(white, white); got != 1 {
		t.Fatalf("same color ratio = %g, want 1", got)
	}
}

// #767676 is the lightest gray that passes AA on white; #777777 is not.
func TestContrastRatio_AAThreshold(t *testing.T) {
	pass := domain.RGB{R: 0x76, G: 0x76, B: 0x76}
	fail := domain.RGB{R: 0x77, G: 0x77, B: 0x77}

	if r := ContrastRatio(pass, white); r < ContrastAA {
		t.Fatalf("#767676 on white = %g, expected >= %g", r, ContrastAA)
	}
	if r := ContrastRatio(fail, white); r >= ContrastAA {
		t.Fatalf("#777777 on white = %g, expected < %g", r, ContrastAA)
	}
}
