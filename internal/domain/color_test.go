package domain

import (
	"math"
	"testing"
)

func TestRGBValidate(t *testing.T) {
	cases := []struct {
		in   RGB
		want bool
	}{
		{RGB{0, 0, 0}, true},
		{RGB{255, 255, 255}, true},
		{RGB{-1, 0, 0}, false},
		{RGB{0, 256, 0}, false},
		{RGB{0, 0, 300}, false},
	}
	for _, c := range cases {
		err := c.in.Validate()
		if (err == nil) != c.want {
			t.Errorf("Validate(%+v) err=%v, want ok=%v", c.in, err, c.want)
		}
		if err != nil && !IsKind(err, KindInvalidFormat) {
			t.Errorf("expected KindInvalidFormat, got %v", err)
		}
	}
}

func TestRGBClamp(t *testing.T) {
	got := RGB{R: -20, G: 128, B: 999}.Clamp()
	if got != (RGB{R: 0, G: 128, B: 255}) {
		t.Fatalf("unexpected clamp result %+v", got)
	}
}

func TestHSLValidate(t *testing.T) {
	if err := (HSL{H: 359.9, S: 100, L: 0}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := []HSL{
		{H: 360, S: 50, L: 50},
		{H: -1, S: 50, L: 50},
		{H: math.NaN(), S: 50, L: 50},
		{H: 10, S: 101, L: 50},
		{H: 10, S: 50, L: -0.5},
		{H: 10, S: math.Inf(1), L: 50},
	}
	for _, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("expected error for %+v", c)
		}
	}
}

func TestRoundedWrapsHue(t *testing.T) {
	got := HSL{H: 359.6, S: 49.5, L: 20.4}.Rounded()
	if got != (HSL{H: 0, S: 50, L: 20}) {
		t.Fatalf("unexpected rounded HSL %+v", got)
	}

	hsv := HSV{H: 12.49, S: 99.5, V: 0.2}.Rounded()
	if hsv != (HSV{H: 12, S: 100, V: 0}) {
		t.Fatalf("unexpected rounded HSV %+v", hsv)
	}
}

func TestCMYKValidate(t *testing.T) {
	if err := (CMYK{C: 0, M: 0, Y: 0, K: 100}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (CMYK{C: 0, M: 120, Y: 0, K: 0}).Validate(); err == nil {
		t.Fatalf("expected error for m=120")
	}
}
