package colorspace

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/chromix/internal/domain"
)

func TestMix(t *testing.T) {
	cases := []struct {
		a, b   string
		weight float64
		want   domain.HexColor
	}{
		// 127.5 rounds half away from zero
		{"#000000", "#FFFFFF", 0.5, "#808080"},
		{"#000000", "#ffffff", DefaultMixWeight, "#808080"},
		{"#ff0000", "#0000ff", 1, "#ff0000"},
		{"#ff0000", "#0000ff", 0, "#0000ff"},
		{"#ff0000", "#0000ff", 0.25, "#4000bf"},
		{"#fff", "#000", 0.5, "#808080"},
	}
	for _, c := range cases {
		got, err := Mix(c.a, c.b, c.weight)
		if err != nil {
			t.Errorf("Mix(%q, %q, %g) error: %v", c.a, c.b, c.weight, err)
			continue
		}
		if got != c.want {
			t.Errorf("Mix(%q, %q, %g) = %q, want %q", c.a, c.b, c.weight, got, c.want)
		}
	}
}

func TestMix_InvalidFormat(t *testing.T) {
	cases := []struct {
		a, b   string
		weight float64
	}{
		{"#000000", "#ffffff", -0.1},
		{"#000000", "#ffffff", 1.1},
		{"#000000", "#ffffff", math.NaN()},
		{"#12", "#ffffff", 0.5},
		{"#000000", "#gggggg", 0.5},
	}
	for _, c := range cases {
		if _, err := Mix(c.a, c.b, c.weight); !domain.IsKind(err, domain.KindInvalidFormat) {
			t.Errorf("Mix(%q, %q, %g) expected KindInvalidFormat, got %v", c.a, c.b, c.weight, err)
		}
	}
}

func TestShades_ThreeSteps(t *testing.T) {
	seq, err := Shades("#000000", "#FFFFFF", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.HexColor{"#000000", "#808080", "#ffffff"}
	if diff := cmp.Diff(want, slices.Collect(seq)); diff != "" {
		t.Fatalf("shades mismatch (-want +got):\n%s", diff)
	}
}

func TestShades_FiveSteps(t *testing.T) {
	seq, err := Shades("#000000", "#ffffff", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.HexColor{"#000000", "#404040", "#808080", "#bfbfbf", "#ffffff"}
	if diff := cmp.Diff(want, slices.Collect(seq)); diff != "" {
		t.Fatalf("shades mismatch (-want +got):\n%s", diff)
	}
}

func TestShades_EndpointsAreExact(t *testing.T) {
	seq, err := Shades("#123456", "#ABCDEF", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := slices.Collect(seq)
	if len(got) != 7 {
		t.Fatalf("expected 7 colors, got %d", len(got))
	}
	if got[0] != "#123456" || got[6] != "#abcdef" {
		t.Fatalf("unexpected endpoints %q .. %q", got[0], got[6])
	}
}

func TestShades_Restartable(t *testing.T) {
	seq, err := Shades("#ff0000", "#0000ff", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second pass differs (-first +second):\n%s", diff)
	}
}

func TestShades_StopsEarly(t *testing.T) {
	seq, err := Shades("#000000", "#ffffff", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("expected to stop after 2, got %d", n)
	}
}

func TestShades_InvalidFormat(t *testing.T) {
	if _, err := Shades("#000000", "#ffffff", 1); !domain.IsKind(err, domain.KindInvalidFormat) {
		t.Fatalf("expected KindInvalidFormat for steps=1, got %v", err)
	}
	if _, err := Shades("#00000", "#ffffff", 3); !domain.IsKind(err, domain.KindInvalidFormat) {
		t.Fatalf("expected KindInvalidFormat for bad start, got %v", err)
	}
	if _, err := Shades("#000000", "white", 3); !domain.IsKind(err, domain.KindInvalidFormat) {
		t.Fatalf("expected KindInvalidFormat for bad end, got %v", err)
	}
}
