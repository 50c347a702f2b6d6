package colorspace

import (
	"testing"

	"github.com/aalvaropc/chromix/internal/domain"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		in       string
		wantName string
		wantHex  domain.HexColor
	}{
		{"Coral", "coral", "#ff7f50"},
		{"grey", "gray", "#808080"},
		{"DarkSlateGrey", "darkslategray", "#2f4f4f"},
		{"magenta", "fuchsia", "#ff00ff"},
	}
	for _, c := range cases {
		got, ok := Lookup(c.in)
		if !ok {
			t.Errorf("Lookup(%q) miss", c.in)
			continue
		}
		if got.Name != c.wantName || got.Hex != c.wantHex {
			t.Errorf("Lookup(%q) = %+v", c.in, got)
		}
	}

	if _, ok := Lookup("blurple"); ok {
		t.Fatalf("expected miss for unknown name")
	}
}

func TestNearest(t *testing.T) {
	exact := Nearest(domain.RGB{R: 255, G: 127, B: 80})
	if exact.Name != "coral" || exact.Distance != 0 {
		t.Fatalf("expected exact coral, got %+v", exact)
	}

	approx := Nearest(domain.RGB{R: 254, G: 1, B: 0})
	if approx.Name != "red" {
		t.Fatalf("expected red, got %+v", approx)
	}
	if approx.Distance <= 0 {
		t.Fatalf("expected positive distance, got %g", approx.Distance)
	}
}

func TestNearest_EveryNamedColorFindsItself(t *testing.T) {
	for _, e := range namedTable() {
		if got := Nearest(e.RGB); got.Name != e.Name {
			t.Errorf("Nearest(%s) = %s", e.Name, got.Name)
		}
	}
}
