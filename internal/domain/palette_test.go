package domain

import (
	"strings"
	"testing"
)

func validPalette() Palette {
	return Palette{
		Name: "Brand",
		Swatches: []Swatch{
			{Name: "ink", Hex: "#111111"},
			{Name: "paper", Hex: "#fafafa"},
		},
		Checks: []ContrastCheck{
			{Foreground: "ink", Background: "paper", MinRatio: 4.5},
		},
	}
}

func TestPaletteValidate_OK(t *testing.T) {
	if err := validPalette().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPaletteValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *Palette)
		field  string
	}{
		{"missing name", func(p *Palette) { p.Name = " " }, "name"},
		{"empty swatch name", func(p *Palette) { p.Swatches[1].Name = "" }, "swatches[1].name"},
		{"duplicate swatch", func(p *Palette) { p.Swatches[1].Name = "INK" }, "swatches[1].name"},
		{"uppercase hex", func(p *Palette) { p.Swatches[0].Hex = "#AAAAAA" }, "swatches[0].hex"},
		{"short hex", func(p *Palette) { p.Swatches[0].Hex = "#abc" }, "swatches[0].hex"},
		{"unknown fg", func(p *Palette) { p.Checks[0].Foreground = "nope" }, "checks[0].foreground"},
		{"unknown bg", func(p *Palette) { p.Checks[0].Background = "nope" }, "checks[0].background"},
		{"ratio too high", func(p *Palette) { p.Checks[0].MinRatio = 22 }, "checks[0].min_ratio"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := validPalette()
			c.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !IsKind(err, KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), c.field) {
				t.Fatalf("expected field %q in error, got %v", c.field, err)
			}
		})
	}
}

func TestPaletteLookupCaseInsensitive(t *testing.T) {
	s, ok := validPalette().Lookup("PAPER")
	if !ok || s.Hex != "#fafafa" {
		t.Fatalf("unexpected lookup result %+v ok=%v", s, ok)
	}
	if _, ok := validPalette().Lookup("missing"); ok {
		t.Fatalf("expected miss")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Defaults.MixWeight != 0.5 || cfg.Defaults.ShadeSteps != 5 {
		t.Fatalf("unexpected defaults %+v", cfg.Defaults)
	}
	if cfg.Paths.PalettesDir != "palettes" || cfg.Paths.ExportsDir != "exports" {
		t.Fatalf("unexpected paths %+v", cfg.Paths)
	}
}
