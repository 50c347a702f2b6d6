package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/chromix/internal/domain"
)

func TestValidatePalette_OK(t *testing.T) {
	loader := &fakePaletteLoader{palette: brandPalette()}
	p, err := NewValidatePalette(loader).Execute(context.Background(), "palettes/brand.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "brand" || loader.paths[0] != "palettes/brand.yaml" {
		t.Fatalf("unexpected palette %q or path %v", p.Name, loader.paths)
	}
}

func TestValidatePalette_InvalidPalette(t *testing.T) {
	bad := brandPalette()
	bad.Swatches = append(bad.Swatches, domain.Swatch{Name: "INK", Hex: "#111111"})

	_, err := NewValidatePalette(&fakePaletteLoader{palette: bad}).Execute(context.Background(), "x")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestValidatePalette_LoaderError(t *testing.T) {
	_, err := NewValidatePalette(&fakePaletteLoader{err: errBoom}).Execute(context.Background(), "x")
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

func TestValidatePalette_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := &fakePaletteLoader{palette: brandPalette()}
	if _, err := NewValidatePalette(loader).Execute(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(loader.paths) != 0 {
		t.Fatalf("expected loader not to be called")
	}
}

func TestCheckPalette_Execute(t *testing.T) {
	_, res, err := NewCheckPalette(&fakePaletteLoader{palette: brandPalette()}).Execute(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res))
	}
	if !res[0].Passed {
		t.Fatalf("expected ink/paper to pass, got %+v", res[0])
	}
	// #ff5500 on white is about 3.0:1
	if res[1].Passed {
		t.Fatalf("expected accent/paper to fail, got %+v", res[1])
	}
}

func TestExportPalette_DefaultTemplate(t *testing.T) {
	out, err := NewExportPalette(&fakePaletteLoader{palette: brandPalette()}).Execute("x", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "--ink: #000000;\n--paper: #ffffff;\n--accent: #ff5500;"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestExportPalette_AllVars(t *testing.T) {
	p := domain.Palette{Name: "one", Swatches: []domain.Swatch{{Name: "red", Hex: "#ff0000"}}}
	tmpl := "{{name}} {{hex}} {{r}},{{g}},{{b}} {{rgb}} {{hsl}} {{hsv}} {{cmyk}}"

	out, err := NewExportPalette(&fakePaletteLoader{palette: p}).Execute("x", tmpl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "red #ff0000 255,0,0 rgb(255, 0, 0) hsl(0, 100%, 50%) hsv(0, 100%, 100%) cmyk(0%, 100%, 100%, 0%)"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestExportPalette_Filters(t *testing.T) {
	out, err := NewExportPalette(&fakePaletteLoader{palette: brandPalette()}).Execute("x", "{{name | upper}}=0x{{hex | nohash}}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "INK=0x000000\nPAPER=0xffffff\nACCENT=0xff5500"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestExportPalette_BadTemplateFailsBeforeRendering(t *testing.T) {
	_, err := NewExportPalette(&fakePaletteLoader{palette: brandPalette()}).Execute("x", "{{hex | shout}}")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if strings.Contains(err.Error(), "swatch") {
		t.Fatalf("template errors are not tied to a swatch, got %v", err)
	}
}

func TestExportPalette_UnknownVar(t *testing.T) {
	_, err := NewExportPalette(&fakePaletteLoader{palette: brandPalette()}).Execute("x", "{{nope}}")
	if !domain.IsKind(err, domain.KindMissingVar) {
		t.Fatalf("expected missing_variable, got %v", err)
	}
	if !strings.Contains(err.Error(), `swatch "ink"`) {
		t.Fatalf("expected swatch context in error, got %v", err)
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Gray":            "gray",
		"#000000-#ffffff": "000000-ffffff",
		"  Brand Blue! ":  "brand-blue",
		"###":             "shade",
	}
	for in, want := range cases {
		if got := slug(in); got != want {
			t.Errorf("slug(%q) = %q, want %q", in, got, want)
		}
	}
}
