package workspacefinder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/chromix/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "chromix.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return root
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	// Partial config (no paths/defaults)
	root := writeConfig(t, "chromix:\n  output:\n    format: json\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Output.Format != "json" {
		t.Fatalf("expected format=json, got=%s", cfg.Output.Format)
	}
	if cfg.Defaults.MixWeight != 0.5 {
		t.Fatalf("expected default mix weight 0.5, got=%g", cfg.Defaults.MixWeight)
	}
	if cfg.Defaults.ShadeSteps != 5 {
		t.Fatalf("expected default shade steps 5, got=%d", cfg.Defaults.ShadeSteps)
	}
	if cfg.Paths.PalettesDir != "palettes" {
		t.Fatalf("expected palettes dir=palettes, got=%s", cfg.Paths.PalettesDir)
	}
	if cfg.Paths.ExportsDir != "exports" {
		t.Fatalf("expected exports dir=exports, got=%s", cfg.Paths.ExportsDir)
	}
}

func TestLoadConfig_OverridesEverything(t *testing.T) {
	root := writeConfig(t, `chromix:
  defaults:
    mix_weight: 0
    shade_steps: 9
  paths:
    palettes_dir: colors
    exports_dir: out
`)

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Defaults.MixWeight != 0 {
		t.Fatalf("expected explicit zero weight to win, got=%g", cfg.Defaults.MixWeight)
	}
	if cfg.Defaults.ShadeSteps != 9 {
		t.Fatalf("expected shade steps 9, got=%d", cfg.Defaults.ShadeSteps)
	}
	if cfg.Paths.PalettesDir != "colors" || cfg.Paths.ExportsDir != "out" {
		t.Fatalf("unexpected paths %+v", cfg.Paths)
	}
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	cases := []struct {
		field   string
		content string
	}{
		{"output.format", "chromix:\n  output:\n    format: xml\n"},
		{"defaults.mix_weight", "chromix:\n  defaults:\n    mix_weight: 1.5\n"},
		{"defaults.shade_steps", "chromix:\n  defaults:\n    shade_steps: 1\n"},
		{"defaults.shade_steps", "chromix:\n  defaults:\n    shade_steps: 4611686018427387904\n"},
	}
	for _, tc := range cases {
		root := writeConfig(t, tc.content)
		_, err := LoadConfig(root)
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("%s: expected KindInvalidConfig, got %v", tc.field, err)
		}
		if !strings.Contains(err.Error(), tc.field) {
			t.Fatalf("%s: expected field in error, got %v", tc.field, err)
		}
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	root := writeConfig(t, "chromix: [\n")
	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}
