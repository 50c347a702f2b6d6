package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/chromix/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads chromix.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if f := strings.TrimSpace(y.Chromix.Output.Format); f != "" {
		if f != "pretty" && f != "json" {
			return cfg, invalidConfig(path, "output.format", fmt.Sprintf("unsupported format %q (expected pretty|json)", f))
		}
		cfg.Output.Format = f
	}
	if w := y.Chromix.Defaults.MixWeight; w != nil {
		if *w < 0 || *w > 1 {
			return cfg, invalidConfig(path, "defaults.mix_weight", fmt.Sprintf("%g outside [0,1]", *w))
		}
		cfg.Defaults.MixWeight = *w
	}
	if s := y.Chromix.Defaults.ShadeSteps; s != nil {
		if *s < 2 {
			return cfg, invalidConfig(path, "defaults.shade_steps", fmt.Sprintf("%d is below 2", *s))
		}
		if *s > domain.MaxShadeSteps {
			return cfg, invalidConfig(path, "defaults.shade_steps", fmt.Sprintf("%d is above %d", *s, domain.MaxShadeSteps))
		}
		cfg.Defaults.ShadeSteps = *s
	}
	if y.Chromix.Paths.PalettesDir != "" {
		cfg.Paths.PalettesDir = y.Chromix.Paths.PalettesDir
	}
	if y.Chromix.Paths.ExportsDir != "" {
		cfg.Paths.ExportsDir = y.Chromix.Paths.ExportsDir
	}

	return cfg, nil
}

func invalidConfig(path, field, msg string) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}

type yamlConfig struct {
	Chromix struct {
		Output struct {
			Format string `yaml:"format"`
		} `yaml:"output"`

		Defaults struct {
			MixWeight  *float64 `yaml:"mix_weight"`
			ShadeSteps *int     `yaml:"shade_steps"`
		} `yaml:"defaults"`

		Paths struct {
			PalettesDir string `yaml:"palettes_dir"`
			ExportsDir  string `yaml:"exports_dir"`
		} `yaml:"paths"`
	} `yaml:"chromix"`
}
