package domain

// Config represents the chromix configuration loaded from chromix.yaml.
type Config struct {
	Output   OutputConfig
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type OutputConfig struct {
	Format string
}

// MaxShadeSteps bounds a generated ramp. An 8-bit ramp has at most 766
// distinct stops, so longer ones only repeat colors.
const MaxShadeSteps = 1024

type DefaultsConfig struct {
	MixWeight  float64
	ShadeSteps int
}

type PathsConfig struct {
	PalettesDir string
	ExportsDir  string
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}

// DefaultConfig provides sane defaults if chromix.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{Format: "pretty"},
		Defaults: DefaultsConfig{
			MixWeight:  0.5,
			ShadeSteps: 5,
		},
		Paths: PathsConfig{
			PalettesDir: "palettes",
			ExportsDir:  "exports",
		},
	}
}
