package palettefile

// paletteDTO mirrors the on-disk shape shared by the YAML and TOML formats.
type paletteDTO struct {
	Name        string      `yaml:"name" toml:"name"`
	Description string      `yaml:"description" toml:"description"`
	Swatches    []swatchDTO `yaml:"swatches" toml:"swatches"`
	Checks      []checkDTO  `yaml:"checks" toml:"checks"`
}

type swatchDTO struct {
	Name  string `yaml:"name" toml:"name"`
	Color string `yaml:"color" toml:"color"`
}

type checkDTO struct {
	Foreground string  `yaml:"foreground" toml:"foreground"`
	Background string  `yaml:"background" toml:"background"`
	MinRatio   float64 `yaml:"min_ratio" toml:"min_ratio"`
}
