package palettefile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/ports"
)

// Loader reads palettes stored as YAML (.yaml, .yml) or TOML (.toml) files.
type Loader struct {
	palettesDir string
}

type Option func(*Loader)

func WithPalettesDir(dir string) Option {
	return func(l *Loader) { l.palettesDir = dir }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{palettesDir: "palettes"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var (
	_ ports.PaletteLoader  = (*Loader)(nil)
	_ ports.PaletteCatalog = (*Loader)(nil)
)

func (l *Loader) LoadPalette(path string) (domain.Palette, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Palette{}, &domain.OpError{
			Op:   "palettefile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	dto, err := decode(path, b)
	if err != nil {
		return domain.Palette{}, &domain.OpError{
			Op:   "palettefile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, dto)
}

func (l *Loader) ListPalettes(root string) ([]domain.PaletteRef, error) {
	dir := filepath.Join(root, l.palettesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "palettefile.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.PaletteRef
	for _, e := range entries {
		if e.IsDir() || !IsPaletteFile(e.Name()) {
			continue
		}

		p := filepath.Join(dir, e.Name())
		n := readPaletteName(p)
		if n == "" {
			n = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}

		refs = append(refs, domain.PaletteRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// IsPaletteFile reports whether name has an extension the loader can decode.
func IsPaletteFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

func decode(path string, b []byte) (paletteDTO, error) {
	var dto paletteDTO
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &dto); err != nil {
			return dto, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &dto); err != nil {
			return dto, err
		}
	default:
		return dto, fmt.Errorf("unsupported palette file extension %q", filepath.Ext(path))
	}
	return dto, nil
}

func readPaletteName(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	dto, err := decode(path, b)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(dto.Name)
}
