package ports

import "github.com/aalvaropc/chromix/internal/domain"

// PaletteLoader loads palettes from a source (e.g., filesystem).
type PaletteLoader interface {
	LoadPalette(path string) (domain.Palette, error)
}

// PaletteCatalog lists the palettes available under a workspace root.
type PaletteCatalog interface {
	ListPalettes(root string) ([]domain.PaletteRef, error)
}
