package ports

import "github.com/aalvaropc/chromix/internal/domain"

// ExportStore persists generated palettes so they can be reused later.
type ExportStore interface {
	SaveArtifact(a domain.PaletteArtifact) (id string, err error)
}

// ExportCatalog reads back what an ExportStore saved.
type ExportCatalog interface {
	ListArtifacts() (ids []string, err error)
	LoadArtifact(id string) (domain.PaletteArtifact, error)
}
