package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/ports"
)

// LatestExport selects the most recently saved artifact in ShowExport.
const LatestExport = "latest"

// ExportSummary is one row of the export listing. Problem is set, and the
// other fields beyond ID are empty, when the artifact could not be read.
type ExportSummary struct {
	ID        string              `json:"id"`
	Kind      domain.ArtifactKind `json:"kind,omitempty"`
	Name      string              `json:"name,omitempty"`
	CreatedAt time.Time           `json:"created_at,omitzero"`
	Swatches  int                 `json:"swatches"`
	Problem   string              `json:"problem,omitempty"`
}

type ListExports struct {
	settings
	catalog ports.ExportCatalog
}

func NewListExports(catalog ports.ExportCatalog, opts ...Option) *ListExports {
	return &ListExports{settings: newSettings(opts), catalog: catalog}
}

// Execute lists saved artifacts oldest first. An unreadable artifact is
// reported in its row and does not stop the listing.
func (uc *ListExports) Execute(ctx context.Context) ([]ExportSummary, error) {
	ids, err := uc.catalog.ListArtifacts()
	if err != nil {
		return nil, err
	}

	out := make([]ExportSummary, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		art, err := uc.catalog.LoadArtifact(id)
		if err != nil {
			uc.log.Warn("export.unreadable", "id", id, "err", err)
			out = append(out, ExportSummary{ID: id, Problem: err.Error()})
			continue
		}
		out = append(out, ExportSummary{
			ID:        id,
			Kind:      art.Kind,
			Name:      art.Name,
			CreatedAt: art.CreatedAt,
			Swatches:  len(art.Swatches),
		})
	}
	return out, nil
}

type ShowExport struct {
	catalog ports.ExportCatalog
}

func NewShowExport(catalog ports.ExportCatalog) *ShowExport {
	return &ShowExport{catalog: catalog}
}

// Execute loads one artifact by id, or the newest one for LatestExport.
func (uc *ShowExport) Execute(ctx context.Context, id string) (domain.PaletteArtifact, error) {
	if err := ctx.Err(); err != nil {
		return domain.PaletteArtifact{}, err
	}

	if id == LatestExport {
		ids, err := uc.catalog.ListArtifacts()
		if err != nil {
			return domain.PaletteArtifact{}, err
		}
		if len(ids) == 0 {
			return domain.PaletteArtifact{}, &domain.OpError{
				Op:   "usecase.show_export",
				Kind: domain.KindNotFound,
				Err:  errors.New("no exports saved yet"),
			}
		}
		id = ids[len(ids)-1]
	}

	art, err := uc.catalog.LoadArtifact(id)
	if err != nil {
		return domain.PaletteArtifact{}, err
	}
	if art.ID == "" {
		art.ID = id
	}
	return art, nil
}
