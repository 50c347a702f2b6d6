package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/chromix/internal/colorspace"
	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/ports"
)

// ShadesRequest describes a ramp between two colors. Start and End accept any
// notation colorspace.Parse understands.
type ShadesRequest struct {
	Name  string
	Start string
	End   string
	Steps int
	Save  bool
}

type GenerateShades struct {
	settings
	store ports.ExportStore
}

// NewGenerateShades wires the use case. store may be nil when nothing is saved.
func NewGenerateShades(store ports.ExportStore, opts ...Option) *GenerateShades {
	return &GenerateShades{settings: newSettings(opts), store: store}
}

// Execute builds the ramp and, when req.Save is set, persists it. The returned
// id is empty when nothing was saved.
func (uc *GenerateShades) Execute(ctx context.Context, req ShadesRequest) (domain.PaletteArtifact, string, error) {
	start, err := parseToHex(req.Start)
	if err != nil {
		return domain.PaletteArtifact{}, "", fmt.Errorf("start color: %w", err)
	}
	end, err := parseToHex(req.End)
	if err != nil {
		return domain.PaletteArtifact{}, "", fmt.Errorf("end color: %w", err)
	}

	if req.Steps > domain.MaxShadeSteps {
		return domain.PaletteArtifact{}, "", domain.InvalidFormat("usecase.shades", "steps must be <= %d, got %d", domain.MaxShadeSteps, req.Steps)
	}

	seq, err := colorspace.Shades(string(start), string(end), req.Steps)
	if err != nil {
		return domain.PaletteArtifact{}, "", err
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("%s-%s", start, end)
	}

	art := domain.PaletteArtifact{
		Kind:      domain.ArtifactShades,
		Name:      name,
		Source:    fmt.Sprintf("%s..%s/%d", start, end, req.Steps),
		CreatedAt: uc.now(),
		Swatches:  make([]domain.Swatch, 0, req.Steps),
	}

	i := 0
	for hex := range seq {
		if err := ctx.Err(); err != nil {
			return domain.PaletteArtifact{}, "", err
		}
		i++
		art.Swatches = append(art.Swatches, domain.Swatch{
			Name: fmt.Sprintf("%s-%d", slug(name), i),
			Hex:  hex,
		})
	}

	uc.log.Info("shades.generated", "start", string(start), "end", string(end), "steps", req.Steps)
	return save(uc.settings, uc.store, req.Save, art)
}

func parseToHex(s string) (domain.HexColor, error) {
	rgb, err := colorspace.Parse(s)
	if err != nil {
		return "", err
	}
	return colorspace.RGBToHex(rgb), nil
}

// save stores art when asked to and a store is configured.
func save(s settings, store ports.ExportStore, enabled bool, art domain.PaletteArtifact) (domain.PaletteArtifact, string, error) {
	if !enabled {
		return art, "", nil
	}
	if store == nil {
		return art, "", &domain.OpError{
			Op:   "usecase.save",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("no export store configured"),
		}
	}

	id, err := store.SaveArtifact(art)
	if err != nil {
		s.log.Error("export.save_failed", "kind", string(art.Kind), "name", art.Name, "err", err)
		return art, "", err
	}
	art.ID = id

	s.log.Info("export.saved", "kind", string(art.Kind), "id", id, "swatches", len(art.Swatches))
	return art, id, nil
}
