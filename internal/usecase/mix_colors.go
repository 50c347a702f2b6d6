package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/chromix/internal/colorspace"
	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/ports"
)

type MixRequest struct {
	Name   string
	A      string
	B      string
	Weight float64
	Save   bool
}

type MixColors struct {
	settings
	store ports.ExportStore
}

func NewMixColors(store ports.ExportStore, opts ...Option) *MixColors {
	return &MixColors{settings: newSettings(opts), store: store}
}

// Execute blends A and B with Weight applied to A. The artifact carries the two
// inputs and the result, in that order.
func (uc *MixColors) Execute(ctx context.Context, req MixRequest) (domain.PaletteArtifact, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.PaletteArtifact{}, "", err
	}

	a, err := parseToHex(req.A)
	if err != nil {
		return domain.PaletteArtifact{}, "", fmt.Errorf("first color: %w", err)
	}
	b, err := parseToHex(req.B)
	if err != nil {
		return domain.PaletteArtifact{}, "", fmt.Errorf("second color: %w", err)
	}

	mixed, err := colorspace.Mix(string(a), string(b), req.Weight)
	if err != nil {
		return domain.PaletteArtifact{}, "", err
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("mix-%s-%s", a, b)
	}

	art := domain.PaletteArtifact{
		Kind:      domain.ArtifactMix,
		Name:      name,
		Source:    fmt.Sprintf("%s+%s@%g", a, b, req.Weight),
		CreatedAt: uc.now(),
		Swatches: []domain.Swatch{
			{Name: "a", Hex: a},
			{Name: "b", Hex: b},
			{Name: "mix", Hex: mixed},
		},
	}

	uc.log.Info("mix.generated", "a", string(a), "b", string(b), "weight", req.Weight, "result", string(mixed))
	return save(uc.settings, uc.store, req.Save, art)
}

// Result returns the mixed color of an artifact produced by MixColors.
func Result(art domain.PaletteArtifact) domain.HexColor {
	if len(art.Swatches) == 0 {
		return ""
	}
	return art.Swatches[len(art.Swatches)-1].Hex
}
