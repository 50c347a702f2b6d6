package palettefile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aalvaropc/chromix/internal/colorspace"
	"github.com/aalvaropc/chromix/internal/domain"
)

// mapAndValidate turns a decoded file into a domain.Palette. Colors may be
// written in any notation colorspace.Parse accepts; they are stored as
// canonical hex.
func mapAndValidate(path string, dto paletteDTO) (domain.Palette, error) {
	p := domain.Palette{
		Name:        strings.TrimSpace(dto.Name),
		Description: strings.TrimSpace(dto.Description),
		Swatches:    make([]domain.Swatch, 0, len(dto.Swatches)),
		Checks:      make([]domain.ContrastCheck, 0, len(dto.Checks)),
	}

	for i, s := range dto.Swatches {
		rgb, err := colorspace.Parse(s.Color)
		if err != nil {
			return domain.Palette{}, &domain.OpError{
				Op:   "palettefile.validate",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("field swatches[%d].color: %w", i, err),
			}
		}
		p.Swatches = append(p.Swatches, domain.Swatch{
			Name: strings.TrimSpace(s.Name),
			Hex:  colorspace.RGBToHex(rgb),
		})
	}

	for _, c := range dto.Checks {
		ratio := c.MinRatio
		if ratio == 0 {
			ratio = colorspace.ContrastAA
		}
		p.Checks = append(p.Checks, domain.ContrastCheck{
			Foreground: strings.TrimSpace(c.Foreground),
			Background: strings.TrimSpace(c.Background),
			MinRatio:   ratio,
		})
	}

	if err := p.Validate(); err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			withPath := *oe
			withPath.Path = path
			return domain.Palette{}, &withPath
		}
		return domain.Palette{}, err
	}

	return p, nil
}
