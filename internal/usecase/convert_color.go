package usecase

import (
	"github.com/aalvaropc/chromix/internal/colorspace"
	"github.com/aalvaropc/chromix/internal/domain"
)

// Conversion is one color expressed in every supported space.
type Conversion struct {
	Input     string          `json:"input"`
	Hex       domain.HexColor `json:"hex"`
	RGB       domain.RGB      `json:"rgb"`
	HSL       domain.HSL      `json:"hsl"`
	HSV       domain.HSV      `json:"hsv"`
	CMYK      domain.CMYK     `json:"cmyk"`
	Name      string          `json:"name"`
	ExactName bool            `json:"exact_name"`
	Luminance float64         `json:"luminance"`
}

type ConvertColor struct {
	settings
}

func NewConvertColor(opts ...Option) *ConvertColor {
	return &ConvertColor{settings: newSettings(opts)}
}

// Execute parses input in any accepted notation and converts it.
func (uc *ConvertColor) Execute(input string) (Conversion, error) {
	rgb, err := colorspace.Parse(input)
	if err != nil {
		return Conversion{}, err
	}

	return uc.fromRGB(input, rgb)
}

func (uc *ConvertColor) fromRGB(input string, rgb domain.RGB) (Conversion, error) {
	hsl, err := colorspace.RGBToHSL(rgb)
	if err != nil {
		return Conversion{}, err
	}
	hsv, err := colorspace.RGBToHSV(rgb)
	if err != nil {
		return Conversion{}, err
	}
	cmyk, err := colorspace.RGBToCMYK(rgb)
	if err != nil {
		return Conversion{}, err
	}

	near := colorspace.Nearest(rgb)
	out := Conversion{
		Input:     input,
		Hex:       colorspace.RGBToHex(rgb),
		RGB:       rgb,
		HSL:       hsl,
		HSV:       hsv,
		CMYK:      cmyk,
		Name:      near.Name,
		ExactName: near.Distance == 0,
		Luminance: colorspace.RelativeLuminance(rgb),
	}

	uc.log.Debug("convert.done", "input", input, "hex", string(out.Hex), "name", out.Name)
	return out, nil
}
