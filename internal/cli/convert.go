package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/chromix/internal/app/notation"
	"github.com/aalvaropc/chromix/internal/colorspace"
	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/infra/logger"
	"github.com/aalvaropc/chromix/internal/usecase"
	"github.com/aalvaropc/chromix/internal/usecase/checks"
)

func convertCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "convert <color>",
		Short: "Show a color as hex, rgb, hsl, hsv and cmyk",
		Long: "Accepts #rgb, #rrggbb, rgb(), hsl(), hsv()/hsb(), cmyk() or a CSS color name.\n" +
			"Quote functional notations: chromix convert 'hsl(210, 100%, 50%)'",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(format, domain.DefaultConfig())
			if err != nil {
				return err
			}

			conv, err := usecase.NewConvertColor(usecase.WithLogger(logger.L())).Execute(args[0])
			if err != nil {
				return err
			}
			return printConversion(cmd.OutOrStdout(), conv, f)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func nameCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "name <color>",
		Short: "Find the closest CSS named color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(format, domain.DefaultConfig())
			if err != nil {
				return err
			}

			rgb, err := colorspace.Parse(args[0])
			if err != nil {
				return err
			}
			m := colorspace.Nearest(rgb)

			w := cmd.OutOrStdout()
			if f == "json" {
				return writeJSON(w, map[string]any{
					"input":    args[0],
					"hex":      colorspace.RGBToHex(rgb),
					"name":     m.Name,
					"name_hex": m.Hex,
					"distance": m.Distance,
				})
			}

			if m.Distance == 0 {
				fmt.Fprintf(w, "%s %s is %s\n", chip(m.Hex), colorspace.RGBToHex(rgb), m.Name)
				return nil
			}
			fmt.Fprintf(w, "%s %s is closest to %s %s (%s, ΔE %.2f)\n",
				chip(colorspace.RGBToHex(rgb)), colorspace.RGBToHex(rgb), chip(m.Hex), m.Name, m.Hex, m.Distance*100)
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func contrastCmd() *cobra.Command {
	var format string
	var minRatio float64

	c := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Compute the WCAG contrast ratio of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(format, domain.DefaultConfig())
			if err != nil {
				return err
			}

			fg, err := colorspace.Parse(args[0])
			if err != nil {
				return fmt.Errorf("foreground: %w", err)
			}
			bg, err := colorspace.Parse(args[1])
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}

			res := checks.Pair(
				"contrast",
				colorspace.RGBToHex(fg),
				colorspace.RGBToHex(bg),
				minRatio,
			)

			w := cmd.OutOrStdout()
			if f == "json" {
				if err := writeJSON(w, map[string]any{
					"foreground": colorspace.RGBToHex(fg),
					"background": colorspace.RGBToHex(bg),
					"ratio":      res.Ratio,
					"level":      checks.Level(res.Ratio),
					"min_ratio":  minRatio,
					"passed":     res.Passed,
				}); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(w, "%s on %s  %s  %s\n",
					chip(colorspace.RGBToHex(fg)), chip(colorspace.RGBToHex(bg)),
					notation.Ratio(res.Ratio), checks.Level(res.Ratio))
			}

			if !res.Passed {
				return fmt.Errorf("contrast %s below required %s", notation.Ratio(res.Ratio), notation.Ratio(minRatio))
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().Float64Var(&minRatio, "min", 1, "Fail unless the ratio reaches this value (4.5 = AA, 7 = AAA)")
	return c
}
