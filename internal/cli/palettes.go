package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/chromix/internal/infra/logger"
	"github.com/aalvaropc/chromix/internal/usecase"
	"github.com/aalvaropc/chromix/internal/usecase/checks"
)

func palettesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "palettes",
		Short: "Manage palettes in a workspace",
	}

	c.AddCommand(
		palettesListCmd(),
		palettesShowCmd(),
		palettesValidateCmd(),
		palettesCheckCmd(),
		palettesExportCmd(),
	)
	return c
}

func palettesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List palettes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.palettes.ListPalettes(ws.root)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no palettes found)")
				return nil
			}

			fmt.Fprintf(w, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(w, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func palettesShowCmd() *cobra.Command {
	var workspace string
	var format string

	cmd := &cobra.Command{
		Use:   "show <palette>",
		Short: "Print the swatches of a palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, ws.cfg)
			if err != nil {
				return err
			}

			path, err := resolvePalettePath(ws, args[0])
			if err != nil {
				return err
			}

			p, err := ws.palettes.LoadPalette(path)
			if err != nil {
				return err
			}
			return printPalette(cmd.OutOrStdout(), p, f)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: pretty|json")
	return cmd
}

func palettesValidateCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "validate <palette>",
		Short: "Validate a palette file (colors, names, check references)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolvePalettePath(ws, args[0])
			if err != nil {
				return err
			}

			p, err := usecase.NewValidatePalette(ws.palettes).Execute(cmd.Context(), path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK (%s: %d swatch(es), %d check(s))\n", p.Name, len(p.Swatches), len(p.Checks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func palettesCheckCmd() *cobra.Command {
	var workspace string
	var format string

	cmd := &cobra.Command{
		Use:   "check <palette>",
		Short: "Run the WCAG contrast checks declared in a palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, ws.cfg)
			if err != nil {
				return err
			}

			path, err := resolvePalettePath(ws, args[0])
			if err != nil {
				return err
			}

			uc := usecase.NewCheckPalette(ws.palettes, usecase.WithLogger(logger.L()))
			p, res, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				return err
			}

			if err := printChecks(cmd.OutOrStdout(), p, res, f); err != nil {
				return err
			}

			if _, fails := checks.CountPassFail(res); fails > 0 {
				return fmt.Errorf("check failed (%d failed contrast check(s))", fails)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: pretty|json")
	return cmd
}

func palettesExportCmd() *cobra.Command {
	var workspace string
	var tmpl string
	var out string

	cmd := &cobra.Command{
		Use:   "export <palette>",
		Short: "Render every swatch through a template",
		Long: "Template variables: {{name}} {{hex}} {{r}} {{g}} {{b}} {{rgb}} {{hsl}} {{hsv}} {{cmyk}}.\n" +
			"Filters: upper lower nohash kebab snake, e.g. {{hex | nohash | upper}}.\n" +
			"The default renders CSS custom properties: " + usecase.DefaultExportTemplate,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolvePalettePath(ws, args[0])
			if err != nil {
				return err
			}

			text, err := usecase.NewExportPalette(ws.palettes).Execute(path, tmpl)
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
			if err := os.WriteFile(out, []byte(text+"\n"), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			logger.L().Info("palette.exported", "palette", path, "out", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVarP(&tmpl, "template", "t", usecase.DefaultExportTemplate, "Line template applied to each swatch")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to a file instead of stdout")
	return cmd
}
