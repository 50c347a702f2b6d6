package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/infra/logger"
	"github.com/aalvaropc/chromix/internal/ports"
	"github.com/aalvaropc/chromix/internal/usecase"
)

func shadesCmd() *cobra.Command {
	var workspace string
	var steps int
	var name string
	var save bool
	var format string

	c := &cobra.Command{
		Use:   "shades <start> <end>",
		Short: "Generate evenly spaced colors from start to end (both included)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cfg, err := generatorWorkspace(workspace, save)
			if err != nil {
				return err
			}

			f, err := resolveFormat(format, cfg)
			if err != nil {
				return err
			}

			n := cfg.Defaults.ShadeSteps
			if cmd.Flags().Changed("steps") {
				n = steps
			}

			uc := usecase.NewGenerateShades(storeOf(ws), usecase.WithLogger(logger.L()))
			art, id, err := uc.Execute(cmd.Context(), usecase.ShadesRequest{
				Name:  name,
				Start: args[0],
				End:   args[1],
				Steps: n,
				Save:  save,
			})
			if err != nil {
				return err
			}
			return printArtifact(cmd.OutOrStdout(), art, id, f)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().IntVarP(&steps, "steps", "n", 5, "Number of colors, at least 2 (defaults to workspace defaults.shade_steps)")
	c.Flags().StringVar(&name, "name", "", "Name of the generated palette")
	c.Flags().BoolVar(&save, "save", false, "Save the result under exports/")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json")
	return c
}

func mixCmd() *cobra.Command {
	var workspace string
	var weight float64
	var name string
	var save bool
	var format string

	c := &cobra.Command{
		Use:   "mix <a> <b>",
		Short: "Blend two colors; --weight is the share of the first one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cfg, err := generatorWorkspace(workspace, save)
			if err != nil {
				return err
			}

			f, err := resolveFormat(format, cfg)
			if err != nil {
				return err
			}

			wgt := cfg.Defaults.MixWeight
			if cmd.Flags().Changed("weight") {
				wgt = weight
			}

			uc := usecase.NewMixColors(storeOf(ws), usecase.WithLogger(logger.L()))
			art, id, err := uc.Execute(cmd.Context(), usecase.MixRequest{
				Name:   name,
				A:      args[0],
				B:      args[1],
				Weight: wgt,
				Save:   save,
			})
			if err != nil {
				return err
			}
			return printArtifact(cmd.OutOrStdout(), art, id, f)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().Float64Var(&weight, "weight", 0.5, "Weight of the first color in [0,1] (defaults to workspace defaults.mix_weight)")
	c.Flags().StringVar(&name, "name", "", "Name of the generated palette")
	c.Flags().BoolVar(&save, "save", false, "Save the result under exports/")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json")
	return c
}

// generatorWorkspace requires a workspace only when the result is saved.
func generatorWorkspace(flag string, save bool) (*workspaceCtx, domain.Config, error) {
	if save {
		ws, err := loadWorkspace(flag)
		if err != nil {
			return nil, domain.Config{}, err
		}
		return ws, ws.cfg, nil
	}
	return optionalWorkspace(flag)
}

func storeOf(ws *workspaceCtx) ports.ExportStore {
	if ws == nil {
		return nil
	}
	return ws.store
}
