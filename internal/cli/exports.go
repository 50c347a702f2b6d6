package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/chromix/internal/infra/logger"
	"github.com/aalvaropc/chromix/internal/usecase"
)

func exportsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "exports",
		Short: "Browse palettes saved with --save",
	}

	c.AddCommand(exportsListCmd(), exportsShowCmd())
	return c
}

func exportsListCmd() *cobra.Command {
	var workspace string
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved exports, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, ws.cfg)
			if err != nil {
				return err
			}

			rows, err := usecase.NewListExports(ws.store, usecase.WithLogger(logger.L())).Execute(cmd.Context())
			if err != nil {
				return err
			}
			return printExports(cmd.OutOrStdout(), rows, f)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: pretty|json")
	return cmd
}

func exportsShowCmd() *cobra.Command {
	var workspace string
	var format string

	cmd := &cobra.Command{
		Use:   "show <id|latest>",
		Short: "Print the swatches of a saved export",
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

			art, err := usecase.NewShowExport(ws.store).Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printArtifact(cmd.OutOrStdout(), art, "", f)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: pretty|json")
	return cmd
}
