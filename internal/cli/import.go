package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/chromix/internal/infra/logger"
	"github.com/aalvaropc/chromix/internal/usecase"
)

func importCmd() *cobra.Command {
	var workspace string
	var expr string
	var name string
	var save bool
	var format string

	c := &cobra.Command{
		Use:   "import <tokens.json>",
		Short: "Import colors from a design-token JSON document",
		Long: "Selects a node with a JSONPath expression (--path) and turns every string leaf\n" +
			"into a swatch. Both plain objects and {\"$value\": ...} tokens are understood.\n" +
			"Values that are not colors are reported and skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cfg, err := generatorWorkspace(workspace, save)
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, cfg)
			if err != nil {
				return err
			}

			uc := usecase.NewImportTokens(storeOf(ws), usecase.WithLogger(logger.L()))
			res, err := uc.Execute(cmd.Context(), usecase.ImportRequest{
				Path: args[0],
				Expr: expr,
				Name: name,
				Save: save,
			})
			if err != nil {
				return err
			}
			return printImport(cmd.OutOrStdout(), res, f)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&expr, "path", "p", "$", "JSONPath of the node to import")
	c.Flags().StringVar(&name, "name", "", "Palette name (defaults to the file name)")
	c.Flags().BoolVar(&save, "save", false, "Save the result under exports/")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json")
	return c
}
