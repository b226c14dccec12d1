package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kentarofujiy/TaskJuggler/internal/cli/formatter"
	"github.com/kentarofujiy/TaskJuggler/internal/importer"
)

func newCheckCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a project file without building it",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.projectFile(file)
			out := cmd.OutOrStdout()

			pf, err := importer.LoadProjectFile(path)
			if err != nil {
				return err
			}

			errs := importer.ValidateProjectFile(pf)
			if len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(out, "%s %v\n", formatter.StyleRed.Render("✗"), e)
				}
				return fmt.Errorf("%d problem(s) in %s", len(errs), path)
			}

			fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("✓"), path)
			fmt.Fprintf(out, "  %s %d scenarios, %d resources, %d tasks\n",
				formatter.Dim("declares"), max(len(pf.Scenarios), 1), len(pf.Resources), len(pf.Tasks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Project file (JSON)")
	return cmd
}
