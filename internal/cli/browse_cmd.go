package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	var file, scenarioID string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the project interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("browse needs an interactive terminal; use show for plain output")
			}

			p, err := app.loadProject(app.projectFile(file))
			if err != nil {
				return err
			}
			sc, err := resolveScenario(p, scenarioID)
			if err != nil {
				return err
			}

			prog := tea.NewProgram(newBrowseModel(p, sc.Index()), tea.WithAltScreen())
			_, err = prog.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Project file (JSON)")
	cmd.Flags().StringVarP(&scenarioID, "scenario", "s", "", "Scenario to start in")
	return cmd
}
