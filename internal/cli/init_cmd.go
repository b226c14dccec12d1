package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kentarofujiy/TaskJuggler/internal/cli/formatter"
	"github.com/kentarofujiy/TaskJuggler/internal/importer"
)

func newInitCmd(app *App) *cobra.Command {
	var file string
	var force, noSample bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new project file",
		Long: `Init writes a starter project file. On an interactive terminal it
asks for the project header first; otherwise it falls back to
defaults, which makes it usable from scripts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.projectFile(file)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			id := "acme"
			name := "ACME Rollout"
			scenarioCSV := "plan, actual"
			sample := !noSample

			if app.IsInteractive != nil && app.IsInteractive() {
				if err := initWizard(&id, &name, &scenarioCSV, &sample).Run(); err != nil {
					return err
				}
			}

			pf := scaffoldProjectFile(id, name, splitScenarioList(scenarioCSV), sample)
			data, err := json.MarshalIndent(pf, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s wrote %s\n", formatter.StyleGreen.Render("✓"), path)
			fmt.Fprintf(out, "  %s tj check -f %s\n", formatter.Dim("next:"), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Destination file (JSON)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&noSample, "no-sample", false, "Skip the sample tasks and resources")
	return cmd
}

// scaffoldProjectFile assembles the starter file. Kept free of I/O so
// the shape is testable.
func scaffoldProjectFile(id, name string, scenarioIDs []string, sample bool) *importer.ProjectFile {
	pf := &importer.ProjectFile{
		Project: importer.ProjectImport{
			ID:   id,
			Name: name,
			Globals: map[string]any{
				"priority": 500,
			},
		},
	}

	for i, scID := range scenarioIDs {
		sc := importer.ScenarioImport{ID: scID}
		if i > 0 {
			sc.Parent = scenarioIDs[i-1]
		}
		pf.Scenarios = append(pf.Scenarios, sc)
	}

	if !sample {
		pf.Tasks = []importer.NodeImport{}
		return pf
	}

	baseline := "plan"
	if len(scenarioIDs) > 0 {
		baseline = scenarioIDs[0]
	}

	pf.Resources = []importer.NodeImport{
		{ID: "team", Name: "Team"},
		{ID: "alice", Parent: "team", Name: "Alice", ScenarioValues: map[string]map[string]any{
			baseline: {"rate": 40.0},
		}},
	}
	pf.Tasks = []importer.NodeImport{
		{ID: "build", Name: "Build", Values: map[string]any{
			"note": "replace with real phases",
		}},
		{ID: "design", Parent: "build", Name: "Design", ScenarioValues: map[string]map[string]any{
			baseline: {"effort": "5d", "responsible": "team.alice"},
		}},
		{ID: "implement", Parent: "build", Name: "Implement", ScenarioValues: map[string]map[string]any{
			baseline: {"effort": "10d", "responsible": "team.alice"},
		}},
	}
	return pf
}
