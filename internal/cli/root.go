package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kentarofujiy/TaskJuggler/internal/importer"
	"github.com/kentarofujiy/TaskJuggler/internal/project"
)

// App carries the cross-command wiring for the CLI: where the project
// file lives by default, how build steps are reported, and whether the
// process is attached to an interactive terminal.
type App struct {
	// DefaultFile is used when a command is run without --file.
	DefaultFile string

	// Observer receives project build events; nil means silent.
	Observer importer.BuildObserver

	// IsInteractive reports whether stdin is an interactive terminal.
	// Commands that need a TTY (browse, the init wizard) consult it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tj" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tj",
		Short: "Inspect hierarchical project files with scenario-aware attributes",
		// Errors are reported once by main.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Accept --no_sample as --no-sample and friends.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newCheckCmd(app),
		newShowCmd(app),
		newInspectCmd(app),
		newBrowseCmd(app),
		newInitCmd(app),
	)

	return root
}

// projectFile resolves the project file path from the command flag,
// the app default, or the conventional name, in that order.
func (a *App) projectFile(flag string) string {
	if flag != "" {
		return flag
	}
	if a.DefaultFile != "" {
		return a.DefaultFile
	}
	return "project.json"
}

// loadProject reads, validates and builds the project at path,
// reporting build steps to the app observer when one is set.
func (a *App) loadProject(path string) (*project.Project, error) {
	var opts []importer.BuildOption
	if a.Observer != nil {
		opts = append(opts, importer.WithObserver(a.Observer))
	}
	return importer.LoadProject(path, opts...)
}
