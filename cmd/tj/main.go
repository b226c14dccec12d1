package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/kentarofujiy/TaskJuggler/internal/cli"
	"github.com/kentarofujiy/TaskJuggler/internal/importer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cli.LoadConfig()
	if err != nil {
		return err
	}

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	app := &cli.App{
		DefaultFile: cfg.File,
	}
	if cfg.Verbose {
		app.Observer = importer.NewLogBuildObserver(os.Stderr)
	}

	// Detect an interactive terminal for the wizard and the browser.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
