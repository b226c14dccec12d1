package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/kentarofujiy/TaskJuggler/internal/cli/formatter"
)

// tjHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func tjHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

var idPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// validateID accepts lowercase identifiers as used for project,
// scenario and node ids.
func validateID(s string) error {
	if !idPattern.MatchString(s) {
		return fmt.Errorf("use lowercase letters, digits and underscores, starting with a letter")
	}
	return nil
}

// validateScenarioList accepts a comma-separated list of ids.
func validateScenarioList(s string) error {
	for _, id := range splitScenarioList(s) {
		if err := validateID(id); err != nil {
			return fmt.Errorf("%q: %v", id, err)
		}
	}
	return nil
}

func splitScenarioList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// initWizard collects the project header interactively. The inputs are
// pre-filled with the defaults used in non-interactive mode.
func initWizard(id, name, scenarios *string, sample *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project id").
				Placeholder("acme").
				Value(id).
				Validate(validateID),
			huh.NewInput().
				Title("Project name").
				Placeholder("ACME Rollout").
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Scenarios (comma-separated, first is the baseline)").
				Placeholder("plan, actual").
				Value(scenarios).
				Validate(validateScenarioList),
			huh.NewConfirm().
				Title("Include sample tasks and resources?").
				Affirmative("Yes").
				Negative("No").
				Value(sample),
		),
	).WithTheme(tjHuhTheme()).WithShowHelp(false)
}
