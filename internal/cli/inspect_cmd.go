package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kentarofujiy/TaskJuggler/internal/cli/formatter"
	"github.com/kentarofujiy/TaskJuggler/internal/project"
	"github.com/kentarofujiy/TaskJuggler/internal/proptree"
)

func newInspectCmd(app *App) *cobra.Command {
	var file, scenarioID string
	var resources, raw bool

	cmd := &cobra.Command{
		Use:   "inspect ID",
		Short: "Show a node's attributes with their provenance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.loadProject(app.projectFile(file))
			if err != nil {
				return err
			}
			n, err := resolveNode(p, args[0], resources)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if raw {
				fmt.Fprint(out, n.Dump())
				return nil
			}

			scenarios := p.Scenarios()
			if scenarioID != "" {
				sc, err := resolveScenario(p, scenarioID)
				if err != nil {
					return err
				}
				scenarios = []*project.Scenario{sc}
			}

			title := "Task"
			if n.Owner() == p.Resources {
				title = "Resource"
			}
			fmt.Fprint(out, formatter.RenderBox(title, inspectBody(n, scenarios)))
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Project file (JSON)")
	cmd.Flags().StringVarP(&scenarioID, "scenario", "s", "", "Limit scenario sections to one scenario")
	cmd.Flags().BoolVarP(&resources, "resources", "r", false, "Resolve the id against the resource hierarchy")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the raw diagnostic dump instead")
	return cmd
}

func inspectBody(n *proptree.Node, scenarios []*project.Scenario) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", formatter.Bold(n.Name()), formatter.Dim(n.FullID())))
	b.WriteString(fmt.Sprintf("  %s  #%d\n", formatter.Dim("SEQ   "), n.SequenceNo()))
	b.WriteString(fmt.Sprintf("  %s  %d\n", formatter.Dim("LEVEL "), n.Level()))
	b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("WBS   "), n.WBS()))
	if parent := n.Parent(); parent != nil {
		b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("PARENT"), parent.FullID()))
	}
	if n.Container() {
		b.WriteString(fmt.Sprintf("  %s  %d\n", formatter.Dim("KIDS  "), len(n.Children())))
	}

	if ids := n.AttributeIDs(); len(ids) > 0 {
		b.WriteString("\n")
		b.WriteString(formatter.Header("Attributes"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(ids))
		for _, id := range ids {
			v, err := n.Get(id)
			if err != nil {
				continue
			}
			rows = append(rows, []string{
				id,
				attrCell(id, v),
				formatter.ProvenancePill(n.Provided(id), n.Inherited(id)),
			})
		}
		b.WriteString(formatter.RenderTable([]string{"ATTRIBUTE", "VALUE", "SOURCE"}, rows))
	}

	for _, sc := range scenarios {
		idx := sc.Index()
		ids := n.ScenarioAttributeIDs(idx)
		if len(ids) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(formatter.Header("Scenario " + sc.ID()))
		b.WriteString("\n")
		rows := make([][]string, 0, len(ids))
		for _, id := range ids {
			v, err := n.GetScenario(id, idx)
			if err != nil {
				continue
			}
			rows = append(rows, []string{
				id,
				attrCell(id, v),
				formatter.ProvenancePill(n.ScenarioProvided(id, idx), n.ScenarioInherited(id, idx)),
			})
		}
		b.WriteString(formatter.RenderTable([]string{"ATTRIBUTE", "VALUE", "SOURCE"}, rows))
	}

	return b.String()
}

// attrCell renders a table cell for an attribute value. Completion
// percentages get a bar, everything else the standard value styling.
func attrCell(id string, v any) string {
	if id == "complete" {
		if pct, ok := v.(float64); ok {
			return formatter.RenderCompletion(pct, 12)
		}
	}
	return formatter.Value(v)
}
