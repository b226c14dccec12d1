package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kentarofujiy/TaskJuggler/internal/cli/formatter"
	"github.com/kentarofujiy/TaskJuggler/internal/proptree"
	"github.com/kentarofujiy/TaskJuggler/internal/query"
)

func newShowCmd(app *App) *cobra.Command {
	var file, scenarioID, filterSrc string
	var resources, flat bool
	var attrs []string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the task or resource hierarchy",
		Long: `Show renders the project's task hierarchy (or the resource
hierarchy with --resources) as a tree. Attribute values are resolved
against the selected scenario. A --filter expression marks
non-matching nodes dimmed instead of hiding them, so the tree shape
stays readable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.loadProject(app.projectFile(file))
			if err != nil {
				return err
			}
			sc, err := resolveScenario(p, scenarioID)
			if err != nil {
				return err
			}

			set := p.Tasks
			title := "Tasks"
			if resources {
				set = p.Resources
				title = "Resources"
			}

			var flt *query.Filter
			if filterSrc != "" {
				flt, err = query.Compile(filterSrc)
				if err != nil {
					return err
				}
			}

			items, err := treeItems(set, sc.Index(), flt, attrs)
			if err != nil {
				return err
			}
			if flat {
				for i := range items {
					items[i].Level = 0
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s  %s\n\n",
				formatter.Bold(p.Name()),
				formatter.Dim(title),
				formatter.ScenarioBadge(sc.ID(), sc.Enabled()))
			if len(items) == 0 {
				fmt.Fprintln(out, formatter.Dim("  (empty)"))
				return nil
			}
			fmt.Fprint(out, formatter.RenderTree(items))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Project file (JSON)")
	cmd.Flags().StringVarP(&scenarioID, "scenario", "s", "", "Scenario to resolve attribute values against")
	cmd.Flags().StringVar(&filterSrc, "filter", "", "Expression selecting nodes, e.g. 'priority > 500'")
	cmd.Flags().BoolVarP(&resources, "resources", "r", false, "Show the resource hierarchy instead of tasks")
	cmd.Flags().BoolVar(&flat, "flat", false, "List nodes without tree connectors, WBS order")
	cmd.Flags().StringSliceVar(&attrs, "attrs", nil, "Attribute values to show per node instead of the id badge")
	return cmd
}

// treeItems flattens a set into formatter items, resolving badges and
// filter matches against the given scenario.
func treeItems(set *proptree.Set, scenarioIdx int, flt *query.Filter, attrs []string) ([]formatter.TreeItem, error) {
	var items []formatter.TreeItem
	for _, root := range set.Roots() {
		for _, n := range root.All() {
			faded := false
			if flt != nil {
				match, err := flt.Match(n, scenarioIdx)
				if err != nil {
					return nil, err
				}
				faded = !match
			}
			items = append(items, formatter.TreeItem{
				Label:  n.Name(),
				WBS:    n.WBS(),
				Level:  n.Level(),
				IsLast: lastSibling(n),
				Leaf:   n.Leaf(),
				Detail: nodeBadge(n, scenarioIdx, attrs),
				Faded:  faded,
			})
		}
	}
	return items, nil
}

// lastSibling reports whether n is the final child of its parent.
// Top-level nodes never draw connectors, so the answer is unused there.
func lastSibling(n *proptree.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return true
	}
	return n.LevelSeqNo() == len(parent.Children())
}

// nodeBadge returns the tree badge: requested attribute values joined
// with a separator, or the node's full id when none were requested.
func nodeBadge(n *proptree.Node, scenarioIdx int, attrs []string) string {
	if len(attrs) == 0 {
		return n.FullID()
	}
	parts := make([]string, 0, len(attrs))
	for _, id := range attrs {
		v, err := n.GetScenario(id, scenarioIdx)
		if err != nil {
			parts = append(parts, "?")
			continue
		}
		parts = append(parts, proptree.FormatValue(v))
	}
	return strings.Join(parts, " · ")
}
