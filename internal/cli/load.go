package cli

import (
	"fmt"
	"strings"

	"github.com/kentarofujiy/TaskJuggler/internal/project"
	"github.com/kentarofujiy/TaskJuggler/internal/proptree"
)

// resolveScenario maps a --scenario flag value to a declared scenario.
// An empty id selects the first scenario on the axis.
func resolveScenario(p *project.Project, id string) (*project.Scenario, error) {
	if id == "" {
		sc, ok := p.Scenario(0)
		if !ok {
			return nil, fmt.Errorf("project declares no scenarios")
		}
		return sc, nil
	}
	sc, ok := p.ScenarioByID(id)
	if !ok {
		ids := make([]string, 0, p.ScenarioCount())
		for _, s := range p.Scenarios() {
			ids = append(ids, s.ID())
		}
		return nil, fmt.Errorf("unknown scenario %q (declared: %s)", id, strings.Join(ids, ", "))
	}
	return sc, nil
}

// resolveNode finds a node by full id. Tasks are searched first unless
// the resources set is forced; ids present in both sets need the flag.
func resolveNode(p *project.Project, fullID string, resources bool) (*proptree.Node, error) {
	if resources {
		if n, ok := p.Resources.Node(fullID); ok {
			return n, nil
		}
		return nil, fmt.Errorf("no resource with id %q", fullID)
	}
	if n, ok := p.Tasks.Node(fullID); ok {
		return n, nil
	}
	if n, ok := p.Resources.Node(fullID); ok {
		return n, nil
	}
	return nil, fmt.Errorf("no task or resource with id %q", fullID)
}
