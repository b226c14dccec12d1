package project

import (
	"errors"
	"fmt"

	"github.com/kentarofujiy/TaskJuggler/internal/proptree"
)

// ErrScenariosFrozen is returned when a scenario is added after tasks
// or resources exist. Nodes size their per-scenario attribute tables
// at construction, so the axis must be complete first.
var ErrScenariosFrozen = errors.New("scenarios must be declared before tasks or resources")

// Scenario is one what-if variant of the project data. Scenarios are
// property nodes themselves; the position on the scenario axis is the
// node's creation rank.
type Scenario struct {
	node *proptree.Node
}

// ID returns the scenario identifier.
func (s *Scenario) ID() string { return s.node.ID() }

// Name returns the scenario display name.
func (s *Scenario) Name() string { return s.node.Name() }

// Index returns the scenario's position on the scenario axis.
func (s *Scenario) Index() int { return s.node.SequenceNo() - 1 }

// ParentIndex returns the axis position of the parent scenario; ok is
// false for top-level scenarios.
func (s *Scenario) ParentIndex() (int, bool) {
	parent := s.node.Parent()
	if parent == nil {
		return 0, false
	}
	return parent.SequenceNo() - 1, true
}

// Enabled reports whether the scenario takes part in reports and
// interactive views. Disabled scenarios still occupy their axis slot.
func (s *Scenario) Enabled() bool {
	v, err := s.node.Get("enabled")
	if err != nil {
		return true
	}
	enabled, ok := v.(bool)
	return !ok || enabled
}

// SetEnabled toggles the scenario's participation in reports.
func (s *Scenario) SetEnabled(enabled bool) error {
	return s.node.Set("enabled", enabled)
}

// AddScenario declares a scenario. parentID must reference a scenario
// declared earlier (empty for a top-level scenario), which keeps every
// parent's axis index below its children's; the scenario inheritance
// pass relies on that order. Adding scenarios is rejected once tasks
// or resources exist.
func (p *Project) AddScenario(id, name, parentID string) (*Scenario, error) {
	if p.Tasks.Items() > 0 || p.Resources.Items() > 0 {
		return nil, fmt.Errorf("adding scenario %q: %w", id, ErrScenariosFrozen)
	}
	var parent *proptree.Node
	if parentID != "" {
		node, ok := p.scenarios.Node(parentID)
		if !ok {
			return nil, fmt.Errorf("scenario %q parent %q: %w", id, parentID, proptree.ErrUnknownScenario)
		}
		parent = node
	}
	node, err := p.scenarios.NewNode(id, name, parent)
	if err != nil {
		return nil, err
	}
	sc := &Scenario{node: node}
	p.scenarioList = append(p.scenarioList, sc)
	return sc, nil
}

// ScenarioCount returns the number of declared scenarios.
func (p *Project) ScenarioCount() int { return len(p.scenarioList) }

// ScenarioParent resolves the parent axis index of the scenario at
// idx; ok is false for top-level scenarios and out-of-range indices.
func (p *Project) ScenarioParent(idx int) (int, bool) {
	if idx < 0 || idx >= len(p.scenarioList) {
		return 0, false
	}
	return p.scenarioList[idx].ParentIndex()
}

// Scenario returns the scenario at the given axis index.
func (p *Project) Scenario(idx int) (*Scenario, bool) {
	if idx < 0 || idx >= len(p.scenarioList) {
		return nil, false
	}
	return p.scenarioList[idx], true
}

// ScenarioByID resolves a scenario by its identifier.
func (p *Project) ScenarioByID(id string) (*Scenario, bool) {
	node, ok := p.scenarios.Node(id)
	if !ok {
		return nil, false
	}
	return p.scenarioList[node.SequenceNo()-1], true
}

// Scenarios returns all scenarios in axis order.
func (p *Project) Scenarios() []*Scenario {
	out := make([]*Scenario, len(p.scenarioList))
	copy(out, p.scenarioList)
	return out
}
