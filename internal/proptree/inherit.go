package proptree

// InheritAttributes runs the structural inheritance pass for this
// node. Nodes with a parent inherit every inheritable attribute whose
// parent holder is provided or inherited; top-level nodes instead pick
// up project globals, but only for ids on the set's global-inheritance
// list. Plain attributes are settled first, then scenario-specific
// ones per scenario.
//
// The pass assumes the parent was processed first; Set.InheritAll
// guarantees that through creation order. Holders that are already
// provided or inherited ignore the copy, so re-running the pass leaves
// values unchanged.
func (n *Node) InheritAttributes() {
	for _, def := range n.set.defs {
		if def.ScenarioSpecific || !def.Inheritable {
			continue
		}
		holder, ok := n.attributes[def.ID]
		if !ok {
			continue
		}
		if n.parent != nil {
			if n.parent.Provided(def.ID) || n.parent.Inherited(def.ID) {
				if v, err := n.parent.Get(def.ID); err == nil {
					holder.Inherit(v)
				}
			}
		} else if n.set.globalInheritable(def.ID) {
			if v, ok := n.set.projectValue(def.ID); ok {
				holder.Inherit(v)
			}
		}
	}

	for _, def := range n.set.defs {
		if !def.ScenarioSpecific || !def.Inheritable {
			continue
		}
		for idx := range n.scenarioAttributes {
			holder, ok := n.scenarioAttributes[idx][def.ID]
			if !ok {
				continue
			}
			if n.parent != nil {
				if n.parent.ScenarioProvided(def.ID, idx) || n.parent.ScenarioInherited(def.ID, idx) {
					if v, err := n.parent.GetScenario(def.ID, idx); err == nil {
						holder.Inherit(v)
					}
				}
			} else if n.set.globalInheritable(def.ID) {
				if v, ok := n.set.projectValue(def.ID); ok {
					holder.Inherit(v)
				}
			}
		}
	}
}

// InheritAttributesFromScenarios copies scenario-specific values from
// each scenario's parent scenario into scenarios that carry no value
// of their own yet. Scenario indices are visited in increasing order;
// the owning project keeps every parent index below its children's, so
// one pass settles whole scenario chains.
func (n *Node) InheritAttributesFromScenarios() {
	if n.set.project == nil {
		return
	}
	for _, def := range n.set.defs {
		if !def.ScenarioSpecific {
			continue
		}
		for idx := range n.scenarioAttributes {
			parentIdx, ok := n.set.project.ScenarioParent(idx)
			if !ok {
				continue
			}
			if !n.ScenarioProvided(def.ID, parentIdx) && !n.ScenarioInherited(def.ID, parentIdx) {
				continue
			}
			if n.ScenarioProvided(def.ID, idx) || n.ScenarioInherited(def.ID, idx) {
				continue
			}
			holder, ok := n.scenarioAttributes[idx][def.ID]
			if !ok {
				continue
			}
			if v, err := n.GetScenario(def.ID, parentIdx); err == nil {
				holder.Inherit(v)
			}
		}
	}
}
