package proptree

import (
	"errors"
	"fmt"
)

// ErrUnknownAttribute is returned when an attribute id resolves to no
// declared holder in the table a lookup or write runs against.
var ErrUnknownAttribute = errors.New("unknown attribute")

// ErrUnknownScenario is returned when a scenario index is outside the
// node's scenario axis.
var ErrUnknownScenario = errors.New("unknown scenario")

// DeclareAttribute creates the empty holder(s) for def on this node:
// one per scenario for scenario-specific definitions, a single plain
// holder otherwise. Declaring an id again replaces the previous
// holder(s), resetting value and provenance.
func (n *Node) DeclareAttribute(def *AttributeDef) {
	if def.ScenarioSpecific {
		for i := range n.scenarioAttributes {
			n.scenarioAttributes[i][def.ID] = def.newValue(n)
		}
		return
	}
	n.attributes[def.ID] = def.newValue(n)
}

// Get returns the value of a plain attribute. The reserved ids "id",
// "name" and "seqno" resolve to the matching built-in fields.
func (n *Node) Get(attributeID string) (any, error) {
	switch attributeID {
	case ReservedID:
		return n.id, nil
	case ReservedName:
		return n.name, nil
	case ReservedSeqNo:
		return n.sequenceNo, nil
	}
	holder, ok := n.attributes[attributeID]
	if !ok {
		return nil, fmt.Errorf("get %q on %s: %w", attributeID, n.FullID(), ErrUnknownAttribute)
	}
	return holder.Get(), nil
}

// GetScenario returns the value of attributeID in the given scenario.
// Ids with no holder in that scenario's table fall back to the plain
// table, so callers can query any attribute through the scenario path.
func (n *Node) GetScenario(attributeID string, scenarioIdx int) (any, error) {
	if scenarioIdx >= 0 && scenarioIdx < len(n.scenarioAttributes) {
		if holder, ok := n.scenarioAttributes[scenarioIdx][attributeID]; ok {
			return holder.Get(), nil
		}
	}
	return n.Get(attributeID)
}

// Set stores value into the plain holder for attributeID and marks it
// provided.
func (n *Node) Set(attributeID string, value any) error {
	holder, ok := n.attributes[attributeID]
	if !ok {
		return fmt.Errorf("set %q on %s: %w", attributeID, n.FullID(), ErrUnknownAttribute)
	}
	holder.Set(value)
	return nil
}

// SetScenario stores value for attributeID in the given scenario. The
// write resolves against the scenario table first and the plain table
// second; ids declared in neither fail. After the resolved holder is
// written, the scenario slot for (attributeID, scenarioIdx) is always
// written as well, creating the holder on demand, so the override
// stays observable through GetScenario even for plain attributes.
func (n *Node) SetScenario(attributeID string, scenarioIdx int, value any) error {
	if scenarioIdx < 0 || scenarioIdx >= len(n.scenarioAttributes) {
		return fmt.Errorf("set %q in scenario %d on %s: %w",
			attributeID, scenarioIdx, n.FullID(), ErrUnknownScenario)
	}
	scen := n.scenarioAttributes[scenarioIdx]
	if _, ok := scen[attributeID]; !ok {
		holder, ok := n.attributes[attributeID]
		if !ok {
			return fmt.Errorf("set %q in scenario %d on %s: %w",
				attributeID, scenarioIdx, n.FullID(), ErrUnknownAttribute)
		}
		holder.Set(value)
		scen[attributeID] = holder.Def().newValue(n)
	}
	scen[attributeID].Set(value)
	return nil
}

// Provided reports whether the plain holder for attributeID carries an
// explicitly set value. Absent holders report false.
func (n *Node) Provided(attributeID string) bool {
	holder, ok := n.attributes[attributeID]
	return ok && holder.Provided()
}

// Inherited reports whether the plain holder for attributeID carries a
// value copied in by an inheritance pass. Absent holders report false.
func (n *Node) Inherited(attributeID string) bool {
	holder, ok := n.attributes[attributeID]
	return ok && holder.Inherited()
}

// ScenarioProvided reports whether the holder for attributeID in the
// given scenario carries an explicitly set value. Absent holders and
// out-of-range scenario indices report false.
func (n *Node) ScenarioProvided(attributeID string, scenarioIdx int) bool {
	if scenarioIdx < 0 || scenarioIdx >= len(n.scenarioAttributes) {
		return false
	}
	holder, ok := n.scenarioAttributes[scenarioIdx][attributeID]
	return ok && holder.Provided()
}

// ScenarioInherited reports whether the holder for attributeID in the
// given scenario carries an inherited value. Absent holders and
// out-of-range scenario indices report false.
func (n *Node) ScenarioInherited(attributeID string, scenarioIdx int) bool {
	if scenarioIdx < 0 || scenarioIdx >= len(n.scenarioAttributes) {
		return false
	}
	holder, ok := n.scenarioAttributes[scenarioIdx][attributeID]
	return ok && holder.Inherited()
}

// AttributeValue returns the plain holder for attributeID, or nil.
func (n *Node) AttributeValue(attributeID string) AttributeValue {
	return n.attributes[attributeID]
}

// ScenarioAttributeValue returns the holder for attributeID in the
// given scenario, or nil.
func (n *Node) ScenarioAttributeValue(attributeID string, scenarioIdx int) AttributeValue {
	if scenarioIdx < 0 || scenarioIdx >= len(n.scenarioAttributes) {
		return nil
	}
	return n.scenarioAttributes[scenarioIdx][attributeID]
}
