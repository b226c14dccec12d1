package proptree

import (
	"fmt"
	"sort"
	"strings"
)

// Dump renders a diagnostic description of the node: full id, name,
// sequence number and parent, followed by every plain attribute whose
// value differs from the schema default, and one section per scenario
// that overrides at least one attribute. Attributes appear in schema
// declaration order.
func (n *Node) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %q\n", n.FullID(), n.name)
	fmt.Fprintf(&b, "  Sequence no: %d\n", n.sequenceNo)
	if n.parent != nil {
		fmt.Fprintf(&b, "  Parent: %s\n", n.parent.FullID())
	}
	for _, id := range n.AttributeIDs() {
		holder := n.attributes[id]
		if valueEqual(holder.Get(), n.set.DefaultValue(id)) {
			continue
		}
		fmt.Fprintf(&b, "  %s: %s\n", id, FormatValue(holder.Get()))
	}
	for idx := range n.scenarioAttributes {
		var section strings.Builder
		for _, id := range n.ScenarioAttributeIDs(idx) {
			holder := n.scenarioAttributes[idx][id]
			if valueEqual(holder.Get(), n.set.DefaultValue(id)) {
				continue
			}
			fmt.Fprintf(&section, "    %s: %s\n", id, FormatValue(holder.Get()))
		}
		if section.Len() > 0 {
			fmt.Fprintf(&b, "  Scenario %d:\n", idx)
			b.WriteString(section.String())
		}
	}
	return b.String()
}

// AttributeIDs returns the ids with a plain holder on this node, in
// schema declaration order with any schema-less extras sorted last.
func (n *Node) AttributeIDs() []string {
	return orderedIDs(n.set.defs, func(id string) bool {
		_, ok := n.attributes[id]
		return ok
	}, n.attributes)
}

// ScenarioAttributeIDs returns the ids with a holder in the given
// scenario's table, in schema declaration order with extras sorted
// last. Out-of-range indices yield nil.
func (n *Node) ScenarioAttributeIDs(scenarioIdx int) []string {
	if scenarioIdx < 0 || scenarioIdx >= len(n.scenarioAttributes) {
		return nil
	}
	table := n.scenarioAttributes[scenarioIdx]
	return orderedIDs(n.set.defs, func(id string) bool {
		_, ok := table[id]
		return ok
	}, table)
}

func orderedIDs(defs []*AttributeDef, present func(string) bool, table map[string]AttributeValue) []string {
	ids := make([]string, 0, len(table))
	seen := make(map[string]bool, len(table))
	for _, def := range defs {
		if present(def.ID) {
			ids = append(ids, def.ID)
			seen[def.ID] = true
		}
	}
	var extra []string
	for id := range table {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(ids, extra...)
}
