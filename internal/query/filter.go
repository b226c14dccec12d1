// Package query compiles boolean filter expressions and evaluates
// them against property nodes. Expressions see the node's built-in
// fields and every declared attribute as plain variables, with
// scenario-specific attributes resolved in a caller-chosen scenario.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/kentarofujiy/TaskJuggler/internal/proptree"
)

// Filter is a compiled boolean expression over node attributes.
type Filter struct {
	src     string
	program *vm.Program
}

// Compile parses and compiles a filter expression such as
// "priority > 500 && leaf". Identifiers that resolve to no attribute
// evaluate to nil rather than failing, so one filter can serve sets
// with different schemas.
func Compile(src string) (*Filter, error) {
	if src == "" {
		return nil, fmt.Errorf("filter expression must not be empty")
	}
	program, err := expr.Compile(src,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", src, err)
	}
	return &Filter{src: src, program: program}, nil
}

// Source returns the original expression text.
func (f *Filter) Source() string { return f.src }

// Match evaluates the filter against node with scenario-specific
// attributes resolved at scenarioIdx. Non-boolean results are an
// error.
func (f *Filter) Match(node *proptree.Node, scenarioIdx int) (bool, error) {
	out, err := expr.Run(f.program, Environment(node, scenarioIdx))
	if err != nil {
		return false, fmt.Errorf("filter %q on %s: %w", f.src, node.FullID(), err)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q on %s: result %T is not a boolean", f.src, node.FullID(), out)
	}
	return matched, nil
}

// Environment builds the variable table one node exposes to filters:
// the built-in fields, then every declared attribute. References
// appear as the target's full id so filters compare plain strings.
func Environment(node *proptree.Node, scenarioIdx int) map[string]any {
	env := map[string]any{
		"id":        node.ID(),
		"fullid":    node.FullID(),
		"name":      node.Name(),
		"seqno":     node.SequenceNo(),
		"level":     node.Level(),
		"wbs":       node.WBS(),
		"leaf":      node.Leaf(),
		"container": node.Container(),
	}
	for _, def := range node.Owner().AttributeDefs() {
		var v any
		var err error
		if def.ScenarioSpecific {
			v, err = node.GetScenario(def.ID, scenarioIdx)
		} else {
			v, err = node.Get(def.ID)
		}
		if err != nil {
			continue
		}
		if ref, ok := v.(*proptree.Node); ok {
			v = ref.FullID()
		}
		env[def.ID] = v
	}
	return env
}
