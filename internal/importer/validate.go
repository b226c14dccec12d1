package importer

import (
	"fmt"
	"time"

	"github.com/kentarofujiy/TaskJuggler/internal/project"
	"github.com/kentarofujiy/TaskJuggler/internal/proptree"
)

var validAppliesTo = map[string]bool{"": true, "tasks": true, "resources": true, "both": true}

// ValidateProjectFile checks a parsed project file before building.
// It returns every problem found, not just the first.
func ValidateProjectFile(file *ProjectFile) []error {
	var errs []error

	errs = append(errs, validateHeader(&file.Project)...)

	scenarioIDs := make(map[string]bool)
	errs = append(errs, validateScenarios(file.Scenarios, scenarioIDs)...)
	if len(file.Scenarios) == 0 {
		scenarioIDs[defaultScenarioID] = true
	}

	errs = append(errs, validateAttributes(file.Attributes)...)

	taskDefs, resourceDefs := schemaTables(file.Attributes)
	nodeIDs := make(map[string]bool)

	resourceIDs := make(map[string]bool)
	errs = append(errs, validateNodes("resources", file.Resources, file.Project.FlatIDs,
		resourceDefs, scenarioIDs, resourceIDs)...)
	for id := range resourceIDs {
		nodeIDs[id] = true
	}

	taskIDs := make(map[string]bool)
	errs = append(errs, validateNodes("tasks", file.Tasks, file.Project.FlatIDs,
		taskDefs, scenarioIDs, taskIDs)...)
	for id := range taskIDs {
		nodeIDs[id] = true
	}

	errs = append(errs, validateReferences("resources", file.Resources, resourceDefs, nodeIDs)...)
	errs = append(errs, validateReferences("tasks", file.Tasks, taskDefs, nodeIDs)...)

	return errs
}

func validateHeader(p *ProjectImport) []error {
	var errs []error

	if p.ID == "" {
		errs = append(errs, fmt.Errorf("project.id is required"))
	}
	if p.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}

	return errs
}

func validateScenarios(scenarios []ScenarioImport, scenarioIDs map[string]bool) []error {
	var errs []error

	for i, sc := range scenarios {
		prefix := fmt.Sprintf("scenarios[%d]", i)

		if sc.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if scenarioIDs[sc.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate scenario %q", prefix, sc.ID))
		} else {
			scenarioIDs[sc.ID] = true
		}

		if sc.Parent != "" && !scenarioIDs[sc.Parent] {
			errs = append(errs, fmt.Errorf("%s.parent: scenario %q not found (must appear earlier in scenarios list)", prefix, sc.Parent))
		}
	}

	return errs
}

func validateAttributes(attrs []AttributeImport) []error {
	var errs []error

	seen := make(map[string]bool)
	for i, a := range attrs {
		prefix := fmt.Sprintf("attributes[%d]", i)

		if a.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[a.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate attribute %q", prefix, a.ID))
		} else {
			seen[a.ID] = true
		}

		switch a.ID {
		case proptree.ReservedID, proptree.ReservedName, proptree.ReservedSeqNo:
			errs = append(errs, fmt.Errorf("%s.id: %q is reserved", prefix, a.ID))
		}

		if a.Kind == "" {
			errs = append(errs, fmt.Errorf("%s.kind is required", prefix))
		} else if !proptree.ValidKinds[a.Kind] {
			errs = append(errs, fmt.Errorf("%s.kind: invalid value %q", prefix, a.Kind))
		} else if a.Default != nil {
			if proptree.Kind(a.Kind) == proptree.KindReference {
				errs = append(errs, fmt.Errorf("%s.default: reference attributes cannot carry a default", prefix))
			} else if err := checkValueShape(proptree.Kind(a.Kind), a.Default); err != nil {
				errs = append(errs, fmt.Errorf("%s.default: %v", prefix, err))
			}
		}

		if !validAppliesTo[a.AppliesTo] {
			errs = append(errs, fmt.Errorf("%s.applies_to: invalid value %q (expected tasks, resources or both)", prefix, a.AppliesTo))
		}
	}

	return errs
}

func validateNodes(section string, nodes []NodeImport, flatIDs bool,
	defs map[string]*proptree.AttributeDef, scenarioIDs, fullIDs map[string]bool) []error {
	var errs []error

	for i, n := range nodes {
		prefix := fmt.Sprintf("%s[%d]", section, i)

		if n.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		}
		if n.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}

		if n.Parent != "" && !fullIDs[n.Parent] {
			errs = append(errs, fmt.Errorf("%s.parent: id %q not found (must appear earlier in %s list)", prefix, n.Parent, section))
		}

		if n.ID != "" {
			fullID := n.ID
			if !flatIDs && n.Parent != "" {
				fullID = n.Parent + "." + n.ID
			}
			if fullIDs[fullID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, fullID))
			} else {
				fullIDs[fullID] = true
			}
		}

		errs = append(errs, validateValues(prefix+".values", n.Values, defs, false)...)

		for scenarioID, values := range n.ScenarioValues {
			vprefix := fmt.Sprintf("%s.scenario_values[%s]", prefix, scenarioID)
			if !scenarioIDs[scenarioID] {
				errs = append(errs, fmt.Errorf("%s: scenario %q not declared", vprefix, scenarioID))
			}
			errs = append(errs, validateValues(vprefix, values, defs, true)...)
		}
	}

	return errs
}

// validateValues checks attribute ids and value shapes. Scenario
// writes may target plain attributes too, so only plain writes against
// scenario-specific ids are rejected here.
func validateValues(prefix string, values map[string]any,
	defs map[string]*proptree.AttributeDef, scenarioWrite bool) []error {
	var errs []error

	for id, raw := range values {
		def, ok := defs[id]
		if !ok {
			errs = append(errs, fmt.Errorf("%s.%s: unknown attribute", prefix, id))
			continue
		}
		if def.ScenarioSpecific && !scenarioWrite {
			errs = append(errs, fmt.Errorf("%s.%s: scenario-specific attribute needs a scenario_values entry", prefix, id))
			continue
		}
		if err := checkValueShape(def.Kind, raw); err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %v", prefix, id, err))
		}
	}

	return errs
}

func checkValueShape(kind proptree.Kind, raw any) error {
	switch kind {
	case proptree.KindString, proptree.KindReference:
		if _, ok := raw.(string); !ok {
			return fmt.Errorf("expected a string, got %T", raw)
		}
	case proptree.KindInt:
		switch v := raw.(type) {
		case int:
		case float64:
			if v != float64(int(v)) {
				return fmt.Errorf("expected a whole number, got %v", v)
			}
		default:
			return fmt.Errorf("expected a number, got %T", raw)
		}
	case proptree.KindFloat:
		switch raw.(type) {
		case int, float64:
		default:
			return fmt.Errorf("expected a number, got %T", raw)
		}
	case proptree.KindBool:
		if _, ok := raw.(bool); !ok {
			return fmt.Errorf("expected a boolean, got %T", raw)
		}
	case proptree.KindDate:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("expected a date string, got %T", raw)
		}
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return fmt.Errorf("invalid date format %q (expected YYYY-MM-DD)", s)
		}
	case proptree.KindDuration:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("expected a duration string, got %T", raw)
		}
		if _, err := ParseDuration(s); err != nil {
			return err
		}
	case proptree.KindStringList:
		switch l := raw.(type) {
		case []string:
		case []any:
			for _, e := range l {
				if _, ok := e.(string); !ok {
					return fmt.Errorf("expected a list of strings, got element %T", e)
				}
			}
		default:
			return fmt.Errorf("expected a list of strings, got %T", raw)
		}
	}
	return nil
}

// validateReferences checks that reference values name a declared
// resource or task. It runs after both id sets are collected, so
// references may point forward in the file.
func validateReferences(section string, nodes []NodeImport,
	defs map[string]*proptree.AttributeDef, nodeIDs map[string]bool) []error {
	var errs []error

	check := func(prefix string, values map[string]any) {
		for id, raw := range values {
			def, ok := defs[id]
			if !ok || def.Kind != proptree.KindReference {
				continue
			}
			target, ok := raw.(string)
			if !ok {
				continue
			}
			if !nodeIDs[target] {
				errs = append(errs, fmt.Errorf("%s.%s: reference %q names no declared resource or task", prefix, id, target))
			}
		}
	}

	for i, n := range nodes {
		prefix := fmt.Sprintf("%s[%d]", section, i)
		check(prefix+".values", n.Values)
		for scenarioID, values := range n.ScenarioValues {
			check(fmt.Sprintf("%s.scenario_values[%s]", prefix, scenarioID), values)
		}
	}

	return errs
}

// schemaTables builds the attribute tables the validator checks node
// values against: the standard schemas plus the file's custom
// attributes.
func schemaTables(attrs []AttributeImport) (tasks, resources map[string]*proptree.AttributeDef) {
	tasks = make(map[string]*proptree.AttributeDef)
	resources = make(map[string]*proptree.AttributeDef)
	for _, def := range project.TaskAttributes() {
		tasks[def.ID] = def
	}
	for _, def := range project.ResourceAttributes() {
		resources[def.ID] = def
	}
	for i := range attrs {
		def := customDef(&attrs[i])
		switch attrs[i].AppliesTo {
		case "resources":
			resources[def.ID] = def
		case "both":
			tasks[def.ID] = def
			resources[def.ID] = def
		default:
			tasks[def.ID] = def
		}
	}
	return tasks, resources
}
