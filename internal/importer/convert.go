package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kentarofujiy/TaskJuggler/internal/project"
	"github.com/kentarofujiy/TaskJuggler/internal/proptree"
)

// defaultScenarioID is used when a project file declares no scenarios.
const defaultScenarioID = "plan"

type builder struct {
	observer BuildObserver
}

// BuildOption configures a Build run.
type BuildOption func(*builder)

// WithObserver wires an observer that receives build progress events.
func WithObserver(obs BuildObserver) BuildOption {
	return func(b *builder) {
		if obs != nil {
			b.observer = obs
		}
	}
}

// Build constructs a fully prepared project from a project file:
// scenarios, custom attributes, then resources and tasks with their
// values, then the inheritance passes. Call ValidateProjectFile first;
// Build assumes the file is valid and returns the first hard error it
// still runs into.
func Build(file *ProjectFile, opts ...BuildOption) (*project.Project, error) {
	b := &builder{observer: NoopBuildObserver{}}
	for _, opt := range opts {
		opt(b)
	}

	var popts []project.Option
	if file.Project.FlatIDs {
		popts = append(popts, project.WithFlatNamespaces())
	}
	p := project.New(file.Project.ID, file.Project.Name, popts...)
	b.observe("project_created", 0, map[string]any{"project": file.Project.ID})

	scenarios := file.Scenarios
	if len(scenarios) == 0 {
		scenarios = []ScenarioImport{{ID: defaultScenarioID, Name: "Plan"}}
	}
	for _, sc := range scenarios {
		name := sc.Name
		if name == "" {
			name = sc.ID
		}
		scenario, err := p.AddScenario(sc.ID, name, sc.Parent)
		if err != nil {
			return nil, fmt.Errorf("declaring scenario %q: %w", sc.ID, err)
		}
		if sc.Enabled != nil && !*sc.Enabled {
			if err := scenario.SetEnabled(false); err != nil {
				return nil, err
			}
		}
	}
	b.observe("scenarios_declared", 0, map[string]any{"count": len(scenarios)})

	for i := range file.Attributes {
		def := customDef(&file.Attributes[i])
		switch file.Attributes[i].AppliesTo {
		case "resources":
			p.Resources.AddAttributeDef(def)
		case "both":
			p.Tasks.AddAttributeDef(def)
			p.Resources.AddAttributeDef(def)
		default:
			p.Tasks.AddAttributeDef(def)
		}
	}
	if len(file.Attributes) > 0 {
		b.observe("attributes_declared", 0, map[string]any{"count": len(file.Attributes)})
	}

	taskDefs, resourceDefs := schemaTables(file.Attributes)
	for id, raw := range file.Project.Globals {
		def := taskDefs[id]
		if def == nil {
			def = resourceDefs[id]
		}
		v, err := b.coerceValue(p, def, raw)
		if err != nil {
			return nil, fmt.Errorf("global %q: %w", id, err)
		}
		p.SetGlobal(id, v)
	}

	// Structure first, values second, so references may point at nodes
	// declared later in the file.
	if err := createNodes(p.Resources, "resources", file.Resources); err != nil {
		return nil, err
	}
	if err := createNodes(p.Tasks, "tasks", file.Tasks); err != nil {
		return nil, err
	}
	b.observe("nodes_created", 0, map[string]any{
		"resources": p.Resources.Items(),
		"tasks":     p.Tasks.Items(),
	})

	if err := b.applyValues(p, p.Resources, "resources", file.Resources, file.Project.FlatIDs); err != nil {
		return nil, err
	}
	if err := b.applyValues(p, p.Tasks, "tasks", file.Tasks, file.Project.FlatIDs); err != nil {
		return nil, err
	}

	started := time.Now()
	p.Prepare()
	b.observe("inheritance_settled", time.Since(started), nil)

	return p, nil
}

// LoadProject reads, validates and builds a project from path.
func LoadProject(path string, opts ...BuildOption) (*project.Project, error) {
	file, err := LoadProjectFile(path)
	if err != nil {
		return nil, err
	}
	if errs := ValidateProjectFile(file); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", path, errors.Join(errs...))
	}
	return Build(file, opts...)
}

func (b *builder) observe(step string, d time.Duration, fields map[string]any) {
	b.observer.ObserveBuild(BuildEvent{Step: step, Duration: d, Fields: fields})
}

func createNodes(set *proptree.Set, section string, list []NodeImport) error {
	for _, imp := range list {
		var parent *proptree.Node
		if imp.Parent != "" {
			pn, ok := set.Node(imp.Parent)
			if !ok {
				return fmt.Errorf("%s %q: parent %q not found", section, imp.ID, imp.Parent)
			}
			parent = pn
		}
		if _, err := set.NewNode(imp.ID, imp.Name, parent); err != nil {
			return fmt.Errorf("%s: %w", section, err)
		}
	}
	return nil
}

func (b *builder) applyValues(p *project.Project, set *proptree.Set,
	section string, list []NodeImport, flatIDs bool) error {
	for _, imp := range list {
		fullID := imp.ID
		if !flatIDs && imp.Parent != "" {
			fullID = imp.Parent + "." + imp.ID
		}
		node, ok := set.Node(fullID)
		if !ok {
			return fmt.Errorf("%s %q: node vanished between passes", section, fullID)
		}

		for id, raw := range imp.Values {
			v, err := b.coerceValue(p, set.AttributeDef(id), raw)
			if err != nil {
				return fmt.Errorf("%s %q: attribute %q: %w", section, fullID, id, err)
			}
			if err := node.Set(id, v); err != nil {
				return fmt.Errorf("%s: %w", section, err)
			}
		}

		for scenarioID, values := range imp.ScenarioValues {
			sc, ok := p.ScenarioByID(scenarioID)
			if !ok {
				return fmt.Errorf("%s %q: %w: %q", section, fullID, proptree.ErrUnknownScenario, scenarioID)
			}
			for id, raw := range values {
				v, err := b.coerceValue(p, set.AttributeDef(id), raw)
				if err != nil {
					return fmt.Errorf("%s %q: attribute %q: %w", section, fullID, id, err)
				}
				if err := node.SetScenario(id, sc.Index(), v); err != nil {
					return fmt.Errorf("%s: %w", section, err)
				}
			}
		}
	}
	return nil
}

// coerceValue converts a JSON value into the attribute's native
// representation. A nil def passes the value through so the write
// fails with the property model's own unknown-attribute error.
func (b *builder) coerceValue(p *project.Project, def *proptree.AttributeDef, raw any) (any, error) {
	if def == nil {
		return raw, nil
	}
	if def.Kind == proptree.KindReference {
		target, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a node id string, got %T", raw)
		}
		if node, ok := p.Resources.Node(target); ok {
			return node, nil
		}
		if node, ok := p.Tasks.Node(target); ok {
			return node, nil
		}
		return nil, fmt.Errorf("reference %q names no declared resource or task", target)
	}
	return coerceStatic(def.Kind, raw)
}

// coerceStatic converts JSON-decoded values for all kinds that need no
// project context.
func coerceStatic(kind proptree.Kind, raw any) (any, error) {
	switch kind {
	case proptree.KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %T", raw)
		}
		return s, nil
	case proptree.KindInt:
		switch v := raw.(type) {
		case int:
			return v, nil
		case float64:
			if v != float64(int(v)) {
				return nil, fmt.Errorf("expected a whole number, got %v", v)
			}
			return int(v), nil
		}
		return nil, fmt.Errorf("expected a number, got %T", raw)
	case proptree.KindFloat:
		switch v := raw.(type) {
		case int:
			return float64(v), nil
		case float64:
			return v, nil
		}
		return nil, fmt.Errorf("expected a number, got %T", raw)
	case proptree.KindBool:
		v, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("expected a boolean, got %T", raw)
		}
		return v, nil
	case proptree.KindDate:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a date string, got %T", raw)
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("invalid date format %q (expected YYYY-MM-DD)", s)
		}
		return t, nil
	case proptree.KindDuration:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a duration string, got %T", raw)
		}
		return ParseDuration(s)
	case proptree.KindStringList:
		switch l := raw.(type) {
		case []string:
			return l, nil
		case []any:
			out := make([]string, 0, len(l))
			for _, e := range l {
				s, ok := e.(string)
				if !ok {
					return nil, fmt.Errorf("expected a list of strings, got element %T", e)
				}
				out = append(out, s)
			}
			return out, nil
		}
		return nil, fmt.Errorf("expected a list of strings, got %T", raw)
	}
	return raw, nil
}

// customDef turns a declared attribute into a schema definition,
// coercing the default value into its native representation.
func customDef(a *AttributeImport) *proptree.AttributeDef {
	name := a.Name
	if name == "" {
		name = a.ID
	}
	def := &proptree.AttributeDef{
		ID:               a.ID,
		Name:             name,
		Kind:             proptree.Kind(a.Kind),
		ScenarioSpecific: a.ScenarioSpecific,
		Inheritable:      a.Inheritable,
	}
	if a.Default != nil && def.Kind != proptree.KindReference {
		if v, err := coerceStatic(def.Kind, a.Default); err == nil {
			def.Default = v
		}
	}
	return def
}

// ParseDuration parses durations written as a number plus a unit:
// "30m", "4h", "10d", "2w". Days are 24 hours, weeks 7 days.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration %q (expected <number><m|h|d|w>)", s)
	}
	num, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil || num < 0 {
		return 0, fmt.Errorf("invalid duration %q (expected <number><m|h|d|w>)", s)
	}
	var base time.Duration
	switch s[len(s)-1] {
	case 'm':
		base = time.Minute
	case 'h':
		base = time.Hour
	case 'd':
		base = 24 * time.Hour
	case 'w':
		base = 7 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("invalid duration unit in %q (expected m, h, d or w)", s)
	}
	return time.Duration(num * float64(base)), nil
}
