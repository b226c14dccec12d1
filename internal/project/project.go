// Package project ties the property model together: one Project owns
// the scenario axis, the project-wide defaults and the task and
// resource property sets.
package project

import (
	"github.com/kentarofujiy/TaskJuggler/internal/proptree"
)

// Project is the root container for all project data.
//
// Tasks use a hierarchical namespace (full ids are dotted paths),
// resources too; scenarios live in a flat namespace of their own. The
// project itself serves as the proptree.Project view of its sets.
type Project struct {
	id   string
	name string

	globals map[string]any

	scenarios    *proptree.Set
	scenarioList []*Scenario

	Tasks     *proptree.Set
	Resources *proptree.Set
}

// Option adjusts project construction.
type Option func(*config)

type config struct {
	flatNamespaces bool
}

// WithFlatNamespaces makes task and resource ids global instead of
// dotted ancestry paths.
func WithFlatNamespaces() Option {
	return func(c *config) { c.flatNamespaces = true }
}

// New creates a project with the standard task and resource schemas
// and an empty scenario axis. The project id is stored as the
// "projectid" global, so top-level tasks inherit it during the
// structural inheritance pass.
func New(id, name string, opts ...Option) *Project {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Project{
		id:      id,
		name:    name,
		globals: make(map[string]any),
	}
	p.scenarios = proptree.NewSet(p, true)
	p.scenarios.AddAttributeDef(&proptree.AttributeDef{
		ID: "enabled", Name: "Enabled", Kind: proptree.KindBool, Default: true,
	})
	p.Tasks = proptree.NewSet(p, cfg.flatNamespaces)
	for _, def := range TaskAttributes() {
		p.Tasks.AddAttributeDef(def)
	}
	p.Resources = proptree.NewSet(p, cfg.flatNamespaces)
	for _, def := range ResourceAttributes() {
		p.Resources.AddAttributeDef(def)
	}
	p.globals["projectid"] = id
	return p
}

// ID returns the project identifier.
func (p *Project) ID() string { return p.id }

// Name returns the project display name.
func (p *Project) Name() string { return p.name }

// SetGlobal stores a project-wide default. Top-level nodes pick
// globals up during structural inheritance when the attribute id is on
// the set's global-inheritance list.
func (p *Project) SetGlobal(attributeID string, v any) {
	p.globals[attributeID] = v
}

// GlobalValue returns the project-wide default for attributeID; ok is
// false when none is set or the stored value is nil.
func (p *Project) GlobalValue(attributeID string) (any, bool) {
	v, ok := p.globals[attributeID]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Prepare settles all derived attribute state: the structural
// inheritance pass first, then the scenario inheritance pass, for
// resources and tasks. Calling it again is harmless; settled holders
// refuse further copies.
func (p *Project) Prepare() {
	for _, set := range []*proptree.Set{p.Resources, p.Tasks} {
		set.InheritAll()
		set.InheritAllFromScenarios()
	}
}
