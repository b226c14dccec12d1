package proptree

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Project is the view of the owning project that the property model
// consumes: the scenario axis plus a table of global defaults that
// back-fill top-level nodes during structural inheritance.
type Project interface {
	// ScenarioCount returns the number of scenarios. Nodes size their
	// scenario attribute tables with it at construction.
	ScenarioCount() int
	// ScenarioParent resolves the parent scenario of the scenario at
	// idx; ok is false when it has none. Implementations keep parent
	// indices numerically below their children's.
	ScenarioParent(idx int) (parentIdx int, ok bool)
	// GlobalValue looks up a project-wide default for attributeID; ok
	// is false when the project has no usable value for it.
	GlobalValue(attributeID string) (any, bool)
}

// DefaultGlobalInheritance lists the attribute ids a top-level node may
// inherit from project globals. Only cross-cutting settings cascade in
// from project scope; the list is configuration, not schema.
var DefaultGlobalInheritance = []string{
	"priority", "projectid", "rate", "vacation", "workinghours",
}

// ErrDuplicateID is returned when a new node's full id collides with an
// existing node of the same set.
var ErrDuplicateID = errors.New("duplicate property id")

// Set owns a forest of property nodes and the attribute schema they
// share. It hands out sequence numbers, keeps creation order and
// resolves nodes by full id.
type Set struct {
	project       Project
	flatNamespace bool

	defs    []*AttributeDef // declaration order
	defByID map[string]*AttributeDef

	nodes    []*Node // creation order; parents precede their children
	topLevel []*Node
	byFullID map[string]*Node

	globalInheritance map[string]bool
}

// SetOption adjusts a Set at construction time.
type SetOption func(*Set)

// WithGlobalInheritance replaces the attribute ids top-level nodes may
// inherit from project globals.
func WithGlobalInheritance(ids ...string) SetOption {
	return func(s *Set) {
		s.globalInheritance = make(map[string]bool, len(ids))
		for _, id := range ids {
			s.globalInheritance[id] = true
		}
	}
}

// NewSet creates an empty property set bound to project. With a flat
// namespace node ids stay bare and must be unique across the whole
// set; otherwise full ids are dotted paths through the ancestry.
func NewSet(project Project, flatNamespace bool, opts ...SetOption) *Set {
	s := &Set{
		project:           project,
		flatNamespace:     flatNamespace,
		defByID:           make(map[string]*AttributeDef),
		byFullID:          make(map[string]*Node),
		globalInheritance: make(map[string]bool, len(DefaultGlobalInheritance)),
	}
	for _, id := range DefaultGlobalInheritance {
		s.globalInheritance[id] = true
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Project returns the owning project view.
func (s *Set) Project() Project { return s.project }

// FlatNamespace reports whether node ids ignore ancestry.
func (s *Set) FlatNamespace() bool { return s.flatNamespace }

// AddAttributeDef registers def and declares its holder(s) on every
// node already in the set. Registering an id again replaces the
// definition but keeps its position in declaration order.
func (s *Set) AddAttributeDef(def *AttributeDef) {
	if _, exists := s.defByID[def.ID]; exists {
		for i, d := range s.defs {
			if d.ID == def.ID {
				s.defs[i] = def
				break
			}
		}
	} else {
		s.defs = append(s.defs, def)
	}
	s.defByID[def.ID] = def
	for _, n := range s.nodes {
		n.DeclareAttribute(def)
	}
}

// AttributeDefs returns the registered definitions in declaration
// order.
func (s *Set) AttributeDefs() []*AttributeDef {
	out := make([]*AttributeDef, len(s.defs))
	copy(out, s.defs)
	return out
}

// AttributeDef returns the definition for id, or nil.
func (s *Set) AttributeDef(id string) *AttributeDef { return s.defByID[id] }

// KnownAttribute reports whether id is part of the schema.
func (s *Set) KnownAttribute(id string) bool {
	_, ok := s.defByID[id]
	return ok
}

// DefaultValue returns the schema default for id, nil for unknown ids.
func (s *Set) DefaultValue(id string) any {
	def, ok := s.defByID[id]
	if !ok {
		return nil
	}
	return def.Default
}

// NewNode creates a node under parent (nil for top level), assigns its
// sequence numbers and declares every known attribute on it. An empty
// id gets a generated identifier. The full id must be unique within
// the set; on collision nothing is created.
func (s *Set) NewNode(id, name string, parent *Node) (*Node, error) {
	if id == "" {
		id = uuid.New().String()
	}
	fullID := id
	if !s.flatNamespace && parent != nil {
		fullID = parent.FullID() + "." + id
	}
	if _, exists := s.byFullID[fullID]; exists {
		return nil, fmt.Errorf("property %q: %w", fullID, ErrDuplicateID)
	}
	n := newNode(s, id, name, parent)
	s.nodes = append(s.nodes, n)
	s.byFullID[fullID] = n
	if parent == nil {
		s.topLevel = append(s.topLevel, n)
	}
	for _, def := range s.defs {
		n.DeclareAttribute(def)
	}
	return n, nil
}

// Node resolves a node by its full id.
func (s *Set) Node(fullID string) (*Node, bool) {
	n, ok := s.byFullID[fullID]
	return n, ok
}

// Nodes returns every node in creation order.
func (s *Set) Nodes() []*Node {
	out := make([]*Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Roots returns the top-level nodes in creation order.
func (s *Set) Roots() []*Node {
	out := make([]*Node, len(s.topLevel))
	copy(out, s.topLevel)
	return out
}

// Items returns the number of nodes created in the set.
func (s *Set) Items() int { return len(s.nodes) }

// TopLevelItems returns the number of top-level nodes.
func (s *Set) TopLevelItems() int { return len(s.topLevel) }

// MaxDepth returns the deepest node level plus one, 0 for an empty
// set.
func (s *Set) MaxDepth() int {
	depth := 0
	for _, n := range s.nodes {
		if l := n.Level() + 1; l > depth {
			depth = l
		}
	}
	return depth
}

// InheritAll runs the structural inheritance pass over every node.
// Creation order guarantees parents are processed before children, so
// values cascade down whole subtrees in one pass.
func (s *Set) InheritAll() {
	for _, n := range s.nodes {
		n.InheritAttributes()
	}
}

// InheritAllFromScenarios runs the scenario inheritance pass over
// every node.
func (s *Set) InheritAllFromScenarios() {
	for _, n := range s.nodes {
		n.InheritAttributesFromScenarios()
	}
}

// globalInheritable reports whether top-level nodes may pick up id
// from project globals.
func (s *Set) globalInheritable(id string) bool {
	return s.globalInheritance[id]
}

// projectValue looks up a project global, nil-project safe.
func (s *Set) projectValue(attributeID string) (any, bool) {
	if s.project == nil {
		return nil, false
	}
	return s.project.GlobalValue(attributeID)
}
