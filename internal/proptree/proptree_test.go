package proptree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeProject is a minimal scenario axis for tests: parents[i] holds
// the parent index of scenario i, -1 for top-level scenarios.
type fakeProject struct {
	parents []int
	globals map[string]any
}

func (p *fakeProject) ScenarioCount() int { return len(p.parents) }

func (p *fakeProject) ScenarioParent(idx int) (int, bool) {
	if idx < 0 || idx >= len(p.parents) || p.parents[idx] < 0 {
		return 0, false
	}
	return p.parents[idx], true
}

func (p *fakeProject) GlobalValue(attributeID string) (any, bool) {
	v, ok := p.globals[attributeID]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// chainProject builds a project with n scenarios forming one chain:
// scenario 0 is the root, each following scenario is a child of the
// previous one.
func chainProject(n int) *fakeProject {
	parents := make([]int, n)
	for i := range parents {
		parents[i] = i - 1
	}
	return &fakeProject{parents: parents}
}

func testDefs() []*AttributeDef {
	return []*AttributeDef{
		{ID: "priority", Name: "Priority", Kind: KindInt, ScenarioSpecific: true, Inheritable: true, Default: 500},
		{ID: "projectid", Name: "Project ID", Kind: KindString, Inheritable: true, Default: ""},
		{ID: "note", Name: "Note", Kind: KindString, Default: ""},
		{ID: "flags", Name: "Flags", Kind: KindStringList, ScenarioSpecific: true, Inheritable: true},
		{ID: "effort", Name: "Effort", Kind: KindDuration, ScenarioSpecific: true},
	}
}

func newTestSet(t *testing.T, project Project, flat bool) *Set {
	t.Helper()
	s := NewSet(project, flat)
	for _, def := range testDefs() {
		s.AddAttributeDef(def)
	}
	return s
}

// mustNode creates a node or fails the test.
func mustNode(t *testing.T, s *Set, id, name string, parent *Node) *Node {
	t.Helper()
	n, err := s.NewNode(id, name, parent)
	require.NoError(t, err)
	return n
}

// buildForest creates the standard test forest:
//
//	r1            r2
//	├─ c1         └─ c3
//	│  ├─ g1
//	│  └─ g2
//	└─ c2
func buildForest(t *testing.T, s *Set) map[string]*Node {
	t.Helper()
	nodes := make(map[string]*Node)
	nodes["r1"] = mustNode(t, s, "r1", "Root One", nil)
	nodes["c1"] = mustNode(t, s, "c1", "Child One", nodes["r1"])
	nodes["g1"] = mustNode(t, s, "g1", "Grandchild One", nodes["c1"])
	nodes["g2"] = mustNode(t, s, "g2", "Grandchild Two", nodes["c1"])
	nodes["c2"] = mustNode(t, s, "c2", "Child Two", nodes["r1"])
	nodes["r2"] = mustNode(t, s, "r2", "Root Two", nil)
	nodes["c3"] = mustNode(t, s, "c3", "Child Three", nodes["r2"])
	return nodes
}
