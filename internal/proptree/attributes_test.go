package proptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ReservedIDs(t *testing.T) {
	s := newTestSet(t, nil, false)
	r := mustNode(t, s, "r", "Root", nil)
	c := mustNode(t, s, "c", "Child", r)

	v, err := c.Get("id")
	require.NoError(t, err)
	assert.Equal(t, "c", v)

	v, err = c.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "Child", v)

	v, err = c.Get("seqno")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestGet_DefaultUntilSet(t *testing.T) {
	s := newTestSet(t, nil, false)
	n := mustNode(t, s, "n", "Node", nil)

	v, err := n.Get("note")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, n.Set("note", "hello"))
	v, err = n.Get("note")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestGet_UnknownAttribute(t *testing.T) {
	s := newTestSet(t, nil, false)
	n := mustNode(t, s, "n", "Node", nil)

	_, err := n.Get("nosuch")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAttribute)
	assert.Contains(t, err.Error(), "nosuch")
}

func TestGet_ScenarioSpecificIDNotInPlainTable(t *testing.T) {
	s := newTestSet(t, chainProject(2), false)
	n := mustNode(t, s, "n", "Node", nil)

	_, err := n.Get("priority")
	assert.ErrorIs(t, err, ErrUnknownAttribute, "scenario-specific ids have no plain holder")
}

func TestSet_UnknownAttribute(t *testing.T) {
	s := newTestSet(t, nil, false)
	n := mustNode(t, s, "n", "Node", nil)

	err := n.Set("nosuch", 1)
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestSet_MarksProvided(t *testing.T) {
	s := newTestSet(t, nil, false)
	n := mustNode(t, s, "n", "Node", nil)

	assert.False(t, n.Provided("note"))
	require.NoError(t, n.Set("note", "x"))
	assert.True(t, n.Provided("note"))
	assert.False(t, n.Inherited("note"))
}

func TestGetScenario_PerScenarioValues(t *testing.T) {
	s := newTestSet(t, chainProject(2), false)
	n := mustNode(t, s, "n", "Node", nil)

	require.NoError(t, n.SetScenario("priority", 0, 100))
	require.NoError(t, n.SetScenario("priority", 1, 900))

	v, err := n.GetScenario("priority", 0)
	require.NoError(t, err)
	assert.Equal(t, 100, v)

	v, err = n.GetScenario("priority", 1)
	require.NoError(t, err)
	assert.Equal(t, 900, v)
}

func TestGetScenario_DefaultUntilSet(t *testing.T) {
	s := newTestSet(t, chainProject(2), false)
	n := mustNode(t, s, "n", "Node", nil)

	v, err := n.GetScenario("priority", 1)
	require.NoError(t, err)
	assert.Equal(t, 500, v)
}

func TestGetScenario_FallsBackToPlainTable(t *testing.T) {
	s := newTestSet(t, chainProject(2), false)
	n := mustNode(t, s, "n", "Node", nil)
	require.NoError(t, n.Set("note", "plain value"))

	v, err := n.GetScenario("note", 1)
	require.NoError(t, err)
	assert.Equal(t, "plain value", v)
}

func TestGetScenario_ReservedIDs(t *testing.T) {
	s := newTestSet(t, chainProject(1), false)
	n := mustNode(t, s, "n", "Node", nil)

	v, err := n.GetScenario("seqno", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestGetScenario_OutOfRangeFallsBack(t *testing.T) {
	s := newTestSet(t, chainProject(2), false)
	n := mustNode(t, s, "n", "Node", nil)
	require.NoError(t, n.Set("note", "plain"))

	v, err := n.GetScenario("note", 99)
	require.NoError(t, err)
	assert.Equal(t, "plain", v)

	_, err = n.GetScenario("priority", 99)
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestSetScenario_ScenarioDeclaredID(t *testing.T) {
	s := newTestSet(t, chainProject(2), false)
	n := mustNode(t, s, "n", "Node", nil)

	require.NoError(t, n.SetScenario("priority", 1, 42))
	assert.True(t, n.ScenarioProvided("priority", 1))
	assert.False(t, n.ScenarioProvided("priority", 0))
	assert.False(t, n.Provided("priority"), "no plain holder involved")
}

func TestSetScenario_PlainFallbackWritesBoth(t *testing.T) {
	s := newTestSet(t, chainProject(2), false)
	n := mustNode(t, s, "n", "Node", nil)

	require.NoError(t, n.SetScenario("note", 1, "scoped"))

	assert.True(t, n.Provided("note"), "plain holder takes the fallback write")
	assert.True(t, n.ScenarioProvided("note", 1), "scenario slot is always written")

	v, err := n.Get("note")
	require.NoError(t, err)
	assert.Equal(t, "scoped", v)
}

func TestSetScenario_ScenarioSlotShadowsLaterPlainWrites(t *testing.T) {
	s := newTestSet(t, chainProject(2), false)
	n := mustNode(t, s, "n", "Node", nil)

	require.NoError(t, n.SetScenario("note", 1, "scoped"))
	require.NoError(t, n.Set("note", "rewritten"))

	v, err := n.GetScenario("note", 1)
	require.NoError(t, err)
	assert.Equal(t, "scoped", v, "scenario slot keeps its own value")

	v, err = n.GetScenario("note", 0)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", v, "scenario 0 has no slot and falls back")
}

func TestSetScenario_UnknownAttribute(t *testing.T) {
	s := newTestSet(t, chainProject(2), false)
	n := mustNode(t, s, "n", "Node", nil)

	err := n.SetScenario("nosuch", 0, 1)
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestSetScenario_OutOfRangeScenario(t *testing.T) {
	s := newTestSet(t, chainProject(2), false)
	n := mustNode(t, s, "n", "Node", nil)

	err := n.SetScenario("priority", 5, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownScenario)

	err = n.SetScenario("priority", -1, 1)
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestProvidedInherited_AbsentHolders(t *testing.T) {
	s := newTestSet(t, chainProject(1), false)
	n := mustNode(t, s, "n", "Node", nil)

	assert.False(t, n.Provided("nosuch"))
	assert.False(t, n.Inherited("nosuch"))
	assert.False(t, n.ScenarioProvided("nosuch", 0))
	assert.False(t, n.ScenarioInherited("nosuch", 0))
	assert.False(t, n.ScenarioProvided("priority", 99), "out-of-range scenario reports false")
	assert.False(t, n.ScenarioInherited("priority", -1))
}

func TestDeclareAttribute_RedeclareResets(t *testing.T) {
	s := newTestSet(t, nil, false)
	n := mustNode(t, s, "n", "Node", nil)
	require.NoError(t, n.Set("note", "old"))

	s.AddAttributeDef(&AttributeDef{ID: "note", Name: "Note", Kind: KindString, Default: "fresh"})

	v, err := n.Get("note")
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
	assert.False(t, n.Provided("note"), "redeclaring drops provenance")
}

func TestAddAttributeDef_DeclaresOnExistingNodes(t *testing.T) {
	s := newTestSet(t, nil, false)
	n := mustNode(t, s, "n", "Node", nil)

	s.AddAttributeDef(&AttributeDef{ID: "custom", Name: "Custom", Kind: KindInt, Default: 7})

	v, err := n.Get("custom")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestAddAttributeDef_KeepsDeclarationOrder(t *testing.T) {
	s := newTestSet(t, nil, false)

	s.AddAttributeDef(&AttributeDef{ID: "note", Name: "Replaced Note", Kind: KindString, Default: "n"})

	defs := s.AttributeDefs()
	require.Len(t, defs, len(testDefs()))
	assert.Equal(t, "note", defs[2].ID, "replacement keeps its slot")
	assert.Equal(t, "Replaced Note", defs[2].Name)
}

func TestAttributeValueAccessors(t *testing.T) {
	s := newTestSet(t, chainProject(1), false)
	n := mustNode(t, s, "n", "Node", nil)

	require.NotNil(t, n.AttributeValue("note"))
	assert.Nil(t, n.AttributeValue("priority"), "scenario-specific ids live in scenario tables")
	require.NotNil(t, n.ScenarioAttributeValue("priority", 0))
	assert.Nil(t, n.ScenarioAttributeValue("priority", 3))
}

func TestCustomFactoryIsUsed(t *testing.T) {
	s := NewSet(nil, false)
	var boundTo *Node
	s.AddAttributeDef(&AttributeDef{
		ID:   "tracked",
		Kind: KindString,
		Factory: func(def *AttributeDef, n *Node) AttributeValue {
			boundTo = n
			return newScalarValue(def)
		},
	})
	n := mustNode(t, s, "n", "Node", nil)

	assert.Same(t, n, boundTo)
	require.NoError(t, n.Set("tracked", "v"))
}
