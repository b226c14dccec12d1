package proptree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarValue_DefaultAndSet(t *testing.T) {
	def := &AttributeDef{ID: "priority", Kind: KindInt, Default: 500}
	v := newScalarValue(def)

	assert.Equal(t, 500, v.Get())
	assert.False(t, v.Provided())
	assert.False(t, v.Inherited())

	v.Set(100)
	assert.Equal(t, 100, v.Get())
	assert.True(t, v.Provided())
	assert.False(t, v.Inherited())
}

func TestScalarValue_InheritRefusesTouchedHolders(t *testing.T) {
	def := &AttributeDef{ID: "priority", Kind: KindInt, Default: 500}

	provided := newScalarValue(def)
	provided.Set(100)
	provided.Inherit(900)
	assert.Equal(t, 100, provided.Get())
	assert.False(t, provided.Inherited())

	inherited := newScalarValue(def)
	inherited.Inherit(900)
	inherited.Inherit(300)
	assert.Equal(t, 900, inherited.Get(), "first inherit wins")
	assert.True(t, inherited.Inherited())
}

func TestScalarValue_SetAfterInherit(t *testing.T) {
	def := &AttributeDef{ID: "priority", Kind: KindInt, Default: 500}
	v := newScalarValue(def)
	v.Inherit(900)
	v.Set(100)

	assert.Equal(t, 100, v.Get())
	assert.True(t, v.Provided())
}

func TestListValue_DefaultIsCloned(t *testing.T) {
	def := &AttributeDef{ID: "flags", Kind: KindStringList, Default: []string{"a"}}
	v := newListValue(def)

	got, ok := v.Get().([]string)
	require.True(t, ok)
	got[0] = "mutated"

	fresh := newListValue(def)
	assert.Equal(t, []string{"a"}, fresh.Get(), "holders must not share the default slice")
}

func TestListValue_InheritClones(t *testing.T) {
	def := &AttributeDef{ID: "flags", Kind: KindStringList}
	parent := newListValue(def)
	parent.Set([]string{"urgent", "red"})

	child := newListValue(def)
	child.Inherit(parent.Get())

	childList := child.Get().([]string)
	childList[0] = "mutated"
	assert.Equal(t, []string{"urgent", "red"}, parent.Get())
}

func TestListValue_CoercesElementSlices(t *testing.T) {
	def := &AttributeDef{ID: "flags", Kind: KindStringList}
	v := newListValue(def)
	v.Set([]any{"a", "b"})

	assert.Equal(t, []string{"a", "b"}, v.Get())
}

func TestReferenceValue_NilUntilSet(t *testing.T) {
	def := &AttributeDef{ID: "responsible", Kind: KindReference}
	v := newReferenceValue(def)

	assert.Nil(t, v.Get())
	assert.Nil(t, v.Target())
}

func TestReferenceValue_SetAndInherit(t *testing.T) {
	s := newTestSet(t, nil, false)
	target := mustNode(t, s, "dev1", "Developer One", nil)
	def := &AttributeDef{ID: "responsible", Kind: KindReference}

	v := newReferenceValue(def)
	v.Set(target)
	assert.Same(t, target, v.Target())
	assert.Same(t, target, v.Get())

	child := newReferenceValue(def)
	child.Inherit(v.Get())
	assert.Same(t, target, child.Target())
	assert.True(t, child.Inherited())
}

func TestReferenceValue_SetNilClears(t *testing.T) {
	s := newTestSet(t, nil, false)
	target := mustNode(t, s, "dev1", "Developer One", nil)
	def := &AttributeDef{ID: "responsible", Kind: KindReference}

	v := newReferenceValue(def)
	v.Set(target)
	v.Set(nil)
	assert.Nil(t, v.Get())
	assert.True(t, v.Provided())
}

func TestFormatValue(t *testing.T) {
	s := newTestSet(t, nil, false)
	r := mustNode(t, s, "r", "Root", nil)
	c := mustNode(t, s, "c", "Child", r)

	cases := []struct {
		in   any
		want string
	}{
		{nil, "-"},
		{"", "-"},
		{"hello", "hello"},
		{true, "yes"},
		{false, "no"},
		{500, "500"},
		{0.75, "0.75"},
		{50.0, "50"},
		{time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "2025-03-01"},
		{10 * 24 * time.Hour, "10d"},
		{4 * time.Hour, "4h"},
		{90 * time.Minute, "90m"},
		{time.Duration(0), "0h"},
		{[]string{"a", "b"}, "a, b"},
		{[]string{}, "-"},
		{c, "r.c"},
		{(*Node)(nil), "-"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatValue(tc.in), "input %#v", tc.in)
	}
}

func TestValueEqual(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	s := newTestSet(t, nil, false)
	a := mustNode(t, s, "a", "A", nil)
	b := mustNode(t, s, "b", "B", nil)

	assert.True(t, valueEqual(nil, nil))
	assert.True(t, valueEqual(1, 1))
	assert.False(t, valueEqual(1, 2))
	assert.True(t, valueEqual([]string{"x"}, []string{"x"}))
	assert.False(t, valueEqual([]string{"x"}, []string{"y"}))
	assert.True(t, valueEqual([]string(nil), nil), "unset list equals nil default")
	assert.True(t, valueEqual(now, now.In(time.Local)))
	assert.True(t, valueEqual(a, a))
	assert.False(t, valueEqual(a, b))
	assert.False(t, valueEqual(a, nil))
}
