package proptree

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// AttributeValue wraps one attribute value together with its
// provenance. Provided means a caller stored the value explicitly,
// Inherited means an inheritance pass copied it in. Either flag set
// blocks further inheritance into the holder.
type AttributeValue interface {
	// Def returns the definition the holder was declared for.
	Def() *AttributeDef
	// Get returns the current value. Until the holder is set or
	// inherits one, that is the definition's default.
	Get() any
	// Set stores v and marks the holder provided.
	Set(v any)
	// Inherit stores v and marks the holder inherited. Holders that
	// are already provided or inherited are left untouched.
	Inherit(v any)
	Provided() bool
	Inherited() bool
}

// ScalarValue holds a single value such as a string, int, float64,
// bool, time.Time or time.Duration.
type ScalarValue struct {
	def       *AttributeDef
	value     any
	provided  bool
	inherited bool
}

func newScalarValue(def *AttributeDef) *ScalarValue {
	return &ScalarValue{def: def, value: def.Default}
}

func (v *ScalarValue) Def() *AttributeDef { return v.def }
func (v *ScalarValue) Get() any           { return v.value }
func (v *ScalarValue) Provided() bool     { return v.provided }
func (v *ScalarValue) Inherited() bool    { return v.inherited }

func (v *ScalarValue) Set(val any) {
	v.value = val
	v.provided = true
}

func (v *ScalarValue) Inherit(val any) {
	if v.provided || v.inherited {
		return
	}
	v.value = val
	v.inherited = true
}

// ListValue holds an ordered list of strings. Inheriting copies the
// slice so parent and child lists stay independently mutable.
type ListValue struct {
	def       *AttributeDef
	value     []string
	provided  bool
	inherited bool
}

func newListValue(def *AttributeDef) *ListValue {
	lv := &ListValue{def: def}
	if d, ok := def.Default.([]string); ok {
		lv.value = slices.Clone(d)
	}
	return lv
}

func (v *ListValue) Def() *AttributeDef { return v.def }
func (v *ListValue) Get() any           { return v.value }
func (v *ListValue) Provided() bool     { return v.provided }
func (v *ListValue) Inherited() bool    { return v.inherited }

func (v *ListValue) Set(val any) {
	v.value = toStringList(val)
	v.provided = true
}

func (v *ListValue) Inherit(val any) {
	if v.provided || v.inherited {
		return
	}
	v.value = slices.Clone(toStringList(val))
	v.inherited = true
}

func toStringList(val any) []string {
	switch l := val.(type) {
	case nil:
		return nil
	case []string:
		return l
	case []any:
		out := make([]string, 0, len(l))
		for _, e := range l {
			out = append(out, fmt.Sprint(e))
		}
		return out
	default:
		return []string{fmt.Sprint(l)}
	}
}

// ReferenceValue points at another node, typically in a sibling
// property set. Inheriting shares the referenced node.
type ReferenceValue struct {
	def       *AttributeDef
	target    *Node
	provided  bool
	inherited bool
}

func newReferenceValue(def *AttributeDef) *ReferenceValue {
	return &ReferenceValue{def: def}
}

func (v *ReferenceValue) Def() *AttributeDef { return v.def }
func (v *ReferenceValue) Provided() bool     { return v.provided }
func (v *ReferenceValue) Inherited() bool    { return v.inherited }

func (v *ReferenceValue) Get() any {
	if v.target == nil {
		return nil
	}
	return v.target
}

// Target returns the referenced node, or nil.
func (v *ReferenceValue) Target() *Node { return v.target }

func (v *ReferenceValue) Set(val any) {
	v.target, _ = val.(*Node)
	v.provided = true
}

func (v *ReferenceValue) Inherit(val any) {
	if v.provided || v.inherited {
		return
	}
	v.target, _ = val.(*Node)
	v.inherited = true
}

// FormatValue renders an attribute value the way dumps and CLI output
// display it. Empty and nil values render as "-".
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		if val == "" {
			return "-"
		}
		return val
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format("2006-01-02")
	case time.Duration:
		return formatDuration(val)
	case []string:
		if len(val) == 0 {
			return "-"
		}
		return strings.Join(val, ", ")
	case *Node:
		if val == nil {
			return "-"
		}
		return val.FullID()
	default:
		return fmt.Sprint(val)
	}
}

// formatDuration prefers whole days, then whole hours, then minutes.
func formatDuration(d time.Duration) string {
	if d == 0 {
		return "0h"
	}
	if d%(24*time.Hour) == 0 {
		return strconv.FormatInt(int64(d/(24*time.Hour)), 10) + "d"
	}
	if d%time.Hour == 0 {
		return strconv.FormatInt(int64(d/time.Hour), 10) + "h"
	}
	return strconv.FormatInt(int64(d/time.Minute), 10) + "m"
}

// valueEqual compares attribute values for the "differs from default"
// checks in dumps and listings. Lists compare element-wise, node
// references by identity.
func valueEqual(a, b any) bool {
	la, aIsList := a.([]string)
	lb, bIsList := b.([]string)
	if aIsList || bIsList {
		return slices.Equal(la, lb)
	}
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	if na, ok := a.(*Node); ok {
		nb, ok := b.(*Node)
		return ok && na == nb
	}
	return reflect.DeepEqual(a, b)
}
