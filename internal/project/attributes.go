package project

import "github.com/kentarofujiy/TaskJuggler/internal/proptree"

// TaskAttributes returns the attribute schema every task set starts
// with. Callers may register further definitions on top.
func TaskAttributes() []*proptree.AttributeDef {
	return []*proptree.AttributeDef{
		{ID: "priority", Name: "Priority", Kind: proptree.KindInt, ScenarioSpecific: true, Inheritable: true, Default: 500},
		{ID: "projectid", Name: "Project ID", Kind: proptree.KindString, Inheritable: true, Default: ""},
		{ID: "start", Name: "Start", Kind: proptree.KindDate, ScenarioSpecific: true, Inheritable: true},
		{ID: "end", Name: "End", Kind: proptree.KindDate, ScenarioSpecific: true, Inheritable: true},
		{ID: "effort", Name: "Effort", Kind: proptree.KindDuration, ScenarioSpecific: true},
		{ID: "duration", Name: "Duration", Kind: proptree.KindDuration, ScenarioSpecific: true},
		{ID: "complete", Name: "Completion", Kind: proptree.KindFloat, ScenarioSpecific: true, Default: 0.0},
		{ID: "milestone", Name: "Milestone", Kind: proptree.KindBool, ScenarioSpecific: true, Default: false},
		{ID: "note", Name: "Note", Kind: proptree.KindString, Default: ""},
		{ID: "flags", Name: "Flags", Kind: proptree.KindStringList, ScenarioSpecific: true, Inheritable: true},
		{ID: "responsible", Name: "Responsible", Kind: proptree.KindReference, ScenarioSpecific: true, Inheritable: true},
		{ID: "allocate", Name: "Allocations", Kind: proptree.KindStringList, ScenarioSpecific: true, Inheritable: true},
	}
}

// ResourceAttributes returns the attribute schema every resource set
// starts with.
func ResourceAttributes() []*proptree.AttributeDef {
	return []*proptree.AttributeDef{
		{ID: "rate", Name: "Rate", Kind: proptree.KindFloat, ScenarioSpecific: true, Inheritable: true, Default: 0.0},
		{ID: "vacation", Name: "Vacations", Kind: proptree.KindStringList, ScenarioSpecific: true, Inheritable: true},
		{ID: "workinghours", Name: "Working Hours", Kind: proptree.KindStringList, ScenarioSpecific: true, Inheritable: true},
		{ID: "efficiency", Name: "Efficiency", Kind: proptree.KindFloat, ScenarioSpecific: true, Inheritable: true, Default: 1.0},
		{ID: "email", Name: "Email", Kind: proptree.KindString, Default: ""},
		{ID: "flags", Name: "Flags", Kind: proptree.KindStringList, ScenarioSpecific: true, Inheritable: true},
	}
}
