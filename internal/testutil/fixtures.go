// Package testutil provides shared project fixtures for tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kentarofujiy/TaskJuggler/internal/importer"
	"github.com/kentarofujiy/TaskJuggler/internal/project"
	"github.com/stretchr/testify/require"
)

// FileOption mutates the sample project file before it is used.
type FileOption func(*importer.ProjectFile)

func WithFlatIDs() FileOption {
	return func(f *importer.ProjectFile) {
		f.Project.FlatIDs = true
	}
}

func WithGlobal(id string, v any) FileOption {
	return func(f *importer.ProjectFile) {
		if f.Project.Globals == nil {
			f.Project.Globals = map[string]any{}
		}
		f.Project.Globals[id] = v
	}
}

func WithAttribute(attr importer.AttributeImport) FileOption {
	return func(f *importer.ProjectFile) {
		f.Attributes = append(f.Attributes, attr)
	}
}

func WithScenario(sc importer.ScenarioImport) FileOption {
	return func(f *importer.ProjectFile) {
		f.Scenarios = append(f.Scenarios, sc)
	}
}

func WithTask(n importer.NodeImport) FileOption {
	return func(f *importer.ProjectFile) {
		f.Tasks = append(f.Tasks, n)
	}
}

func WithResource(n importer.NodeImport) FileOption {
	return func(f *importer.ProjectFile) {
		f.Resources = append(f.Resources, n)
	}
}

// SampleProjectFile returns the rollout project used across the CLI
// tests: two scenarios, a two level resource tree and a three level
// task tree with values on both the plain and the scenario axis.
func SampleProjectFile(opts ...FileOption) *importer.ProjectFile {
	f := &importer.ProjectFile{
		Project: importer.ProjectImport{
			ID:      "acme",
			Name:    "ACME Rollout",
			Globals: map[string]any{"priority": 500},
		},
		Scenarios: []importer.ScenarioImport{
			{ID: "plan", Name: "Plan"},
			{ID: "trial", Name: "Trial", Parent: "plan"},
		},
		Resources: []importer.NodeImport{
			{ID: "dev", Name: "Developers"},
			{ID: "dev1", Parent: "dev", Name: "Dev One", ScenarioValues: map[string]map[string]any{
				"plan": {"rate": 35.0},
			}},
			{ID: "dev2", Parent: "dev", Name: "Dev Two"},
		},
		Tasks: []importer.NodeImport{
			{ID: "rollout", Name: "Rollout", Values: map[string]any{"note": "flagship rollout"}},
			{ID: "prep", Parent: "rollout", Name: "Preparation", ScenarioValues: map[string]map[string]any{
				"plan": {
					"effort":      "10d",
					"start":       "2025-03-01",
					"complete":    50.0,
					"responsible": "dev.dev1",
				},
			}},
			{ID: "hire", Parent: "rollout.prep", Name: "Hiring"},
			{ID: "pilot", Parent: "rollout", Name: "Pilot", ScenarioValues: map[string]map[string]any{
				"plan": {"effort": "15d"},
			}},
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WriteProjectFile marshals the file into a temp directory and returns
// the path, ready to be handed to a command's --file flag.
func WriteProjectFile(t *testing.T, f *importer.ProjectFile) string {
	t.Helper()
	data, err := json.MarshalIndent(f, "", "  ")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// BuildProject converts the file into a settled project, failing the
// test on any build error.
func BuildProject(t *testing.T, f *importer.ProjectFile) *project.Project {
	t.Helper()
	p, err := importer.Build(f)
	require.NoError(t, err)
	return p
}

// SampleProject is shorthand for BuildProject(t, SampleProjectFile(opts...)).
func SampleProject(t *testing.T, opts ...FileOption) *project.Project {
	t.Helper()
	return BuildProject(t, SampleProjectFile(opts...))
}
