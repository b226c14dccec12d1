package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ProjectFile is the top-level JSON structure of a project definition.
type ProjectFile struct {
	Project    ProjectImport     `json:"project"`
	Scenarios  []ScenarioImport  `json:"scenarios,omitempty"`
	Attributes []AttributeImport `json:"attributes,omitempty"`
	Resources  []NodeImport      `json:"resources,omitempty"`
	Tasks      []NodeImport      `json:"tasks"`
}

// ProjectImport defines the project-level fields: identity, the
// project-wide defaults top-level nodes may inherit, and whether node
// ids form one flat namespace instead of dotted paths.
type ProjectImport struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Globals map[string]any `json:"globals,omitempty"`
	FlatIDs bool           `json:"flat_ids,omitempty"`
}

// ScenarioImport declares one scenario. A parent must be declared
// earlier in the list; the first entries are the axis roots.
type ScenarioImport struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Parent  string `json:"parent,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// AttributeImport declares a custom attribute type on top of the
// standard task and resource schemas.
type AttributeImport struct {
	ID               string `json:"id"`
	Name             string `json:"name,omitempty"`
	Kind             string `json:"kind"`
	AppliesTo        string `json:"applies_to,omitempty"` // tasks, resources or both; default tasks
	ScenarioSpecific bool   `json:"scenario_specific,omitempty"`
	Inheritable      bool   `json:"inheritable,omitempty"`
	Default          any    `json:"default,omitempty"`
}

// NodeImport declares one task or resource. Parent references the
// parent's full id and must appear earlier in the same list. Values
// holds plain attribute writes; ScenarioValues holds per-scenario
// writes keyed by scenario id.
type NodeImport struct {
	ID             string                    `json:"id"`
	Parent         string                    `json:"parent,omitempty"`
	Name           string                    `json:"name"`
	Values         map[string]any            `json:"values,omitempty"`
	ScenarioValues map[string]map[string]any `json:"scenario_values,omitempty"`
}

// LoadProjectFile reads and parses a project definition JSON file.
func LoadProjectFile(path string) (*ProjectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file ProjectFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing project file: %w", err)
	}
	return &file, nil
}
