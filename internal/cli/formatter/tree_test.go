package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are
// terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTree(nil))
}

func TestRenderTree_Connectors(t *testing.T) {
	items := []TreeItem{
		{Label: "Rollout", WBS: "1", Level: 0},
		{Label: "Preparation", WBS: "1.1", Level: 1},
		{Label: "Hiring", WBS: "1.1.1", Level: 2, IsLast: true, Leaf: true},
		{Label: "Pilot", WBS: "1.2", Level: 1, IsLast: true, Leaf: true},
	}

	out := stripANSI(RenderTree(items))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"1 Rollout",
		"├─ 1.1 Preparation",
		"│  └─ 1.1.1 Hiring",
		"└─ 1.2 Pilot",
	}, lines)
}

func TestRenderTree_DetailBadgesAligned(t *testing.T) {
	items := []TreeItem{
		{Label: "Rollout", Level: 0, Detail: "priority 500"},
		{Label: "Preparation and more", Level: 1, IsLast: true, Leaf: true, Detail: "10d"},
	}

	out := stripANSI(RenderTree(items))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[ priority 500 ]")
	assert.Contains(t, lines[1], "[ 10d ]")

	// Badges start at the same column.
	assert.Equal(t, strings.Index(lines[0], "["), strings.Index(lines[1], "["))
}

func TestRenderTree_NoWBS(t *testing.T) {
	out := stripANSI(RenderTree([]TreeItem{{Label: "plan", Level: 0, Leaf: true}}))
	assert.Equal(t, "plan\n", out)
}
