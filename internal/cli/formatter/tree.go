package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a hierarchy display.
type TreeItem struct {
	Label  string
	WBS    string // work breakdown structure index; "" means don't display
	Level  int
	IsLast bool
	Leaf   bool
	Detail string // right-aligned badge, usually an attribute summary
	Faded  bool   // render dimmed, e.g. nodes excluded by a filter
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders a list of TreeItems as an indented tree using
// box-drawing characters for connectors. Containers are bold, faded
// items are dimmed, and detail badges are right-aligned past the
// widest line.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				prefix += treePipe
			}
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		label := item.Label
		switch {
		case item.Faded:
			label = Dim(label)
		case !item.Leaf:
			label = Bold(label)
		default:
			label = StyleFg.Render(label)
		}
		if item.WBS != "" {
			label = StyleDim.Render(item.WBS+" ") + label
		}

		content := prefix + label
		lines[idx].content = content

		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render("[ " + item.Detail + " ]")
		}

		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge != "" {
			pad := maxContentWidth - lipgloss.Width(li.content)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
		} else {
			b.WriteString(li.content + "\n")
		}
	}

	return b.String()
}
