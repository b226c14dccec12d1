package cli

import (
	"strings"
	"testing"

	"github.com/kentarofujiy/TaskJuggler/internal/teatest"
	"github.com/kentarofujiy/TaskJuggler/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func browseDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	p := testutil.SampleProject(t)
	d := teatest.New(t, newBrowseModel(p, 0), teatest.WithSize(80, 24))
	d.DrainInit()
	return d
}

// cursorLine returns the tree line carrying the cursor marker.
func cursorLine(t *testing.T, d *teatest.Driver) string {
	t.Helper()
	for _, line := range strings.Split(stripANSI(d.View()), "\n") {
		if strings.HasPrefix(line, "▸") {
			return line
		}
	}
	t.Fatal("no cursor line in view")
	return ""
}

func TestBrowseModel_InitialView(t *testing.T) {
	d := browseDriver(t)
	view := stripANSI(d.View())

	assert.Contains(t, view, "ACME Rollout")
	assert.Contains(t, view, "Tasks")
	assert.Contains(t, view, "● plan")
	assert.Contains(t, view, "1 Rollout")
	assert.Contains(t, view, "1.1 Preparation")
	assert.Contains(t, view, "1.1.1 Hiring")
	assert.Contains(t, view, "1.2 Pilot")
	assert.Contains(t, view, "tab: resources")
	assert.Contains(t, view, "q: quit")

	// The detail pane follows the cursor, which starts on the root.
	assert.Contains(t, view, "flagship rollout")
	assert.Contains(t, cursorLine(t, d), "Rollout")
}

func TestBrowseModel_CursorMovesDetailPane(t *testing.T) {
	d := browseDriver(t)

	d.PressDown()
	m := d.Model.(*browseModel)
	assert.Equal(t, 1, m.cursor)
	assert.Contains(t, cursorLine(t, d), "Preparation")

	view := stripANSI(d.View())
	assert.Contains(t, view, "rollout.prep")
	assert.Contains(t, view, "10d")
	assert.Contains(t, view, "● set")

	d.PressUp()
	assert.Contains(t, cursorLine(t, d), "Rollout")
}

func TestBrowseModel_JumpKeys(t *testing.T) {
	d := browseDriver(t)

	d.PressKey('G')
	assert.Contains(t, cursorLine(t, d), "Pilot")

	d.PressKey('g')
	assert.Contains(t, cursorLine(t, d), "Rollout")
}

func TestBrowseModel_FoldHidesSubtree(t *testing.T) {
	d := browseDriver(t)

	d.PressDown() // onto Preparation
	d.PressEnter()
	view := stripANSI(d.View())
	assert.NotContains(t, view, "Hiring")
	assert.Contains(t, view, "+ 1.1 Preparation")
	assert.Contains(t, view, "Pilot")

	d.PressEnter()
	assert.Contains(t, stripANSI(d.View()), "Hiring")
}

func TestBrowseModel_FoldIgnoredOnLeaves(t *testing.T) {
	d := browseDriver(t)

	d.PressKey('G') // Pilot, a leaf
	d.PressEnter()
	view := stripANSI(d.View())
	assert.Contains(t, view, "Hiring")
	assert.Contains(t, view, "Pilot")
}

func TestBrowseModel_TabSwitchesSets(t *testing.T) {
	d := browseDriver(t)

	d.PressTab()
	view := stripANSI(d.View())
	assert.Contains(t, view, "Resources")
	assert.Contains(t, view, "1 Developers")
	assert.Contains(t, view, "1.1 Dev One")
	assert.Contains(t, view, "tab: tasks")

	m := d.Model.(*browseModel)
	assert.Equal(t, 0, m.cursor)

	d.PressTab()
	assert.Contains(t, stripANSI(d.View()), "1 Rollout")
}

func TestBrowseModel_ScenarioCycle(t *testing.T) {
	d := browseDriver(t)

	d.PressKey('s')
	assert.Contains(t, stripANSI(d.View()), "● trial")

	d.PressKey('s')
	assert.Contains(t, stripANSI(d.View()), "● plan")
}

func TestBrowseModel_Filter(t *testing.T) {
	d := browseDriver(t)

	d.PressKey('/')
	d.Type("prep")
	view := stripANSI(d.View())
	assert.Contains(t, view, "/ prep")
	assert.Contains(t, view, "Preparation")
	assert.Contains(t, view, "Hiring")
	assert.NotContains(t, view, "Pilot")

	d.PressEnter() // accept, filter stays applied
	view = stripANSI(d.View())
	assert.Contains(t, view, "esc: clear")
	assert.NotContains(t, view, "Pilot")

	d.PressEsc()
	assert.Contains(t, stripANSI(d.View()), "Pilot")
}

func TestBrowseModel_FilterBackspace(t *testing.T) {
	d := browseDriver(t)

	d.PressKey('/')
	d.Type("px")
	assert.NotContains(t, stripANSI(d.View()), "Preparation")

	d.PressBackspace()
	assert.Contains(t, stripANSI(d.View()), "Preparation")
}

func TestBrowseModel_FilterEscCancels(t *testing.T) {
	d := browseDriver(t)

	d.PressKey('/')
	d.Type("prep")
	d.PressEsc()

	view := stripANSI(d.View())
	assert.NotContains(t, view, "/ prep")
	assert.Contains(t, view, "Pilot")
}

func TestBrowseModel_Quit(t *testing.T) {
	d := browseDriver(t)

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestBrowseModel_CtrlCQuitsWhileFiltering(t *testing.T) {
	d := browseDriver(t)

	d.PressKey('/')
	d.Type("pre")
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

func TestBrowseModel_ScenarioSectionInDetail(t *testing.T) {
	d := browseDriver(t)

	d.PressDown() // Preparation carries plan values
	view := stripANSI(d.View())
	require.Contains(t, view, "dev.dev1")

	// Cycling to trial keeps the values visible through scenario
	// inheritance, now marked as inherited.
	d.PressKey('s')
	view = stripANSI(d.View())
	assert.Contains(t, view, "10d")
	assert.Contains(t, view, "◐ inherited")
}
