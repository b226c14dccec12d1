package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kentarofujiy/TaskJuggler/internal/cli/formatter"
	"github.com/kentarofujiy/TaskJuggler/internal/project"
	"github.com/kentarofujiy/TaskJuggler/internal/proptree"
)

const detailPaneHeight = 9

// browseModel is the interactive tree browser. The upper pane lists the
// active set's nodes with fold markers, the lower pane shows the selected
// node's attributes for the active scenario.
type browseModel struct {
	p         *project.Project
	scenario  int
	resources bool

	cursor    int
	top       int
	collapsed map[*proptree.Node]bool
	visible   []*proptree.Node

	// Filtering
	filtering bool
	filter    string

	detail viewport.Model
	width  int
	height int
}

func newBrowseModel(p *project.Project, scenarioIdx int) *browseModel {
	vp := viewport.New(0, detailPaneHeight)
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}

	m := &browseModel{
		p:         p,
		scenario:  scenarioIdx,
		collapsed: make(map[*proptree.Node]bool),
		detail:    vp,
	}
	m.refresh()
	return m
}

func (m *browseModel) Init() tea.Cmd { return nil }

func (m *browseModel) activeSet() *proptree.Set {
	if m.resources {
		return m.p.Resources
	}
	return m.p.Tasks
}

func (m *browseModel) setTitle() string {
	if m.resources {
		return "Resources"
	}
	return "Tasks"
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = msg.Width
		m.syncDetail()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateNormal(msg)
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *browseModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.syncDetail()
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
			m.syncDetail()
		}
	case "g", "home":
		m.cursor = 0
		m.syncDetail()
	case "G", "end":
		m.cursor = len(m.visible) - 1
		m.syncDetail()

	case "enter", " ":
		if m.filter == "" && m.cursor < len(m.visible) {
			n := m.visible[m.cursor]
			if n.Container() {
				m.collapsed[n] = !m.collapsed[n]
				m.refresh()
			}
		}

	case "tab":
		m.resources = !m.resources
		m.cursor = 0
		m.top = 0
		m.refresh()

	case "s":
		if count := m.p.ScenarioCount(); count > 0 {
			m.scenario = (m.scenario + 1) % count
			m.syncDetail()
		}

	case "/":
		m.filtering = true
		m.filter = ""
		m.refresh()

	case "esc":
		if m.filter != "" {
			m.filter = ""
			m.cursor = 0
			m.refresh()
		}

	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.cursor = 0
		m.refresh()
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.cursor = 0
			m.refresh()
		}
	default:
		if len(msg.String()) == 1 {
			m.filter += msg.String()
			m.cursor = 0
			m.refresh()
		}
	}
	return m, nil
}

// refresh rebuilds the visible node list after anything that changes
// tree shape: fold toggles, set switches, filter edits.
func (m *browseModel) refresh() {
	m.visible = m.visibleNodes()
	if m.cursor > len(m.visible)-1 {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.syncDetail()
}

func (m *browseModel) visibleNodes() []*proptree.Node {
	if m.filter != "" {
		lf := strings.ToLower(m.filter)
		var out []*proptree.Node
		for _, root := range m.activeSet().Roots() {
			for _, n := range root.All() {
				if strings.Contains(strings.ToLower(n.FullID()), lf) ||
					strings.Contains(strings.ToLower(n.Name()), lf) {
					out = append(out, n)
				}
			}
		}
		return out
	}

	var out []*proptree.Node
	var walk func(n *proptree.Node)
	walk = func(n *proptree.Node) {
		out = append(out, n)
		if m.collapsed[n] {
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	for _, root := range m.activeSet().Roots() {
		walk(root)
	}
	return out
}

func (m *browseModel) syncDetail() {
	m.detail.SetContent(m.detailContent())
	m.detail.GotoTop()
}

func (m *browseModel) detailContent() string {
	if len(m.visible) == 0 || m.cursor >= len(m.visible) {
		return formatter.Dim("Nothing selected.")
	}
	n := m.visible[m.cursor]

	var b strings.Builder
	b.WriteString(formatter.Bold(n.Name()) + "  " + formatter.Dim(n.FullID()) + "\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("wbs %s · seq %d · level %d · %d children",
		n.WBS(), n.SequenceNo(), n.Level(), len(n.Children()))) + "\n")

	set := n.Owner()
	for _, id := range n.AttributeIDs() {
		v, err := n.Get(id)
		if err != nil {
			continue
		}
		provided, inherited := n.Provided(id), n.Inherited(id)
		if !detailWorthy(v, provided, inherited, set.DefaultValue(id)) {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-14s %s  %s\n",
			formatter.Dim(id),
			formatter.Value(v),
			formatter.ProvenancePill(provided, inherited)))
	}

	var scenarioRows []string
	for _, id := range n.ScenarioAttributeIDs(m.scenario) {
		v, err := n.GetScenario(id, m.scenario)
		if err != nil {
			continue
		}
		provided := n.ScenarioProvided(id, m.scenario)
		inherited := n.ScenarioInherited(id, m.scenario)
		if !detailWorthy(v, provided, inherited, set.DefaultValue(id)) {
			continue
		}
		scenarioRows = append(scenarioRows, fmt.Sprintf("  %-14s %s  %s",
			formatter.Dim(id),
			formatter.Value(v),
			formatter.ProvenancePill(provided, inherited)))
	}
	if len(scenarioRows) > 0 {
		if sc, ok := m.p.Scenario(m.scenario); ok {
			b.WriteString(formatter.ScenarioBadge(sc.ID(), sc.Enabled()) + "\n")
		}
		for _, row := range scenarioRows {
			b.WriteString(row + "\n")
		}
	}
	return b.String()
}

// detailWorthy filters the detail pane down to attributes that say
// something: anything set or inherited, plus values that differ from
// the schema default.
func detailWorthy(v any, provided, inherited bool, def any) bool {
	if provided || inherited {
		return true
	}
	return proptree.FormatValue(v) != proptree.FormatValue(def)
}

func (m *browseModel) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	treeHeight := height - detailPaneHeight - 4
	if m.filtering || m.filter != "" {
		treeHeight--
	}
	if treeHeight < 3 {
		treeHeight = 3
	}
	m.detail.Height = detailPaneHeight

	var b strings.Builder

	sc, _ := m.p.Scenario(m.scenario)
	header := fmt.Sprintf(" %s  %s", formatter.Bold(m.p.Name()), formatter.Dim(m.setTitle()))
	if sc != nil {
		header += "  " + formatter.ScenarioBadge(sc.ID(), sc.Enabled())
	}
	b.WriteString(header + "\n")
	b.WriteString(formatter.Dim(strings.Repeat("─", width)) + "\n")

	if m.filtering {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + m.filter + "█\n")
	} else if m.filter != "" {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + m.filter +
			"  " + formatter.Dim("esc: clear") + "\n")
	}

	b.WriteString(m.renderTree(treeHeight))

	b.WriteString(formatter.Dim(strings.Repeat("─", width)) + "\n")
	b.WriteString(m.detail.View() + "\n")
	b.WriteString(m.hintBar())

	return b.String()
}

func (m *browseModel) renderTree(rows int) string {
	if len(m.visible) == 0 {
		return "  " + formatter.Dim("No items.") + "\n" +
			strings.Repeat("\n", max(0, rows-1))
	}

	// Keep the cursor inside the window.
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+rows {
		m.top = m.cursor - rows + 1
	}
	if m.top > len(m.visible)-1 {
		m.top = len(m.visible) - 1
	}
	if m.top < 0 {
		m.top = 0
	}

	var b strings.Builder
	for i := m.top; i < m.top+rows; i++ {
		if i >= len(m.visible) {
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.renderRow(i) + "\n")
	}
	return b.String()
}

func (m *browseModel) renderRow(i int) string {
	n := m.visible[i]

	marker := "  "
	nameStyle := formatter.StyleFg
	if n.Container() {
		nameStyle = formatter.StyleBold
	}
	if i == m.cursor {
		marker = formatter.StyleGreen.Render("▸ ")
		nameStyle = formatter.StyleBold
	}

	fold := formatter.Dim("·")
	if n.Container() {
		if m.collapsed[n] {
			fold = formatter.StyleYellow.Render("+")
		} else {
			fold = formatter.Dim("−")
		}
	}

	indent := strings.Repeat("  ", n.Level())
	if m.filter != "" {
		indent = ""
	}

	return fmt.Sprintf("%s%s%s %s %s",
		marker,
		indent,
		fold,
		formatter.Dim(n.WBS()),
		nameStyle.Render(n.Name()))
}

func (m *browseModel) hintBar() string {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "fold")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", m.otherSetHint())),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scenario")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}

	var hints []string
	for _, b := range bindings {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	return " " + strings.Join(hints, "  ")
}

func (m *browseModel) otherSetHint() string {
	if m.resources {
		return "tasks"
	}
	return "resources"
}
