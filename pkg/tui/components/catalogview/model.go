// Package catalogview renders the grouped event list with a movable cursor.
package catalogview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"sorties.club/sorties/pkg/catalog"
	"sorties.club/sorties/pkg/group"
	"sorties.club/sorties/pkg/tui/theme"
	"sorties.club/sorties/pkg/tui/events"
)

// skeletonRows is the number of placeholder rows rendered while a fetch is
// in flight, mirroring the web catalog's loading cards.
const skeletonRows = 5

const (
	lineHeader = -1
	lineSpacer = -2
	lineItem   = -3
)

type lineInfo struct {
	bucket int
	kind   int
	event  catalog.EventSummary
}

// Model renders date-grouped event rows and tracks the selected event.
type Model struct {
	groups  group.Grouped
	loading bool

	width  int
	height int

	cursor     int // index into itemLines, -1 when nothing selectable
	scroll     int
	focused    bool
	id         events.ComponentID
	controller events.ComponentID

	styles theme.CatalogTheme

	lines     []lineInfo
	itemLines []int
}

// NewModel constructs the catalog view. The controller ID filters which
// result events this view applies; empty accepts all.
func NewModel(controller events.ComponentID, styles theme.CatalogTheme) *Model {
	return &Model{
		cursor:     -1,
		id:         events.ComponentID("catalogview"),
		controller: controller,
		styles:     styles,
	}
}

// SetSize configures the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 20
	}
	m.width = width
	m.height = height
	m.ensureScroll()
}

// Focus marks the component as active.
func (m *Model) Focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	return events.FocusCmd(m.id)
}

// Blur marks the component as inactive.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	return events.BlurCmd(m.id)
}

// Selected returns the event under the cursor, if any.
func (m *Model) Selected() (catalog.EventSummary, bool) {
	if m.cursor < 0 || m.cursor >= len(m.itemLines) {
		return catalog.EventSummary{}, false
	}
	return m.lines[m.itemLines[m.cursor]].event, true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles navigation keys and applies controller results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "pgup", "b":
			m.moveCursor(-m.pageSize())
		case "pgdown", "f":
			m.moveCursor(m.pageSize())
		case "home", "g":
			if len(m.itemLines) > 0 {
				m.cursor = 0
				m.ensureScroll()
			}
		case "end", "G":
			if len(m.itemLines) > 0 {
				m.cursor = len(m.itemLines) - 1
				m.ensureScroll()
			}
		}
	case events.LoadingMsg:
		if m.accepts(msg.Component) {
			m.loading = true
		}
	case events.ResultMsg:
		if m.accepts(msg.Component) {
			m.loading = false
			m.SetGroups(msg.Groups)
		}
	case events.FetchErrorMsg:
		if m.accepts(msg.Component) {
			// Keep the previous rows visible; the footer reports the error.
			m.loading = false
		}
	}
	return m, nil
}

func (m *Model) accepts(component events.ComponentID) bool {
	return m.controller == "" || m.controller == component
}

// SetGroups replaces the rendered groups and resets the cursor.
func (m *Model) SetGroups(groups group.Grouped) {
	m.groups = groups
	m.rebuildLines()
	if len(m.itemLines) == 0 {
		m.cursor = -1
	} else {
		m.cursor = 0
	}
	m.scroll = 0
}

// View renders the component.
func (m *Model) View() string {
	if m.width <= 0 {
		m.width = 80
	}
	if m.height <= 0 {
		m.height = 20
	}
	if m.loading {
		return m.renderSkeleton()
	}
	if len(m.lines) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("  Aucun événement ne correspond aux critères.")
	}

	out := make([]string, 0, m.height)
	activeLine := -1
	if m.cursor >= 0 && m.cursor < len(m.itemLines) {
		activeLine = m.itemLines[m.cursor]
	}
	for i := m.scroll; i < len(m.lines) && len(out) < m.height; i++ {
		out = append(out, m.renderLine(i, i == activeLine))
	}
	for len(out) < m.height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderSkeleton() string {
	out := make([]string, 0, m.height)
	bar := strings.Repeat("░", max(0, min(m.width-4, 48)))
	for i := 0; i < skeletonRows && len(out) < m.height; i++ {
		out = append(out, "  "+m.styles.Skeleton.Render(bar))
		out = append(out, "")
	}
	for len(out) < m.height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderLine(idx int, selected bool) string {
	if idx < 0 || idx >= len(m.lines) {
		return ""
	}
	info := m.lines[idx]
	switch info.kind {
	case lineHeader:
		return m.styles.DateHeader.Render(m.groups[info.bucket].Label)
	case lineSpacer:
		return ""
	case lineItem:
		return m.renderEvent(info.event, selected)
	default:
		return ""
	}
}

func (m *Model) renderEvent(e catalog.EventSummary, selected bool) string {
	caret := "  "
	if selected && m.focused {
		caret = m.styles.Selected.Render("→ ")
	}

	titleStyle := m.styles.Title
	switch e.Status {
	case catalog.StatusCancelled:
		titleStyle = m.styles.Cancelled
	case catalog.StatusPending:
		titleStyle = m.styles.Pending
	}

	parts := []string{caret + titleStyle.Render(e.Title)}
	if badge := e.Badge(); badge != "" {
		parts = append(parts, m.styles.Badge.Render("["+badge+"]"))
	}
	if e.DateRange != "" {
		parts = append(parts, m.styles.Meta.Render(e.DateRange))
	}
	if names := leaderNames(e.Leaders); names != "" {
		parts = append(parts, m.styles.Meta.Render(names))
	}
	line := strings.Join(parts, "  ")
	return truncate.StringWithTail(line, uint(m.width), "…")
}

func leaderNames(leaders []catalog.Leader) string {
	if len(leaders) == 0 {
		return ""
	}
	names := make([]string, 0, len(leaders))
	for _, l := range leaders {
		if l.Name != "" {
			names = append(names, l.Name)
		}
	}
	return strings.Join(names, ", ")
}

func (m *Model) rebuildLines() {
	m.lines = m.lines[:0]
	m.itemLines = m.itemLines[:0]
	for bi, bucket := range m.groups {
		m.lines = append(m.lines, lineInfo{bucket: bi, kind: lineHeader})
		for _, e := range bucket.Events {
			m.itemLines = append(m.itemLines, len(m.lines))
			m.lines = append(m.lines, lineInfo{bucket: bi, kind: lineItem, event: e})
		}
		m.lines = append(m.lines, lineInfo{bucket: bi, kind: lineSpacer})
	}
	if len(m.lines) > 0 {
		m.lines = m.lines[:len(m.lines)-1]
	}
}

func (m *Model) moveCursor(delta int) {
	if len(m.itemLines) == 0 {
		m.cursor = -1
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.itemLines) {
		m.cursor = len(m.itemLines) - 1
	}
	m.ensureScroll()
}

func (m *Model) pageSize() int {
	if m.height <= 1 {
		return 1
	}
	return m.height - 1
}

func (m *Model) ensureScroll() {
	if len(m.lines) == 0 {
		m.scroll = 0
		return
	}
	target := 0
	if m.cursor >= 0 && m.cursor < len(m.itemLines) {
		target = m.itemLines[m.cursor]
	}
	if target < m.scroll {
		m.scroll = target
	}
	if m.height > 0 && target >= m.scroll+m.height {
		m.scroll = target - m.height + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}
