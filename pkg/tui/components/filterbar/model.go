// Package filterbar renders the query inputs: title, leader, date and the
// cancelled-events toggle.
package filterbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"sorties.club/sorties/pkg/filters"
	"sorties.club/sorties/pkg/tui/events"
	"sorties.club/sorties/pkg/tui/theme"
)

type focusField int

const (
	fieldTitle focusField = iota
	fieldLeader
	fieldDate
	fieldCancelled
)

// Model renders the filter inputs and emits edit events on submit.
type Model struct {
	id      events.ComponentID
	focused bool
	focus   focusField

	width int

	titleInput  textinput.Model
	leaderInput textinput.Model
	dateInput   textinput.Model

	displayCancelled bool

	suggestions     []string
	suggestionIndex int
	lastLeaderQuery string

	styles theme.FilterTheme
}

// NewModel constructs the filter bar seeded from the current filter set.
func NewModel(current filters.FilterSet, styles theme.FilterTheme) *Model {
	title := textinput.New()
	title.Placeholder = "Titre..."
	title.Prompt = ""
	title.SetValue(current.Title)

	leader := textinput.New()
	leader.Placeholder = "Encadrant..."
	leader.Prompt = ""
	leader.SetValue(current.Leader)

	date := textinput.New()
	date.Placeholder = "jj/mm/aaaa"
	date.Prompt = ""
	date.SetValue(current.DateFrom)

	return &Model{
		id:               events.ComponentID("filterbar"),
		titleInput:       title,
		leaderInput:      leader,
		dateInput:        date,
		displayCancelled: current.DisplayCancelled,
		suggestionIndex:  -1,
		styles:           styles,
	}
}

// SetSize configures the available width.
func (m *Model) SetSize(width int) {
	if width <= 0 {
		width = 80
	}
	m.width = width
	inputWidth := width/3 - 14
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.titleInput.SetWidth(inputWidth)
	m.leaderInput.SetWidth(inputWidth)
	m.dateInput.SetWidth(12)
}

// Focus marks the component as active and focuses the current input.
func (m *Model) Focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	return tea.Batch(events.FocusCmd(m.id), m.updateInputFocus())
}

// Blur marks the component as inactive.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	m.updateInputFocus()
	return events.BlurCmd(m.id)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles key presses and leader suggestion deliveries.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m, m.handleKey(msg)
	case events.LeaderSuggestionsMsg:
		// Stale responses for older queries are dropped.
		if msg.Query == m.lastLeaderQuery {
			m.suggestions = msg.Names
			m.suggestionIndex = -1
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		return m.advanceFocus(1)
	case "shift+tab":
		return m.advanceFocus(-1)
	case "up":
		if m.focus == fieldLeader && len(m.suggestions) > 0 {
			m.moveSuggestion(-1)
			return nil
		}
	case "down":
		if m.focus == fieldLeader && len(m.suggestions) > 0 {
			m.moveSuggestion(1)
			return nil
		}
	case "enter":
		return m.submit()
	case " ", "space":
		if m.focus == fieldCancelled {
			m.displayCancelled = !m.displayCancelled
			toggled := m.displayCancelled
			return events.FilterEditCmd(m.id, filters.Partial{DisplayCancelled: &toggled})
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fieldLeader:
		m.leaderInput, cmd = m.leaderInput.Update(msg)
		if query := strings.TrimSpace(m.leaderInput.Value()); query != m.lastLeaderQuery {
			m.lastLeaderQuery = query
			if query == "" {
				m.suggestions = nil
				m.suggestionIndex = -1
			} else {
				return tea.Batch(cmd, events.LeaderQueryCmd(m.id, query))
			}
		}
	case fieldDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	}
	return cmd
}

// submit resolves the edited values into one partial update. An accepted
// leader suggestion replaces the typed prefix.
func (m *Model) submit() tea.Cmd {
	if m.focus == fieldCancelled {
		m.displayCancelled = !m.displayCancelled
		toggled := m.displayCancelled
		return events.FilterEditCmd(m.id, filters.Partial{DisplayCancelled: &toggled})
	}
	if m.focus == fieldLeader && m.suggestionIndex >= 0 && m.suggestionIndex < len(m.suggestions) {
		m.leaderInput.SetValue(m.suggestions[m.suggestionIndex])
		m.suggestions = nil
		m.suggestionIndex = -1
		m.lastLeaderQuery = m.leaderInput.Value()
	}

	title := strings.TrimSpace(m.titleInput.Value())
	leader := strings.TrimSpace(m.leaderInput.Value())
	date := strings.TrimSpace(m.dateInput.Value())
	return events.FilterEditCmd(m.id, filters.Partial{
		Title:    &title,
		Leader:   &leader,
		DateFrom: &date,
	})
}

func (m *Model) advanceFocus(delta int) tea.Cmd {
	fields := []focusField{fieldTitle, fieldLeader, fieldDate, fieldCancelled}
	current := 0
	for i, f := range fields {
		if f == m.focus {
			current = i
			break
		}
	}
	m.focus = fields[(current+len(fields)+delta)%len(fields)]
	return m.updateInputFocus()
}

func (m *Model) moveSuggestion(delta int) {
	if len(m.suggestions) == 0 {
		m.suggestionIndex = -1
		return
	}
	m.suggestionIndex += delta
	if m.suggestionIndex < 0 {
		m.suggestionIndex = 0
	}
	if m.suggestionIndex >= len(m.suggestions) {
		m.suggestionIndex = len(m.suggestions) - 1
	}
}

func (m *Model) updateInputFocus() tea.Cmd {
	m.titleInput.Blur()
	m.leaderInput.Blur()
	m.dateInput.Blur()
	if !m.focused {
		return nil
	}
	switch m.focus {
	case fieldTitle:
		return m.titleInput.Focus()
	case fieldLeader:
		return m.leaderInput.Focus()
	case fieldDate:
		return m.dateInput.Focus()
	}
	return nil
}

// View renders the filter row plus the suggestion list when open.
func (m *Model) View() string {
	toggle := "[ ]"
	if m.displayCancelled {
		toggle = "[x]"
	}

	row := strings.Join([]string{
		m.renderField("Titre", m.titleInput.View(), m.focus == fieldTitle),
		m.renderField("Encadrant", m.leaderInput.View(), m.focus == fieldLeader),
		m.renderField("À partir du", m.dateInput.View(), m.focus == fieldDate),
		m.renderField("Annulés", toggle, m.focus == fieldCancelled),
	}, "   ")

	if m.focus != fieldLeader || len(m.suggestions) == 0 {
		return row
	}
	lines := []string{row}
	for i, name := range m.suggestions {
		marker := "  "
		style := m.styles.Suggestion
		if i == m.suggestionIndex {
			marker = "→ "
			style = m.styles.Active
		}
		lines = append(lines, "  "+marker+style.Render(name))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderField(label, value string, focused bool) string {
	labelStyle := m.styles.Label
	if focused && m.focused {
		labelStyle = m.styles.Active
	}
	return fmt.Sprintf("%s %s", labelStyle.Render(label+":"), value)
}

// DisplayCancelled reports the toggle's current value.
func (m *Model) DisplayCancelled() bool {
	return m.displayCancelled
}
