// Package pager renders the page navigation row and emits page changes.
package pager

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"sorties.club/sorties/pkg/paging"
	"sorties.club/sorties/pkg/tui/events"
	"sorties.club/sorties/pkg/tui/theme"
)

// Model tracks the page position and total count published by the
// controller.
type Model struct {
	id         events.ComponentID
	controller events.ComponentID

	page       paging.PageRequest
	totalCount int
	lastPage   int

	styles theme.FooterTheme
}

// NewModel constructs the pager seeded from the restored page position.
func NewModel(controller events.ComponentID, page paging.PageRequest, styles theme.FooterTheme) *Model {
	return &Model{
		id:         events.ComponentID("pager"),
		controller: controller,
		page:       page,
		styles:     styles,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update applies controller results and handles page navigation keys.
// Left/right work regardless of focus, like the web catalog's pagination.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.page.Page > 1 {
				return m, events.PageChangeCmd(m.id, m.page.Page-1, m.page.PageSize)
			}
		case "right", "l":
			if m.lastPage == 0 || m.page.Page < m.lastPage {
				return m, events.PageChangeCmd(m.id, m.page.Page+1, m.page.PageSize)
			}
		}
	case events.ResultMsg:
		if m.controller == "" || m.controller == msg.Component {
			m.page = msg.Page
			m.totalCount = msg.TotalCount
			if msg.Page.PageSize > 0 {
				m.lastPage = msg.TotalCount / msg.Page.PageSize
			}
		}
	}
	return m, nil
}

// View renders "page x/y · n événements".
func (m *Model) View() string {
	if m.lastPage == 0 {
		return m.styles.Page.Render(fmt.Sprintf("page %d", m.page.Page))
	}
	position := m.styles.Current.Render(fmt.Sprintf("page %d/%d", m.page.Page, m.lastPage))
	count := m.styles.Page.Render(fmt.Sprintf("%d événements", m.totalCount))
	return position + m.styles.Page.Render(" · ") + count
}

// Page returns the pager's view of the current page.
func (m *Model) Page() paging.PageRequest {
	return m.page
}
