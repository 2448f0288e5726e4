// Package app composes the interactive catalog browser: filter bar on top,
// grouped event list in the middle, pager and status in the footer.
package app

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"sorties.club/sorties/pkg/client"
	"sorties.club/sorties/pkg/tui/components/catalogview"
	"sorties.club/sorties/pkg/tui/components/filterbar"
	"sorties.club/sorties/pkg/tui/components/pager"
	"sorties.club/sorties/pkg/tui/controller"
	"sorties.club/sorties/pkg/tui/events"
	"sorties.club/sorties/pkg/tui/theme"
)

// LeaderSearcher runs leader autocomplete queries for the filter bar.
type LeaderSearcher interface {
	SearchLeaders(ctx context.Context, query string, limit int) ([]client.LeaderSuggestion, error)
}

// Model is the root Bubble Tea model for the catalog browser.
type Model struct {
	ctx     context.Context
	ctrl    *controller.Controller
	leaders LeaderSearcher

	view   *catalogview.Model
	filter *filterbar.Model
	pages  *pager.Model

	width  int
	height int

	filterFocused bool
	lastErr       string

	styles theme.Theme
}

// New composes the root model around a started-to-be controller.
func New(ctx context.Context, ctrl *controller.Controller, leaders LeaderSearcher) *Model {
	styles := theme.Default()
	state := ctrl.State()
	return &Model{
		ctx:     ctx,
		ctrl:    ctrl,
		leaders: leaders,
		view:    catalogview.NewModel("catalog", styles.Catalog),
		filter:  filterbar.NewModel(state.Filters, styles.Filter),
		pages:   pager.NewModel("catalog", state.Page, styles.Footer),
		styles:  styles,
	}
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, ctrl *controller.Controller, leaders LeaderSearcher) error {
	p := tea.NewProgram(New(ctx, ctrl, leaders), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init dispatches the initial fetch and arms the controller subscription.
func (m *Model) Init() tea.Cmd {
	m.ctrl.Start(m.ctx)
	return tea.Batch(m.view.Focus(), m.waitForController())
}

// waitForController forwards the next controller event into the program. It
// is re-armed after every delivered event.
func (m *Model) waitForController() tea.Cmd {
	ch := m.ctrl.Events()
	return func() tea.Msg {
		if msg, ok := <-ch; ok {
			return msg
		}
		return nil
	}
}

// Update routes Bubble Tea messages to the composed components.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !m.filterFocused {
				return m, tea.Quit
			}
		case "/":
			if !m.filterFocused {
				m.filterFocused = true
				cmds = append(cmds, m.view.Blur(), m.filter.Focus())
				return m, tea.Batch(cmds...)
			}
		case "esc":
			if m.filterFocused {
				m.filterFocused = false
				cmds = append(cmds, m.filter.Blur(), m.view.Focus())
				return m, tea.Batch(cmds...)
			}
		}
	case events.FilterEditMsg:
		m.ctrl.UpdateFilters(m.ctx, msg.Partial)
	case events.PageChangeMsg:
		m.ctrl.SetPage(m.ctx, msg.Page, msg.PageSize)
	case events.LeaderQueryMsg:
		cmds = append(cmds, m.leaderSearchCmd(msg.Component, msg.Query))
	case events.LoadingMsg:
		cmds = append(cmds, m.waitForController())
	case events.ResultMsg:
		m.lastErr = ""
		cmds = append(cmds, m.waitForController())
	case events.FetchErrorMsg:
		if msg.Err != nil {
			m.lastErr = msg.Err.Error()
		}
		cmds = append(cmds, m.waitForController())
	}

	cmds = append(cmds, m.routeToComponents(msg)...)

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) routeToComponents(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd

	next, cmd := m.view.Update(msg)
	if v, ok := next.(*catalogview.Model); ok {
		m.view = v
	}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	next, cmd = m.filter.Update(msg)
	if f, ok := next.(*filterbar.Model); ok {
		m.filter = f
	}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	// The pager handles left/right only while the list has focus, so typing
	// in the filter inputs never flips pages.
	if _, isKey := msg.(tea.KeyMsg); !isKey || !m.filterFocused {
		next, cmd = m.pages.Update(msg)
		if p, ok := next.(*pager.Model); ok {
			m.pages = p
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return cmds
}

func (m *Model) leaderSearchCmd(component events.ComponentID, query string) tea.Cmd {
	if m.leaders == nil {
		return nil
	}
	ctx := m.ctx
	searcher := m.leaders
	return func() tea.Msg {
		suggestions, err := searcher.SearchLeaders(ctx, query, 8)
		if err != nil {
			// Autocomplete failures degrade to no suggestions.
			return events.LeaderSuggestionsMsg{Component: component, Query: query}
		}
		names := make([]string, 0, len(suggestions))
		for _, s := range suggestions {
			names = append(names, s.FullName)
		}
		return events.LeaderSuggestionsMsg{Component: component, Query: query, Names: names}
	}
}

func (m *Model) layout() {
	if m.width <= 0 {
		m.width = 80
	}
	if m.height <= 0 {
		m.height = 24
	}
	m.filter.SetSize(m.width)
	m.view.SetSize(m.width, m.height-4)
}

// View renders the filter bar, the grouped list and the footer.
func (m *Model) View() string {
	var sections []string
	sections = append(sections, m.filter.View(), "")
	sections = append(sections, m.view.View())

	footer := m.pages.View()
	if m.lastErr != "" {
		footer += "   " + m.styles.Footer.Error.Render(m.lastErr)
	}
	help := "/: filtres · ←/→: pages · q: quitter"
	sections = append(sections, footer+"   "+m.styles.Footer.Help.Render(help))

	return strings.Join(sections, "\n")
}
