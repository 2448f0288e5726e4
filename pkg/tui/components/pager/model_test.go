package pager

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"sorties.club/sorties/pkg/paging"
	"sorties.club/sorties/pkg/tui/events"
	"sorties.club/sorties/pkg/tui/theme"
)

func newTestModel() *Model {
	m := NewModel("catalog", paging.PageRequest{Page: 1, PageSize: 25}, theme.Default().Footer)
	updated, _ := m.Update(events.ResultMsg{
		Component:  "catalog",
		Page:       paging.PageRequest{Page: 2, PageSize: 25, First: 25},
		TotalCount: 100,
	})
	return updated.(*Model)
}

func TestResultUpdatesPosition(t *testing.T) {
	m := newTestModel()
	if m.Page().Page != 2 || m.lastPage != 4 {
		t.Errorf("page = %d, lastPage = %d", m.Page().Page, m.lastPage)
	}
	view := m.View()
	if !strings.Contains(view, "page 2/4") || !strings.Contains(view, "100 événements") {
		t.Errorf("view = %q", view)
	}
}

func TestRightEmitsNextPage(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if cmd == nil {
		t.Fatal("right produced no command")
	}
	change, ok := cmd().(events.PageChangeMsg)
	if !ok {
		t.Fatalf("expected PageChangeMsg, got %T", cmd())
	}
	if change.Page != 3 || change.PageSize != 25 {
		t.Errorf("change = %+v", change)
	}
}

func TestLeftClampsAtFirstPage(t *testing.T) {
	m := NewModel("catalog", paging.PageRequest{Page: 1, PageSize: 25}, theme.Default().Footer)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if cmd != nil {
		t.Errorf("left on page 1 emitted %T", cmd())
	}
}

func TestRightClampsAtLastPage(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(events.ResultMsg{
		Component:  "catalog",
		Page:       paging.PageRequest{Page: 4, PageSize: 25, First: 75},
		TotalCount: 100,
	})
	m = updated.(*Model)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if cmd != nil {
		t.Errorf("right on last page emitted %T", cmd())
	}
}
