// Package events defines the typed messages exchanged between the catalog
// controller and the UI components.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"sorties.club/sorties/pkg/filters"
	"sorties.club/sorties/pkg/group"
	"sorties.club/sorties/pkg/paging"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// LoadingMsg announces that a catalog fetch was dispatched and placeholder
// rows should be shown.
type LoadingMsg struct {
	Component ComponentID
	Seq       int
}

// Describe renders the message in a human-friendly format for logs.
func (m LoadingMsg) Describe() string {
	return fmt.Sprintf(`component:%q seq:%d`, m.Component, m.Seq)
}

// ResultMsg carries a freshly grouped catalog page. It fully replaces any
// previously published result.
type ResultMsg struct {
	Component  ComponentID
	Seq        int
	Groups     group.Grouped
	TotalCount int
	Page       paging.PageRequest
}

// Describe renders the result summary for logs.
func (m ResultMsg) Describe() string {
	return fmt.Sprintf(`component:%q seq:%d groups:%d total:%d page:%d`,
		m.Component, m.Seq, len(m.Groups), m.TotalCount, m.Page.Page)
}

// FetchErrorMsg reports a failed catalog fetch. The previously published
// result stays visible; no retry is scheduled.
type FetchErrorMsg struct {
	Component ComponentID
	Seq       int
	Err       error
}

// Describe renders the failure for logs.
func (m FetchErrorMsg) Describe() string {
	return fmt.Sprintf(`component:%q seq:%d err:%q`, m.Component, m.Seq, m.Err)
}

// FilterEditMsg asks the controller to merge filter changes.
type FilterEditMsg struct {
	Component ComponentID
	Partial   filters.Partial
}

// Describe renders the edit request for logs.
func (m FilterEditMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// FilterEditCmd wraps FilterEditMsg in a tea.Cmd.
func FilterEditCmd(component ComponentID, partial filters.Partial) tea.Cmd {
	return func() tea.Msg {
		return FilterEditMsg{Component: component, Partial: partial}
	}
}

// PageChangeMsg asks the controller to move to another page.
type PageChangeMsg struct {
	Component ComponentID
	Page      int
	PageSize  int
}

// Describe renders the page change for logs.
func (m PageChangeMsg) Describe() string {
	return fmt.Sprintf(`component:%q page:%d size:%d`, m.Component, m.Page, m.PageSize)
}

// PageChangeCmd wraps PageChangeMsg in a tea.Cmd.
func PageChangeCmd(component ComponentID, page, pageSize int) tea.Cmd {
	return func() tea.Msg {
		return PageChangeMsg{Component: component, Page: page, PageSize: pageSize}
	}
}

// LeaderQueryMsg asks the app to run a leader autocomplete search.
type LeaderQueryMsg struct {
	Component ComponentID
	Query     string
}

// Describe renders the query for logs.
func (m LeaderQueryMsg) Describe() string {
	return fmt.Sprintf(`component:%q query:%q`, m.Component, m.Query)
}

// LeaderQueryCmd wraps LeaderQueryMsg in a tea.Cmd.
func LeaderQueryCmd(component ComponentID, query string) tea.Cmd {
	return func() tea.Msg {
		return LeaderQueryMsg{Component: component, Query: query}
	}
}

// LeaderSuggestionsMsg delivers autocomplete results to the filter bar.
type LeaderSuggestionsMsg struct {
	Component ComponentID
	Query     string
	Names     []string
}

// Describe renders the suggestion delivery for logs.
func (m LeaderSuggestionsMsg) Describe() string {
	return fmt.Sprintf(`component:%q query:%q results:%d`, m.Component, m.Query, len(m.Names))
}

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}
