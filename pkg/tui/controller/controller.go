// Package controller coordinates filter and page state with remote catalog
// fetches and publishes grouped results to the UI.
package controller

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea/v2"

	"sorties.club/sorties/pkg/catalog"
	"sorties.club/sorties/pkg/filters"
	"sorties.club/sorties/pkg/group"
	"sorties.club/sorties/pkg/paging"
	"sorties.club/sorties/pkg/timeutil"
	"sorties.club/sorties/pkg/tui/events"
)

// Querier runs one remote catalog query. *client.Client satisfies it; tests
// substitute fakes with controllable completion order.
type Querier interface {
	FetchPage(ctx context.Context, page paging.PageRequest, f filters.FilterSet) (catalog.EventPage, error)
}

// Snapshot exposes the controller's current published state.
type Snapshot struct {
	Loading    bool
	Groups     group.Grouped
	TotalCount int
	Page       paging.PageRequest
	Filters    filters.FilterSet
}

// Controller owns the query lifecycle: state lives locally, watchers
// subscribe to the event channel, and consumers read consistent snapshots.
//
// Every state change dispatches a fetch immediately; in-flight fetches are
// not cancelled, and results are applied in completion order. When responses
// arrive out of order the last one to resolve wins, matching the query
// behavior users of the web catalog already know.
type Controller struct {
	component events.ComponentID
	querier   Querier
	filters   *filters.State
	pages     *paging.State
	locale    timeutil.Locale

	mu         sync.Mutex
	loading    bool
	groups     group.Grouped
	totalCount int
	seq        int

	eventCh chan tea.Msg
}

// New wires the controller to its collaborators. The ComponentID tags
// emitted events (falls back to "catalog" if empty).
func New(component events.ComponentID, q Querier, fs *filters.State, ps *paging.State, locale timeutil.Locale) *Controller {
	if component == "" {
		component = events.ComponentID("catalog")
	}
	return &Controller{
		component: component,
		querier:   q,
		filters:   fs,
		pages:     ps,
		locale:    locale,
		eventCh:   make(chan tea.Msg, 64),
	}
}

// Events exposes the controller event channel for Bubble Tea subscriptions.
func (c *Controller) Events() <-chan tea.Msg {
	return c.eventCh
}

// Start dispatches the initial fetch with the restored filters and page.
func (c *Controller) Start(ctx context.Context) {
	c.dispatch(ctx)
}

// UpdateFilters merges the partial edit into the filter state, moves back to
// the first page when the position is past it, and dispatches one fetch with
// both applied. A changed query restarts from page 1, like the web catalog.
func (c *Controller) UpdateFilters(ctx context.Context, p filters.Partial) {
	c.filters.Update(p)
	if page := c.pages.Current(); page.Page > 1 {
		c.pages.SetPage(1, page.PageSize)
	}
	c.dispatch(ctx)
}

// SetPage moves to the requested page and dispatches a fetch for it.
func (c *Controller) SetPage(ctx context.Context, page, pageSize int) {
	c.pages.SetPage(page, pageSize)
	c.dispatch(ctx)
}

// State returns a copy of the published state.
func (c *Controller) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Loading:    c.loading,
		Groups:     c.groups,
		TotalCount: c.totalCount,
		Page:       c.pages.Current(),
		Filters:    c.filters.Current(),
	}
}

// dispatch captures the live query parameters, flips the loading flag, and
// runs the fetch on its own goroutine. Concurrent dispatches are allowed;
// each resolves independently.
func (c *Controller) dispatch(ctx context.Context) {
	page := c.pages.Current()
	fset := c.filters.Current()

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	c.mu.Unlock()

	c.emit(events.LoadingMsg{Component: c.component, Seq: seq})

	go func() {
		result, err := c.querier.FetchPage(ctx, page, fset)
		if err != nil {
			c.mu.Lock()
			c.loading = false
			c.mu.Unlock()
			c.emit(events.FetchErrorMsg{Component: c.component, Seq: seq, Err: err})
			return
		}

		grouped := group.ByDate(result.Items, c.locale)
		total := result.LastPage * page.PageSize

		c.mu.Lock()
		c.groups = grouped
		c.totalCount = total
		c.loading = false
		c.mu.Unlock()

		c.emit(events.ResultMsg{
			Component:  c.component,
			Seq:        seq,
			Groups:     grouped,
			TotalCount: total,
			Page:       page,
		})
	}()
}

func (c *Controller) emit(msg tea.Msg) {
	select {
	case c.eventCh <- msg:
	default:
	}
}
