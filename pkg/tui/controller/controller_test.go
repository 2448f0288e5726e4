package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"sorties.club/sorties/pkg/catalog"
	"sorties.club/sorties/pkg/filters"
	"sorties.club/sorties/pkg/paging"
	"sorties.club/sorties/pkg/timeutil"
	"sorties.club/sorties/pkg/tui/events"
)

type fetchResult struct {
	page catalog.EventPage
	err  error
}

type gatedCall struct {
	page    paging.PageRequest
	filters filters.FilterSet
	release chan fetchResult
}

// gatedQuerier blocks every FetchPage until the test releases it, so the
// test controls completion order precisely.
type gatedQuerier struct {
	mu    sync.Mutex
	calls []*gatedCall
	ready chan struct{}
}

func newGatedQuerier() *gatedQuerier {
	return &gatedQuerier{ready: make(chan struct{}, 16)}
}

func (q *gatedQuerier) FetchPage(ctx context.Context, page paging.PageRequest, f filters.FilterSet) (catalog.EventPage, error) {
	call := &gatedCall{page: page, filters: f, release: make(chan fetchResult, 1)}
	q.mu.Lock()
	q.calls = append(q.calls, call)
	q.mu.Unlock()
	q.ready <- struct{}{}
	result := <-call.release
	return result.page, result.err
}

func (q *gatedQuerier) waitForCall(t *testing.T, index int) *gatedCall {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		q.mu.Lock()
		if len(q.calls) > index {
			call := q.calls[index]
			q.mu.Unlock()
			return call
		}
		q.mu.Unlock()
		select {
		case <-q.ready:
		case <-deadline:
			t.Fatalf("timed out waiting for fetch %d", index)
		}
	}
}

func eventOn(day int, title string) catalog.EventSummary {
	return catalog.EventSummary{
		Title: title,
		Start: catalog.Timestamp{Time: time.Date(2024, time.June, day, 9, 0, 0, 0, time.UTC)},
	}
}

func waitForResult(t *testing.T, ch <-chan tea.Msg, seq int) events.ResultMsg {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case msg := <-ch:
			if result, ok := msg.(events.ResultMsg); ok && result.Seq == seq {
				return result
			}
		case <-deadline:
			t.Fatalf("timed out waiting for result seq %d", seq)
		}
	}
}

func waitForError(t *testing.T, ch <-chan tea.Msg) events.FetchErrorMsg {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case msg := <-ch:
			if failure, ok := msg.(events.FetchErrorMsg); ok {
				return failure
			}
		case <-deadline:
			t.Fatal("timed out waiting for fetch error")
		}
	}
}

func newTestController(q Querier) *Controller {
	return New("catalog", q, filters.NewState(nil), paging.NewState(nil), timeutil.French)
}

func TestStartFetchesAndPublishesGroups(t *testing.T) {
	q := newGatedQuerier()
	c := newTestController(q)

	c.Start(context.Background())
	call := q.waitForCall(t, 0)
	if call.page.Page != 1 || call.page.PageSize != paging.DefaultPageSize {
		t.Errorf("initial page = %+v", call.page)
	}
	call.release <- fetchResult{page: catalog.EventPage{
		Items:    []catalog.EventSummary{eventOn(1, "Canyon"), eventOn(1, "Escalade"), eventOn(2, "Rando")},
		LastPage: 4,
	}}

	result := waitForResult(t, c.Events(), 1)
	if len(result.Groups) != 2 {
		t.Fatalf("groups = %+v", result.Groups)
	}
	if result.TotalCount != 4*paging.DefaultPageSize {
		t.Errorf("total = %d, want %d", result.TotalCount, 4*paging.DefaultPageSize)
	}

	state := c.State()
	if state.Loading {
		t.Error("still loading after result applied")
	}
	if got := state.Groups.Total(); got != 3 {
		t.Errorf("published events = %d, want 3", got)
	}
}

func TestLastResolvedFetchWins(t *testing.T) {
	q := newGatedQuerier()
	c := newTestController(q)
	ctx := context.Background()

	c.UpdateFilters(ctx, filters.Partial{Title: ptr("Cascade")})
	first := q.waitForCall(t, 0)
	if first.filters.Title != "Cascade" {
		t.Errorf("first fetch filters = %+v", first.filters)
	}

	c.SetPage(ctx, 2, paging.DefaultPageSize)
	second := q.waitForCall(t, 1)
	if second.page.Page != 2 || second.page.First != paging.DefaultPageSize {
		t.Errorf("second fetch page = %+v", second.page)
	}

	// The newer fetch resolves before the older one; the older result then
	// lands last and overwrites it.
	second.release <- fetchResult{page: catalog.EventPage{
		Items:    []catalog.EventSummary{eventOn(10, "Via ferrata")},
		LastPage: 4,
	}}
	waitForResult(t, c.Events(), 2)

	first.release <- fetchResult{page: catalog.EventPage{
		Items:    []catalog.EventSummary{eventOn(3, "Cascade de glace")},
		LastPage: 1,
	}}
	waitForResult(t, c.Events(), 1)

	state := c.State()
	if got := state.Groups.Total(); got != 1 {
		t.Fatalf("published events = %d", got)
	}
	if title := state.Groups[0].Events[0].Title; title != "Cascade de glace" {
		t.Errorf("published title = %q, want the last-resolved result", title)
	}
	if state.TotalCount != paging.DefaultPageSize {
		t.Errorf("total = %d, want %d", state.TotalCount, paging.DefaultPageSize)
	}
}

func TestFilterEditResetsToFirstPageInOneFetch(t *testing.T) {
	q := newGatedQuerier()
	c := newTestController(q)
	ctx := context.Background()

	c.SetPage(ctx, 3, paging.DefaultPageSize)
	q.waitForCall(t, 0).release <- fetchResult{page: catalog.EventPage{LastPage: 4}}
	waitForResult(t, c.Events(), 1)

	c.UpdateFilters(ctx, filters.Partial{Title: ptr("Cascade")})
	call := q.waitForCall(t, 1)
	if call.page.Page != 1 {
		t.Errorf("edit fetched page %d, want 1", call.page.Page)
	}
	if call.filters.Title != "Cascade" {
		t.Errorf("edit fetched filters %+v", call.filters)
	}
	call.release <- fetchResult{page: catalog.EventPage{LastPage: 1}}
	waitForResult(t, c.Events(), 2)

	// The page reset and the filter merge travel in a single dispatch; a
	// separate reset fetch could resolve last and show the old query's rows.
	q.mu.Lock()
	calls := len(q.calls)
	q.mu.Unlock()
	if calls != 2 {
		t.Errorf("fetch count = %d, want 2", calls)
	}
	if page := c.State().Page; page.Page != 1 {
		t.Errorf("page = %d, want 1", page.Page)
	}
}

func TestFetchFailureKeepsPreviousResult(t *testing.T) {
	q := newGatedQuerier()
	c := newTestController(q)
	ctx := context.Background()

	c.Start(ctx)
	q.waitForCall(t, 0).release <- fetchResult{page: catalog.EventPage{
		Items:    []catalog.EventSummary{eventOn(5, "Ski de rando")},
		LastPage: 1,
	}}
	waitForResult(t, c.Events(), 1)

	c.SetPage(ctx, 3, paging.DefaultPageSize)
	q.waitForCall(t, 1).release <- fetchResult{err: errors.New("503 Service Unavailable")}
	failure := waitForError(t, c.Events())
	if failure.Err == nil {
		t.Fatal("error message carries no error")
	}

	state := c.State()
	if state.Loading {
		t.Error("loading flag stuck after failure")
	}
	if got := state.Groups.Total(); got != 1 {
		t.Errorf("previous result lost on failure: %d events", got)
	}
	if state.Page.Page != 3 {
		t.Errorf("page position = %d, want 3", state.Page.Page)
	}
}

func TestLoadingFlagDuringFetch(t *testing.T) {
	q := newGatedQuerier()
	c := newTestController(q)

	c.Start(context.Background())
	call := q.waitForCall(t, 0)
	if !c.State().Loading {
		t.Error("not loading while fetch is in flight")
	}
	call.release <- fetchResult{page: catalog.EventPage{}}
	waitForResult(t, c.Events(), 1)
	if c.State().Loading {
		t.Error("loading after fetch resolved")
	}
}

func ptr[T any](v T) *T {
	return &v
}
