// Package paging tracks the catalog page position and keeps it in sync with
// the persisted location fragment so a restart lands on the same page.
package paging

import (
	"fmt"
	"regexp"
	"strconv"

	"sorties.club/sorties/pkg/store"
)

// DefaultPageSize matches the catalog's default page length.
const DefaultPageSize = 25

// PageRequest drives remote pagination: a 1-based page number and the page
// size. First is the zero-based offset of the page's first row; it is always
// derived here and nowhere else.
type PageRequest struct {
	Page     int
	PageSize int
	First    int
}

var fragmentPattern = regexp.MustCompile(`#(\d+)`)

// State owns the current PageRequest and its reconciliation with the
// location fragment.
type State struct {
	snaps   store.Snapshots
	current PageRequest
}

// NewState creates a pagination state backed by the provided snapshot store
// and seeded from the stored fragment.
func NewState(snaps store.Snapshots) *State {
	s := &State{snaps: snaps}
	s.current = s.Load()
	return s
}

// Load parses the page number out of the stored location fragment
// ("#<number>"). Absent, non-numeric or non-positive tokens default to
// page 1.
func (s *State) Load() PageRequest {
	page := 1
	if s.snaps != nil {
		if data, err := s.snaps.Read(store.KeyLocation); err == nil {
			if m := fragmentPattern.FindSubmatch(data); m != nil {
				if n, err := strconv.Atoi(string(m[1])); err == nil && n >= 1 {
					page = n
				}
			}
		}
	}
	s.current = makeRequest(page, DefaultPageSize)
	return s.current
}

// Current returns the live PageRequest.
func (s *State) Current() PageRequest {
	return s.current
}

// SetPage moves to the given page, clamping to page 1, recomputing the row
// offset, and pushing the page number into the location fragment.
func (s *State) SetPage(page, pageSize int) PageRequest {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	s.current = makeRequest(page, pageSize)
	if s.snaps != nil {
		// Fragment writes are best-effort, like the in-page history push
		// they stand in for.
		_ = s.snaps.Write(store.KeyLocation, []byte(fmt.Sprintf("#%d", page)))
	}
	return s.current
}

func makeRequest(page, pageSize int) PageRequest {
	return PageRequest{
		Page:     page,
		PageSize: pageSize,
		First:    (page - 1) * pageSize,
	}
}
