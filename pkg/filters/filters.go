// Package filters holds the catalog filter selections and their durable
// persistence across runs.
package filters

// FilterSet is the complete set of independent catalog constraints. Empty
// fields mean "no constraint"; only DisplayCancelled always applies.
type FilterSet struct {
	// Activities, EventTypes and EventTags hold selected identifiers.
	Activities []int `json:"activities"`
	EventTypes []int `json:"eventTypes"`
	EventTags  []int `json:"eventTags"`

	// DateFrom excludes events ending before this day-first date
	// ("31/12/2024"). Empty means "today", resolved against the server's
	// local clock when the query is built.
	DateFrom string `json:"-"`

	// Title and Leader are case-insensitive substring constraints.
	Title  string `json:"-"`
	Leader string `json:"-"`

	// DisplayCancelled includes events whose status is Cancelled.
	DisplayCancelled bool `json:"displayCancelled"`
}

// Defaults returns the documented default FilterSet: no selections, date
// from today, cancelled events hidden.
func Defaults() FilterSet {
	return FilterSet{}
}

// Clone returns a deep copy so callers can hold a FilterSet without
// aliasing the state's slices.
func (f FilterSet) Clone() FilterSet {
	f.Activities = cloneIDs(f.Activities)
	f.EventTypes = cloneIDs(f.EventTypes)
	f.EventTags = cloneIDs(f.EventTags)
	return f
}

// Partial is a set of field changes to merge into a FilterSet. Nil fields
// are left untouched.
type Partial struct {
	Activities       *[]int
	EventTypes       *[]int
	EventTags        *[]int
	DateFrom         *string
	Title            *string
	Leader           *string
	DisplayCancelled *bool
}

func (f FilterSet) merge(p Partial) FilterSet {
	next := f.Clone()
	if p.Activities != nil {
		next.Activities = cloneIDs(*p.Activities)
	}
	if p.EventTypes != nil {
		next.EventTypes = cloneIDs(*p.EventTypes)
	}
	if p.EventTags != nil {
		next.EventTags = cloneIDs(*p.EventTags)
	}
	if p.DateFrom != nil {
		next.DateFrom = *p.DateFrom
	}
	if p.Title != nil {
		next.Title = *p.Title
	}
	if p.Leader != nil {
		next.Leader = *p.Leader
	}
	if p.DisplayCancelled != nil {
		next.DisplayCancelled = *p.DisplayCancelled
	}
	return next
}

func cloneIDs(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	return append([]int(nil), ids...)
}
