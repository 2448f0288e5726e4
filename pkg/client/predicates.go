package client

import (
	"strconv"
	"time"

	"sorties.club/sorties/pkg/filters"
	"sorties.club/sorties/pkg/timeutil"
)

// Predicate is one {field, type, value} constraint in the query service's
// filter grammar. Repeated equality predicates on the same field are
// interpreted as a logical OR by the backend.
type Predicate struct {
	Field string
	Type  string
	Value string
}

// Filter operators understood by the service.
const (
	opLike     = "like"
	opEquals   = "="
	opNotEqual = "!="
)

// BuildPredicates translates a FilterSet into the ordered predicate list the
// events endpoint expects. The "end" predicate is always present: events
// ending before the requested date (or before now, on the server's clock)
// are excluded.
func BuildPredicates(f filters.FilterSet, serverNow time.Time) []Predicate {
	preds := make([]Predicate, 0, 4+len(f.Activities)+len(f.EventTypes)+len(f.EventTags))

	if f.Title != "" {
		preds = append(preds, Predicate{Field: "title", Type: opLike, Value: f.Title})
	}

	end := f.DateFrom
	if end == "" {
		end = timeutil.DayFirst(serverNow) + serverNow.Format(" 15:04")
	}
	preds = append(preds, Predicate{Field: "end", Type: opLike, Value: end})

	if f.Leader != "" {
		preds = append(preds, Predicate{Field: "leaders", Type: opLike, Value: f.Leader})
	}

	if !f.DisplayCancelled {
		preds = append(preds, Predicate{Field: "status", Type: opNotEqual, Value: "Cancelled"})
	}

	for _, id := range f.Activities {
		preds = append(preds, Predicate{Field: "activity_type", Type: opEquals, Value: strconv.Itoa(id)})
	}
	for _, id := range f.EventTypes {
		preds = append(preds, Predicate{Field: "event_type", Type: opEquals, Value: strconv.Itoa(id)})
	}
	for _, id := range f.EventTags {
		preds = append(preds, Predicate{Field: "tags", Type: opEquals, Value: strconv.Itoa(id)})
	}

	return preds
}
