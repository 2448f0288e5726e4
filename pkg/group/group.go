// Package group partitions a page of catalog events into display-date
// buckets, preserving the order the service returned them in.
package group

import (
	"sorties.club/sorties/pkg/catalog"
	"sorties.club/sorties/pkg/timeutil"
)

// Bucket is one date section: a label plus the events starting on that date,
// in page order.
type Bucket struct {
	Label  string
	Events []catalog.EventSummary
}

// Grouped is an ordered list of date buckets. Bucket order follows the first
// occurrence of each date in the input page.
type Grouped []Bucket

// Total returns the number of events across all buckets.
func (g Grouped) Total() int {
	n := 0
	for _, b := range g {
		n += len(b.Events)
	}
	return n
}

// ByDate groups items by the long-date label of their start timestamp.
// It is a pure function: no sorting, no deduplication, every item lands in
// exactly one bucket.
func ByDate(items []catalog.EventSummary, locale timeutil.Locale) Grouped {
	if len(items) == 0 {
		return nil
	}
	grouped := make(Grouped, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		label := locale.LongDate(item.Start.Time)
		i, ok := index[label]
		if !ok {
			i = len(grouped)
			index[label] = i
			grouped = append(grouped, Bucket{Label: label})
		}
		grouped[i].Events = append(grouped[i].Events, item)
	}
	return grouped
}
