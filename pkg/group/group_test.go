package group

import (
	"reflect"
	"testing"
	"time"

	"sorties.club/sorties/pkg/catalog"
	"sorties.club/sorties/pkg/timeutil"
)

func event(id int, title string, start time.Time) catalog.EventSummary {
	return catalog.EventSummary{
		ID:    id,
		Title: title,
		Start: catalog.Timestamp{Time: start},
	}
}

func TestByDateKeepsPageOrder(t *testing.T) {
	items := []catalog.EventSummary{
		event(1, "Cascade de glace", time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)),
		event(2, "Randonnée du soir", time.Date(2024, time.May, 1, 14, 0, 0, 0, time.UTC)),
		event(3, "Via ferrata", time.Date(2024, time.May, 2, 10, 0, 0, 0, time.UTC)),
	}

	grouped := ByDate(items, timeutil.French)
	if len(grouped) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(grouped))
	}
	if grouped[0].Label != "mercredi 1er mai 2024" {
		t.Errorf("first bucket label = %q", grouped[0].Label)
	}
	if grouped[1].Label != "jeudi 2 mai 2024" {
		t.Errorf("second bucket label = %q", grouped[1].Label)
	}
	if len(grouped[0].Events) != 2 || grouped[0].Events[0].ID != 1 || grouped[0].Events[1].ID != 2 {
		t.Errorf("first bucket lost page order: %+v", grouped[0].Events)
	}
	if len(grouped[1].Events) != 1 || grouped[1].Events[0].ID != 3 {
		t.Errorf("second bucket = %+v", grouped[1].Events)
	}
	if grouped.Total() != len(items) {
		t.Errorf("Total() = %d, want %d", grouped.Total(), len(items))
	}
}

func TestByDateIsPure(t *testing.T) {
	items := []catalog.EventSummary{
		event(1, "Sortie A", time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)),
		event(2, "Sortie B", time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC)),
		event(3, "Sortie C", time.Date(2024, time.May, 1, 18, 0, 0, 0, time.UTC)),
	}
	first := ByDate(items, timeutil.French)
	second := ByDate(items, timeutil.French)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated grouping differs:\n%+v\n%+v", first, second)
	}
	// Non-contiguous dates still bucket by first occurrence.
	if len(first) != 2 || len(first[0].Events) != 2 {
		t.Errorf("unexpected grouping: %+v", first)
	}
}

func TestByDateEmpty(t *testing.T) {
	if got := ByDate(nil, timeutil.French); got != nil {
		t.Errorf("ByDate(nil) = %+v, want nil", got)
	}
}
