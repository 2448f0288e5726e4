package timeutil

import (
	"testing"
	"time"
)

func TestLongDateFrench(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC), "samedi 1er juin 2024"},
		{time.Date(2024, time.May, 2, 10, 0, 0, 0, time.UTC), "jeudi 2 mai 2024"},
		{time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC), "mercredi 31 décembre 2025"},
	}
	for _, tc := range tests {
		if got := French.LongDate(tc.in); got != tc.want {
			t.Errorf("LongDate(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLongDateWithoutOrdinal(t *testing.T) {
	plain := Locale{Weekdays: French.Weekdays, Months: French.Months}
	got := plain.LongDate(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	if got != "samedi 1 juin 2024" {
		t.Errorf("LongDate without ordinal = %q", got)
	}
}

func TestDayFirstRoundTrip(t *testing.T) {
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	s := DayFirst(day)
	if s != "01/05/2024" {
		t.Fatalf("DayFirst = %q", s)
	}
	back, err := ParseDayFirst(s)
	if err != nil {
		t.Fatalf("ParseDayFirst: %v", err)
	}
	if !back.Equal(day) {
		t.Errorf("round trip = %v, want %v", back, day)
	}
}
