// Package timeutil formats dates the way the catalog displays them.
package timeutil

import (
	"fmt"
	"time"
)

// LayoutDayFirst is the day-first date layout the query service expects in
// date predicates (e.g. "01/06/2024").
const LayoutDayFirst = "02/01/2006"

// Locale carries the strings needed to spell out a calendar date. Weekdays
// are indexed by time.Weekday (Sunday first), months by time.Month-1.
type Locale struct {
	Weekdays [7]string
	Months   [12]string

	// Ordinal renders a day-of-month. When nil the plain number is used.
	Ordinal func(day int) string
}

// French is the default display locale, matching the club site.
var French = Locale{
	Weekdays: [7]string{
		"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
	},
	Months: [12]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	Ordinal: func(day int) string {
		if day == 1 {
			return "1er"
		}
		return fmt.Sprintf("%d", day)
	},
}

// LongDate spells out t as a full calendar date, e.g. "samedi 1er juin 2024".
// The timestamp is formatted as received; no timezone conversion is applied.
func (l Locale) LongDate(t time.Time) string {
	day := l.ordinal(t.Day())
	return fmt.Sprintf("%s %s %s %d",
		l.Weekdays[t.Weekday()], day, l.Months[t.Month()-1], t.Year())
}

func (l Locale) ordinal(day int) string {
	if l.Ordinal == nil {
		return fmt.Sprintf("%d", day)
	}
	return l.Ordinal(day)
}

// DayFirst renders t in the service's day-first wire format.
func DayFirst(t time.Time) string {
	return t.Format(LayoutDayFirst)
}

// ParseDayFirst parses a day-first date string ("31/12/2024").
func ParseDayFirst(v string) (time.Time, error) {
	return time.Parse(LayoutDayFirst, v)
}
