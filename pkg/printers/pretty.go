package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"sorties.club/sorties/pkg/catalog"
	"sorties.club/sorties/pkg/client"
	"sorties.club/sorties/pkg/group"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("12345  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a date-group header.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Summary prints the pagination footer: current page, pages and total count.
func (pp *PrettyPrint) Summary(page, lastPage, totalCount int) {
	c := color.New(color.Faint)
	_, _ = c.Printf("page %d/%d - %d ", page, lastPage, totalCount)
	switch totalCount {
	case 1:
		_, _ = c.Println("événement")
	default:
		_, _ = c.Println("événements")
	}
}

// Group prints one date bucket's events.
func (pp *PrettyPrint) Group(bucket group.Bucket) {
	pp.Title(bucket.Label)
	pp.Events(bucket.Events...)
}

// Events prints event rows; cancelled and pending events are dimmed.
func (pp *PrettyPrint) Events(items ...catalog.EventSummary) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	dim := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	badge := color.New(color.FgHiRed)

	for _, e := range items {
		if pp.ShowID {
			id := fmt.Sprintf("%d", e.ID)
			_, _ = y.Print(id)
			if pad := len(spacing) - len(id); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		line := t
		if e.Status != catalog.StatusConfirmed {
			line = dim
		}
		_, _ = line.Printf("%s", e.Title)
		if b := e.Badge(); b != "" {
			_, _ = badge.Printf("  [%s]", b)
		}
		if e.DateRange != "" {
			_, _ = dim.Printf("  %s", e.DateRange)
		}
		if names := leaderNames(e.Leaders); names != "" {
			_, _ = dim.Printf("  %s", names)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Leaders prints autocomplete results as a table.
func (pp *PrettyPrint) Leaders(suggestions []client.LeaderSuggestion) {
	if len(suggestions) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"))
	for _, s := range suggestions {
		tbl.AddRow(s.ID, s.FullName)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func leaderNames(leaders []catalog.Leader) string {
	if len(leaders) == 0 {
		return ""
	}
	names := make([]string, 0, len(leaders))
	for _, l := range leaders {
		if l.Name != "" {
			names = append(names, l.Name)
		}
	}
	return strings.Join(names, ", ")
}
