package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Catalog CatalogTheme
	Filter  FilterTheme
	Footer  FooterTheme
}

// CatalogTheme styles the grouped event list.
type CatalogTheme struct {
	DateHeader lipgloss.Style
	Title      lipgloss.Style
	Selected   lipgloss.Style
	Cancelled  lipgloss.Style
	Pending    lipgloss.Style
	Badge      lipgloss.Style
	Meta       lipgloss.Style
	Skeleton   lipgloss.Style
}

// FilterTheme styles the filter bar and its inputs.
type FilterTheme struct {
	Label      lipgloss.Style
	Value      lipgloss.Style
	Active     lipgloss.Style
	Suggestion lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/pager bar.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Page    lipgloss.Style
	Current lipgloss.Style
	Error   lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Catalog: CatalogTheme{
			DateHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Title:      lipgloss.NewStyle(),
			Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
			Cancelled:  lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241")),
			Pending:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244")),
			Badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			Meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Skeleton:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		},
		Filter: FilterTheme{
			Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Value:      lipgloss.NewStyle(),
			Active:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Page:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Current: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}
