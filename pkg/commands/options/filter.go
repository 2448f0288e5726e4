package options

import (
	"github.com/spf13/cobra"

	"sorties.club/sorties/pkg/filters"
)

// FilterOptions
type FilterOptions struct {
	Title            string
	Leader           string
	DateFrom         string
	Activities       []int
	EventTypes       []int
	EventTags        []int
	DisplayCancelled bool
}

func AddFilterArgs(cmd *cobra.Command, fo *FilterOptions) {
	cmd.Flags().StringVarP(&fo.Title, "title", "t", "",
		"Match event titles containing this text.")
	cmd.Flags().StringVarP(&fo.Leader, "leader", "l", "",
		"Match events led by this person.")
	cmd.Flags().StringVarP(&fo.DateFrom, "date", "d", "",
		"Only events ending on or after this date (dd/mm/yyyy). Defaults to today.")
	cmd.Flags().IntSliceVar(&fo.Activities, "activity", nil,
		"Activity type IDs to include. Repeatable; multiple values are ORed.")
	cmd.Flags().IntSliceVar(&fo.EventTypes, "event-type", nil,
		"Event type IDs to include. Repeatable.")
	cmd.Flags().IntSliceVar(&fo.EventTags, "tag", nil,
		"Event tag IDs to include. Repeatable.")
	cmd.Flags().BoolVar(&fo.DisplayCancelled, "cancelled", false,
		"Include cancelled events.")
}

// FilterSet resolves the flags into the query filter set.
func (fo *FilterOptions) FilterSet() filters.FilterSet {
	f := filters.Defaults()
	f.Title = fo.Title
	f.Leader = fo.Leader
	f.DateFrom = fo.DateFrom
	f.Activities = fo.Activities
	f.EventTypes = fo.EventTypes
	f.EventTags = fo.EventTags
	f.DisplayCancelled = fo.DisplayCancelled
	return f
}
