package commands

import (
	"context"

	"github.com/spf13/cobra"

	"sorties.club/sorties/pkg/client"
	"sorties.club/sorties/pkg/commands/options"
	"sorties.club/sorties/pkg/runner/events"
	"sorties.club/sorties/pkg/timeutil"
)

func addEvents(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	po := &options.PaginationOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "query the event catalog",
		Long:  "Query the club's event catalog with the same filters the web catalog offers.",
		Example: `
sorties events
sorties events --title cascade --cancelled
sorties events --activity 5 --activity 9 --page 2
sorties events --leader dupont --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.New(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := events.Events{
				Client:  c,
				Filters: fo.FilterSet(),
				Page:    po.PageRequest(),
				Locale:  timeutil.French,
				ShowID:  oo.ShowID,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddPaginationArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	options.AddShowIDArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
