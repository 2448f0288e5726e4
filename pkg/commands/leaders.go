package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"sorties.club/sorties/pkg/client"
	"sorties.club/sorties/pkg/commands/options"
	"sorties.club/sorties/pkg/runner/leaders"
)

func addLeaders(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	limit := 8

	cmd := &cobra.Command{
		Use:   "leaders <query>",
		Short: "search event leaders by name",
		Example: `
sorties leaders dup
sorties leaders "Jean D" --limit 20 --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.New(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := leaders.Leaders{
				Client: c,
				Query:  strings.Join(args, " "),
				Limit:  limit,
				JSON:   oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 8, "Maximum number of matches.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
