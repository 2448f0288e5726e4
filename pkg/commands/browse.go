package commands

import (
	"context"

	"github.com/spf13/cobra"

	"sorties.club/sorties/pkg/runner/browse"
)

func addBrowse(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "open the interactive catalog browser",
		Example: `
sorties browse
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			b := browse.Browse{}
			return b.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
