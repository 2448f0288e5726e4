package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "sorties",
		Short: base.Wrap80("Browse the club's event catalog from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addBrowse(topLevel)
	addEvents(topLevel)
	addLeaders(topLevel)
	addVersion(topLevel)
}
