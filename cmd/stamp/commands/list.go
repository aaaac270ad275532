package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stamp/internal/core/domain"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "Print the recorded artifacts in the archive manifest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := domain.BuildsDirName
			if len(args) == 1 {
				dir = args[0]
			}
			return c.app.List(cmd.Context(), dir, cmd.OutOrStdout())
		},
	}
}
