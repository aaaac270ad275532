package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stamp/internal/core/domain"
)

func (c *CLI) newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep [dir]",
		Short: "Delete archives older than the retention window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := domain.BuildsDirName
			if len(args) == 1 {
				dir = args[0]
			}
			maxAge, _ := cmd.Flags().GetDuration("max-age")
			suffix, _ := cmd.Flags().GetString("suffix")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			return c.app.Sweep(cmd.Context(), dir, domain.SweepOptions{
				MaxAge: maxAge,
				Suffix: suffix,
				DryRun: dryRun,
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Duration("max-age", domain.RetentionWindow, "Maximum archive age before deletion")
	cmd.Flags().String("suffix", domain.ArchiveSuffix, "Only delete files with this suffix")
	cmd.Flags().BoolP("dry-run", "n", false, "Report stale archives without deleting them")

	return cmd
}
