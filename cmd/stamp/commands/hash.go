package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stamp/internal/app"
)

func (c *CLI) newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [paths...]",
		Short: "Print the content digest of the given files and directories",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			runtime, _ := cmd.Flags().GetString("runtime")
			command, _ := cmd.Flags().GetString("command")
			root, _ := cmd.Flags().GetString("root")

			return c.app.Hash(cmd.Context(), args, app.HashOptions{
				Root:    root,
				Runtime: runtime,
				Command: command,
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("runtime", "r", "", "Runtime identifier folded into the digest")
	cmd.Flags().StringP("command", "c", "", "Build command folded into the digest")
	cmd.Flags().String("root", ".", "Base directory for relative input paths")

	return cmd
}
