package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Read a request document on stdin and emit the artifact identity",
		Long: "query reads a JSON request document (build_command, build_paths,\n" +
			"module_relpath, runtime, source_path), computes the content digest of the\n" +
			"named sources, sweeps stale archives, and writes a JSON response with the\n" +
			"archive filename and the substituted build command.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")

			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file) //nolint:gosec // Path comes from the operator's flag
				if err != nil {
					return zerr.With(zerr.Wrap(err, "failed to open request file"), "file", file)
				}
				defer f.Close() //nolint:errcheck // Best effort close in defer
				in = f
			}

			return c.app.Query(cmd.Context(), in, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("file", "f", "", "Read the request document from a file instead of stdin")

	return cmd
}
