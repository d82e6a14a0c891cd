package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/ptable/internal/app"
	"github.com/five82/ptable/internal/logging"
)

func newLogsCmd(root *rootFlags) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the debug log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Load(root.options())
			if err != nil {
				return err
			}
			if !session.Config.LoggingEnabled() {
				return fmt.Errorf("logging is disabled (log_path = %q)", session.Config.LogPath)
			}
			tail, err := logging.Tail(session.Config.LogPath, lines)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range tail {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines (0 for all)")

	return cmd
}
