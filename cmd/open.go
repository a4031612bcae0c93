package cmd

import (
	"github.com/spf13/cobra"
)

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <file>...",
		Short: "Start the manager and open the given files",
		Long: `Starts the manager and queues the given files. Once the manager is on
screen each file is handled by its type: appliances (.ova, .ovf) start the
import, machine definitions (.vbox) are registered and extension packs
(.vbox-extpack) are installed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManager(cmd.Context(), noTUI, args)
		},
	}
}
