package cmd

import (
	"github.com/spf13/cobra"
)

func newVMsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "vms",
		Aliases: []string{"list", "ls"},
		Short:   "List the virtual machines of the inventory",
		Long: `Loads the inventory, waits for machine states to settle and prints
one line per machine with its state, group and OS type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManager(cmd.Context(), true, nil)
		},
	}
}
