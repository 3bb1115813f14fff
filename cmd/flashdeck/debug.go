package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/flashdeck/flashdeck/internal/delivery/terminal"
	"github.com/flashdeck/flashdeck/internal/repository"
)

func newDebugCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "debug <set>",
		Short: "Print a parsed set or the errors found in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := repository.NewSetRepository().Load(args[0])
			if err != nil {
				return err
			}
			terminal.PrintSet(os.Stdout, set)
			return nil
		},
	}
}
