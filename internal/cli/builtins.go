package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/fsa/internal/definition"
)

func newBuiltinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "builtins",
		Short: "List the built-in automata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range definition.BuiltinNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
