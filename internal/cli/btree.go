package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBtreeCmd(s *shell) *cobra.Command {
	return &cobra.Command{
		Use:                ".btree",
		Short:              "Print the keys of the root leaf",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(s.out, "Tree:")
			return s.db.Table().PrintTree(s.out)
		},
	}
}
