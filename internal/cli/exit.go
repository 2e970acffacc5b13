package cli

import (
	"github.com/spf13/cobra"
)

func newExitCmd(s *shell) *cobra.Command {
	return &cobra.Command{
		Use:                ".exit",
		Short:              "Flush the table to disk and leave",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.close()
		},
	}
}
