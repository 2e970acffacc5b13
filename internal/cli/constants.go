package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.mydb/internal/storage"
)

func newConstantsCmd(s *shell) *cobra.Command {
	return &cobra.Command{
		Use:                ".constants",
		Short:              "Print the on-disk layout constants",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(s.out, "Constants:")
			storage.PrintConstants(s.out)
			return nil
		},
	}
}
