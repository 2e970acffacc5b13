package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDigestCmd(s *shell) *cobra.Command {
	return &cobra.Command{
		Use:                ".digest",
		Short:              "Print a BLAKE2b-256 digest of every page",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			digests, err := s.db.Table().Pager().Digests()
			if err != nil {
				return err
			}

			for _, d := range digests {
				fmt.Fprintf(s.out, "page %d %s\n", d.Page, d.Hex())
			}
			return nil
		},
	}
}
