package cli

import "github.com/spf13/cobra"

func newMetaCommand(s *shell) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "meta",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(s.out)
	cmd.SetErr(s.out)

	cmd.AddCommand(
		newExitCmd(s),
		newConstantsCmd(s),
		newBtreeCmd(s),
		newStatsCmd(s),
		newDigestCmd(s),
	)
	return cmd
}
