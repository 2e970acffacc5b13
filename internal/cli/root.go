package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.mydb/internal/config"
	"go.mydb/internal/engine"
)

var homeDir string
var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "mydb <path>",
	Short:        "mydb - single table row store",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(homeDir, cfgFile)
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}

		db, err := engine.Open(args[0], cfg)
		if err != nil {
			return fmt.Errorf("Failed to open Database: %w", err)
		}

		sh := newShell(db, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		return sh.Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "mydb home directory (default $"+config.HomeEnv+" or ~/.local/share/mydb)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default <home>/config.yaml)")
}
