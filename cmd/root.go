package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/programmer-santosh-main/thapaelectronics/config"
)

var rootCmd = &cobra.Command{
	Use:   "thapaelectronics",
	Short: "Electronics storefront CLI",
	Long:  "Maintenance commands for the electronics storefront: cron jobs, catalog snapshots and SEO checks.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnv()
		config.LoadAppConfig()
	},
}

// Execute runs the CLI. Extension commands registered via Register are
// attached first.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
