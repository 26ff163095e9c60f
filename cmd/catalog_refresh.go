package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	catalogService "github.com/programmer-santosh-main/thapaelectronics/service/catalog"
)

var refreshTimeout time.Duration

var catalogRefreshCmd = &cobra.Command{
	Use:   "catalog:refresh",
	Short: "Fetch a fresh product snapshot from the backend",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		client := catalogService.GetClient()
		client.Invalidate()
		products, err := client.Refresh(ctx)
		if err != nil {
			fmt.Printf("Refresh failed: %v\n", err)
			return
		}
		fmt.Printf("Snapshot refreshed: %d products\n", len(products))
		for _, section := range catalogService.Sections() {
			fmt.Printf("  %-12s %d\n", section, len(catalogService.ForSection(products, section)))
		}
	},
}

func init() {
	catalogRefreshCmd.Flags().DurationVarP(&refreshTimeout, "timeout", "t", 30*time.Second, "Upstream fetch timeout")
	rootCmd.AddCommand(catalogRefreshCmd)
}
