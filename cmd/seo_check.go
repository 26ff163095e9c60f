package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	catalogService "github.com/programmer-santosh-main/thapaelectronics/service/catalog"
	seoService "github.com/programmer-santosh-main/thapaelectronics/service/seo"
)

var seoPages []string

var seoCheckCmd = &cobra.Command{
	Use:   "seo:check",
	Short: "Report which storefront pages have SEO metadata",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		pages := seoPages
		if len(pages) == 0 {
			pages = append(catalogService.Sections(), "home", "policy")
		}

		svc := seoService.GetService()
		missing := 0
		for _, page := range pages {
			meta, ok := svc.PageMeta(ctx, page)
			if !ok {
				fmt.Printf("  %-12s MISSING\n", page)
				missing++
				continue
			}
			fmt.Printf("  %-12s %s\n", page, meta.Title)
		}
		fmt.Printf("%d/%d pages have metadata\n", len(pages)-missing, len(pages))
	},
}

func init() {
	seoCheckCmd.Flags().StringSliceVarP(&seoPages, "pages", "p", nil, "Pages to check (default: sections + home + policy)")
	rootCmd.AddCommand(seoCheckCmd)
}
