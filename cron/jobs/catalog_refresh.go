package jobs

import (
	"context"
	"log"
	"time"

	catalogService "github.com/programmer-santosh-main/thapaelectronics/service/catalog"
)

// CatalogRefreshJob re-snapshots the upstream product set so browse pages
// never serve an expired cache cold.
func CatalogRefreshJob(args ...string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := catalogService.GetClient()
	client.Invalidate()
	products, err := client.Refresh(ctx)
	if err != nil {
		log.Printf("catalog refresh job: %v", err)
		return
	}
	log.Printf("catalog refresh job: %d products", len(products))
}
