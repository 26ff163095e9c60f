package jobs

import (
	"context"
	"log"
	"time"

	catalogService "github.com/programmer-santosh-main/thapaelectronics/service/catalog"
	seoService "github.com/programmer-santosh-main/thapaelectronics/service/seo"
)

// SEOWarmupJob drops stale SEO entries and pre-fetches metadata for the
// section and policy pages so the first render after a deploy is warm.
func SEOWarmupJob(args ...string) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	svc := seoService.GetService()
	svc.Invalidate()

	pages := append(catalogService.Sections(), "home", "policy")
	warm := 0
	for _, page := range pages {
		if _, ok := svc.PageMeta(ctx, page); ok {
			warm++
		}
	}
	log.Printf("seo warmup job: %d/%d pages have metadata", warm, len(pages))
}
