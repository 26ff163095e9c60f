package seo

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strings"
	"sync"

	"github.com/programmer-santosh-main/thapaelectronics/config"
	"github.com/programmer-santosh-main/thapaelectronics/core/cache"
	seoEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/seo"
	"github.com/programmer-santosh-main/thapaelectronics/service/upstream"
)

// metaTTL is how long an SEO entry stays cached (seconds).
const metaTTL = 3600

// Service fetches per-page SEO metadata from the backend. Absent or
// malformed responses suppress injection silently — a page without meta is
// fine, an SEO error surfacing to the user is not.
type Service struct {
	api     *upstream.Client
	cache   *cache.Cache
	siteURL string
}

func NewService(backendURL, siteURL string) *Service {
	return &Service{
		api:     upstream.NewClient(backendURL),
		cache:   cache.GetInstance(),
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

var (
	serviceInstance *Service
	serviceOnce     sync.Once
)

// GetService returns the shared SEO service for the configured backend.
func GetService() *Service {
	serviceOnce.Do(func() {
		serviceInstance = NewService(config.AppConfig.BackendURL, config.AppConfig.SiteURL)
	})
	return serviceInstance
}

// PageMeta returns the metadata for a storefront page, or ok=false when the
// backend has none (or the fetch failed).
func (s *Service) PageMeta(ctx context.Context, page string) (seoEntity.PageMeta, bool) {
	if cached, ok := s.cache.GetN("seo", page); ok {
		meta := cached.(seoEntity.PageMeta)
		return meta, meta.Page != ""
	}

	raw, err := s.api.GetJSON(ctx, "/api/seo/page/"+url.PathEscape(page))
	if err != nil {
		log.Printf("seo: fetch failed for %q: %v", page, err)
		return seoEntity.PageMeta{}, false
	}

	var meta seoEntity.PageMeta
	if err := json.Unmarshal(raw, &meta); err != nil || meta.Page == "" {
		// Negative-cache so a missing page is not re-fetched per request.
		s.cache.SetN([]interface{}{"seo", page}, seoEntity.PageMeta{}, metaTTL, []string{"seo"})
		return seoEntity.PageMeta{}, false
	}

	s.cache.SetN([]interface{}{"seo", page}, meta, metaTTL, []string{"seo"})
	return meta, true
}

// Canonical resolves the meta URL against the site base when it is relative.
func (s *Service) Canonical(meta seoEntity.PageMeta) string {
	if strings.HasPrefix(meta.URL, "http") {
		return meta.URL
	}
	return s.siteURL + meta.URL
}

// Invalidate drops all cached SEO entries.
func (s *Service) Invalidate() {
	s.cache.DeleteByTag("seo")
}
