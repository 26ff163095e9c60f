package catalog

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/programmer-santosh-main/thapaelectronics/config"
	"github.com/programmer-santosh-main/thapaelectronics/core/cache"
	catalogEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/catalog"
	"github.com/programmer-santosh-main/thapaelectronics/service/upstream"
)

const snapshotCacheKey = "catalog|products"

// snapshotTTL is how long a product snapshot stays fresh (seconds).
const snapshotTTL = 300

// Client fetches the upstream product set and keeps the current snapshot.
// Refreshes replace state wholesale — no diffing or merge. Each fetch gets a
// generation number; a slow response whose generation is older than the last
// applied one is discarded, so a stale in-flight fetch can never overwrite a
// newer snapshot.
type Client struct {
	api   *upstream.Client
	cache *cache.Cache

	mu      sync.Mutex
	gen     uint64
	applied uint64
}

func NewClient(backendURL string) *Client {
	return &Client{
		api:   upstream.NewClient(backendURL),
		cache: cache.GetInstance(),
	}
}

var (
	clientInstance *Client
	clientOnce     sync.Once
)

// GetClient returns the shared catalog client for the configured backend.
func GetClient() *Client {
	clientOnce.Do(func() {
		clientInstance = NewClient(config.AppConfig.BackendURL)
	})
	return clientInstance
}

// Refresh fetches /api/products and replaces the snapshot.
func (c *Client) Refresh(ctx context.Context) ([]catalogEntity.Product, error) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	raw, err := c.api.GetJSON(ctx, "/api/products")
	if err != nil {
		return nil, err
	}
	products, err := catalogEntity.DecodeProducts(raw)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen < c.applied {
		// A newer refresh already landed; keep it.
		log.Printf("catalog: dropping stale refresh (gen %d < %d)", gen, c.applied)
		if cached, ok := c.cache.Get(snapshotCacheKey); ok {
			return cached.([]catalogEntity.Product), nil
		}
		return products, nil
	}
	c.applied = gen
	c.cache.Set(snapshotCacheKey, products, snapshotTTL, []string{"catalog"})
	return products, nil
}

// Snapshot returns the cached product set, refreshing when stale.
func (c *Client) Snapshot(ctx context.Context) ([]catalogEntity.Product, error) {
	if cached, ok := c.cache.Get(snapshotCacheKey); ok {
		return cached.([]catalogEntity.Product), nil
	}
	return c.Refresh(ctx)
}

// Section returns the snapshot narrowed by the section classifier.
func (c *Client) Section(ctx context.Context, section string) ([]catalogEntity.Product, error) {
	products, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ForSection(products, section), nil
}

// Suggestions returns the top-rated picks of a section (landing page rails).
func (c *Client) Suggestions(ctx context.Context, section string, n int) ([]catalogEntity.Product, error) {
	products, err := c.Section(ctx, section)
	if err != nil {
		return nil, err
	}
	picks := make([]catalogEntity.Product, len(products))
	copy(picks, products)
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Rating > picks[j].Rating
	})
	if n > 0 && len(picks) > n {
		picks = picks[:n]
	}
	return picks, nil
}

// Invalidate drops the cached snapshot (manual refresh path).
func (c *Client) Invalidate() {
	c.cache.Delete(snapshotCacheKey)
}
