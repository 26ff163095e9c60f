package apitest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/programmer-santosh-main/thapaelectronics/api"
	"github.com/programmer-santosh-main/thapaelectronics/core/kvstore"
	catalogService "github.com/programmer-santosh-main/thapaelectronics/service/catalog"
	seoService "github.com/programmer-santosh-main/thapaelectronics/service/seo"
)

// backendStub serves the upstream product feed used across the API tests.
func backendStub(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products":
			w.Write([]byte(`{"products":[
				{"_id":"p1","name":"Galaxy S24 smartphone","category":"mobile","brand":"Samsung","price":150000,"finalPrice":135000,"discount":10,"rating":4.8,"reviewCount":900,"stock":12,"createdAt":"2025-06-01T00:00:00Z"},
				{"_id":"p2","name":"Redmi Note 13 phone","category":"mobile","brand":"Xiaomi","price":30000,"finalPrice":22500,"discount":25,"rating":4.2,"reviewCount":2500,"stock":40,"createdAt":"2025-07-01T00:00:00Z"},
				{"_id":"p3","name":"Smart bulb","category":"smart home","brand":"Philips","price":2500,"finalPrice":2500,"rating":4.5,"reviewCount":120,"stock":80,"createdAt":"2025-05-01T00:00:00Z"}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// testDeps builds an isolated dependency set pointed at the stub backend.
// The catalog snapshot cache is process-wide, so it is invalidated on both
// sides of each test.
func testDeps(t *testing.T, backendURL string) *api.Deps {
	t.Helper()
	deps := &api.Deps{
		Store:      kvstore.NewMemory(),
		Catalog:    catalogService.NewClient(backendURL),
		SEO:        seoService.NewService(backendURL, "https://thapaelectronics.com"),
		BackendURL: backendURL,
	}
	deps.Catalog.Invalidate()
	t.Cleanup(deps.Catalog.Invalidate)
	return deps
}
