package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func productsStub(t *testing.T, payload interface{}) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path != "/api/products" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestClient_RefreshAndSnapshot(t *testing.T) {
	srv, hits := productsStub(t, map[string]interface{}{
		"products": []map[string]interface{}{
			{"_id": "p1", "name": "Galaxy S24", "category": "mobile"},
			{"_id": "p2", "name": "Smart Bulb", "category": "smart home"},
		},
	})

	client := NewClient(srv.URL)
	client.Invalidate()
	ctx := context.Background()

	products, err := client.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("products = %d, want 2", len(products))
	}

	// Snapshot serves from cache.
	if _, err := client.Snapshot(ctx); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if atomic.LoadInt32(hits) != 1 {
		t.Errorf("upstream hits = %d, want 1", *hits)
	}
	client.Invalidate()
}

func TestClient_SectionNarrowsSnapshot(t *testing.T) {
	srv, _ := productsStub(t, []map[string]interface{}{
		{"_id": "p1", "name": "Galaxy S24 smartphone"},
		{"_id": "p2", "name": "Robot vacuum cleaner", "category": "smart home"},
	})

	client := NewClient(srv.URL)
	client.Invalidate()

	mobile, err := client.Section(context.Background(), SectionMobile)
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	if len(mobile) != 1 || mobile[0].ID != "p1" {
		t.Errorf("mobile = %+v", mobile)
	}
	client.Invalidate()
}

func TestClient_SuggestionsTopRated(t *testing.T) {
	srv, _ := productsStub(t, []map[string]interface{}{
		{"_id": "a", "name": "phone a", "rating": 3.0},
		{"_id": "b", "name": "phone b", "rating": 4.9},
		{"_id": "c", "name": "phone c", "rating": 4.5},
		{"_id": "d", "name": "phone d", "rating": 4.7},
	})

	client := NewClient(srv.URL)
	client.Invalidate()

	picks, err := client.Suggestions(context.Background(), SectionMobile, 3)
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if len(picks) != 3 || picks[0].ID != "b" || picks[1].ID != "d" || picks[2].ID != "c" {
		t.Errorf("picks = %+v, want b,d,c", picks)
	}
	client.Invalidate()
}

func TestClient_UpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"backend down"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.Invalidate()

	if _, err := client.Refresh(context.Background()); err == nil {
		t.Error("want error from upstream failure")
	}
	client.Invalidate()
}
