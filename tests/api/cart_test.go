package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	cartApi "github.com/programmer-santosh-main/thapaelectronics/api/cart"
)

func cartRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCartAPI_CheckoutFlow(t *testing.T) {
	backend := backendStub(t)
	deps := testDeps(t, backend.URL)
	e := echo.New()
	cartApi.RegisterCartRoutes(e.Group("/api"), deps)

	// Empty cart
	rec := cartRequest(e, http.MethodGet, "/api/cart", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/cart status = %d, want 200", rec.Code)
	}

	// Checkout before anything is in the cart
	rec = cartRequest(e, http.MethodPost, "/api/cart/checkout", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("checkout on empty cart status = %d, want 409", rec.Code)
	}

	// Add an item
	rec = cartRequest(e, http.MethodPost, "/api/cart/items",
		`{"_id":"p1","name":"Galaxy S24","finalPrice":10000,"quantity":1,"maxStock":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add item status = %d, want 200: %s", rec.Code, rec.Body)
	}

	// Delivery quote requires an address first
	rec = cartRequest(e, http.MethodGet, "/api/cart/delivery", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("delivery without address status = %d, want 404", rec.Code)
	}

	// Checkout still blocked: no address
	rec = cartRequest(e, http.MethodPost, "/api/cart/checkout", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("checkout without address status = %d, want 409", rec.Code)
	}

	// Save an address outside the free zone
	rec = cartRequest(e, http.MethodPost, "/api/cart/address",
		`{"country":"Nepal","city":"Pokhara","streetAddress":"Lakeside","phone":"9800000000","email":"s@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("save address status = %d, want 200: %s", rec.Code, rec.Body)
	}

	// Quote: flat charge applies outside the valley
	rec = cartRequest(e, http.MethodGet, "/api/cart/delivery", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delivery quote status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var quote struct {
		Delivery struct {
			DeliveryCharges float64 `json:"deliveryCharges"`
			FreeDelivery    bool    `json:"freeDelivery"`
		} `json:"delivery"`
		Total float64 `json:"total"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&quote); err != nil {
		t.Fatalf("decode quote: %v", err)
	}
	if quote.Delivery.FreeDelivery || quote.Delivery.DeliveryCharges != 500 {
		t.Errorf("delivery = %+v, want 500 flat", quote.Delivery)
	}
	if quote.Total != 10500 {
		t.Errorf("total = %v, want 10500", quote.Total)
	}

	// Checkout assembles the handoff payload
	rec = cartRequest(e, http.MethodPost, "/api/cart/checkout", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("checkout status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var data struct {
		Subtotal float64 `json:"subtotal"`
		Shipping float64 `json:"shipping"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&data); err != nil {
		t.Fatalf("decode checkout: %v", err)
	}
	if data.Subtotal != 10000 || data.Shipping != 500 || data.Tax != 0 || data.Total != 10500 {
		t.Errorf("checkout data = %+v", data)
	}
}

func TestCartAPI_AddressValidation(t *testing.T) {
	backend := backendStub(t)
	deps := testDeps(t, backend.URL)
	e := echo.New()
	cartApi.RegisterCartRoutes(e.Group("/api"), deps)

	rec := cartRequest(e, http.MethodPost, "/api/cart/address",
		`{"country":"Nepal","city":"","streetAddress":"Lakeside","phone":"9800000000","email":"s@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid address status = %d, want 400", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["field"] != "city" {
		t.Errorf("field = %q, want city", resp["field"])
	}
}

func TestCartAPI_AddressRecomputesTaxFromCart(t *testing.T) {
	backend := backendStub(t)
	deps := testDeps(t, backend.URL)
	e := echo.New()
	cartApi.RegisterCartRoutes(e.Group("/api"), deps)

	cartRequest(e, http.MethodPost, "/api/cart/items",
		`{"_id":"p1","name":"Galaxy S24","finalPrice":10000,"quantity":1,"maxStock":5}`)

	// International address: the response quote must carry tax on the
	// live subtotal, not on zero.
	rec := cartRequest(e, http.MethodPost, "/api/cart/address",
		`{"country":"USA","city":"Austin","streetAddress":"1 Main St","phone":"5550000000","email":"s@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("save address status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var resp struct {
		Delivery struct {
			TaxApplicable bool    `json:"taxApplicable"`
			TaxAmount     float64 `json:"taxAmount"`
		} `json:"delivery"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Delivery.TaxApplicable || resp.Delivery.TaxAmount != 1800 {
		t.Errorf("delivery = %+v, want 18%% tax on the 10000 subtotal", resp.Delivery)
	}
}

func TestCartAPI_MissingProductID(t *testing.T) {
	backend := backendStub(t)
	deps := testDeps(t, backend.URL)
	e := echo.New()
	cartApi.RegisterCartRoutes(e.Group("/api"), deps)

	rec := cartRequest(e, http.MethodPost, "/api/cart/items", `{"name":"nameless"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("item without _id status = %d, want 400", rec.Code)
	}
}

func TestCartAPI_Wishlist(t *testing.T) {
	backend := backendStub(t)
	deps := testDeps(t, backend.URL)
	e := echo.New()
	cartApi.RegisterCartRoutes(e.Group("/api"), deps)

	cartRequest(e, http.MethodPost, "/api/cart/items",
		`{"_id":"p2","name":"Redmi Note 13","finalPrice":22500,"quantity":1,"maxStock":40}`)
	rec := cartRequest(e, http.MethodPost, "/api/cart/items/p2/wishlist", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("move to wishlist status = %d, want 200: %s", rec.Code, rec.Body)
	}

	rec = cartRequest(e, http.MethodGet, "/api/wishlist", "")
	var resp struct {
		Wishlist []struct {
			ID string `json:"_id"`
		} `json:"wishlist"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Wishlist) != 1 || resp.Wishlist[0].ID != "p2" {
		t.Errorf("wishlist = %+v, want [p2]", resp.Wishlist)
	}

	// The moved line is gone from the cart
	rec = cartRequest(e, http.MethodGet, "/api/cart", "")
	var cart struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&cart); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cart.Count != 0 {
		t.Errorf("cart count = %d after wishlist move, want 0", cart.Count)
	}
}

func TestCartAPI_SessionIsolation(t *testing.T) {
	backend := backendStub(t)
	deps := testDeps(t, backend.URL)
	e := echo.New()
	cartApi.RegisterCartRoutes(e.Group("/api"), deps)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"_id":"p1","name":"Galaxy S24","finalPrice":10000,"quantity":1,"maxStock":5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Session-Id", "alice")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("add item status = %d: %s", rec.Code, rec.Body)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("X-Session-Id", "bob")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var cart struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&cart); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cart.Count != 0 {
		t.Errorf("bob sees %d items from alice's cart", cart.Count)
	}
}
