package catalog

import (
	"testing"
)

func TestDecodeProducts_EnvelopeShape(t *testing.T) {
	data := []byte(`{"products":[{"_id":"p1","name":"Phone","price":1000},{"_id":"p2","name":"Bulb"}]}`)
	products, err := DecodeProducts(data)
	if err != nil {
		t.Fatalf("DecodeProducts: %v", err)
	}
	if len(products) != 2 || products[0].ID != "p1" || products[1].ID != "p2" {
		t.Errorf("products = %+v", products)
	}
}

func TestDecodeProducts_BareArrayShape(t *testing.T) {
	data := []byte(`[{"_id":"p1","name":"Phone"}]`)
	products, err := DecodeProducts(data)
	if err != nil {
		t.Fatalf("DecodeProducts: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Phone" {
		t.Errorf("products = %+v", products)
	}
}

func TestDecodeProducts_UnrecognizedShape(t *testing.T) {
	if _, err := DecodeProducts([]byte(`"nope"`)); err == nil {
		t.Error("want error for unrecognized shape")
	}
}

func TestFromMap_WeakTypingAndFallbacks(t *testing.T) {
	p, err := FromMap(map[string]interface{}{
		"id":           "legacy-7",
		"name":         "RC Car",
		"price":        "4500", // numeric string coerces
		"countInStock": float64(12),
		"createdAt":    "2025-03-01T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if p.ID != "legacy-7" {
		t.Errorf("ID = %q, want fallback to id", p.ID)
	}
	if p.Price != 4500 {
		t.Errorf("Price = %v, want 4500", p.Price)
	}
	if p.Stock != 12 {
		t.Errorf("Stock = %d, want countInStock fallback 12", p.Stock)
	}
	if p.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}
}

func TestEffectivePriceAndSalePrice(t *testing.T) {
	base := Product{Price: 100}
	if base.EffectivePrice() != 100 || base.SalePrice() != 100 {
		t.Error("plain price product")
	}
	discounted := Product{Price: 100, FinalPrice: 80}
	if discounted.EffectivePrice() != 100 {
		t.Error("range filtering uses price when set")
	}
	if discounted.SalePrice() != 80 {
		t.Error("cart snapshot uses finalPrice when set")
	}
	finalOnly := Product{FinalPrice: 60}
	if finalOnly.EffectivePrice() != 60 {
		t.Error("effective price falls back to finalPrice")
	}
}
