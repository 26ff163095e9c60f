package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Product is a catalog record as served by the upstream backend. Read-only:
// the storefront never mutates products locally. Missing optional fields
// default to zero values rather than erroring.
type Product struct {
	ID          string    `json:"_id" mapstructure:"_id"`
	Name        string    `json:"name" mapstructure:"name"`
	Category    string    `json:"category" mapstructure:"category"`
	Subcategory string    `json:"subcategory" mapstructure:"subcategory"`
	Brand       string    `json:"brand" mapstructure:"brand"`
	Image       string    `json:"image" mapstructure:"image"`
	Tags        []string  `json:"tags" mapstructure:"tags"`
	Description string    `json:"description" mapstructure:"description"`
	Price       float64   `json:"price" mapstructure:"price"`
	FinalPrice  float64   `json:"finalPrice" mapstructure:"finalPrice"`
	Discount    float64   `json:"discount" mapstructure:"discount"`
	Rating      float64   `json:"rating" mapstructure:"rating"`
	ReviewCount int       `json:"reviewCount" mapstructure:"reviewCount"`
	Stock       int       `json:"stock" mapstructure:"stock"`
	CreatedAt   time.Time `json:"createdAt" mapstructure:"createdAt"`
}

// EffectivePrice is the price used for range filtering: price, falling back
// to finalPrice, falling back to 0.
func (p Product) EffectivePrice() float64 {
	if p.Price != 0 {
		return p.Price
	}
	return p.FinalPrice
}

// SalePrice is the price a cart line snapshot carries: finalPrice when the
// product is discounted, the base price otherwise.
func (p Product) SalePrice() float64 {
	if p.FinalPrice != 0 {
		return p.FinalPrice
	}
	return p.Price
}

// LowerTags returns the tag set lowercased.
func (p Product) LowerTags() []string {
	tags := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		tags[i] = strings.ToLower(t)
	}
	return tags
}

// FromMap decodes one raw upstream product object. The upstream shape is
// duck-typed (Mongo documents), so decoding is weakly typed: numeric strings
// coerce, absent fields stay zero.
func FromMap(raw map[string]interface{}) (Product, error) {
	var p Product
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return p, err
	}
	if err := dec.Decode(raw); err != nil {
		return p, fmt.Errorf("decode product: %w", err)
	}
	if p.ID == "" {
		p.ID = cast.ToString(raw["id"])
	}
	if p.Stock == 0 {
		p.Stock = cast.ToInt(raw["countInStock"])
	}
	return p, nil
}

// DecodeProducts resolves the upstream /api/products response once at the
// API boundary. The endpoint returns either {"products": [...]} or a bare
// array; both shapes land in the same []Product.
func DecodeProducts(data []byte) ([]Product, error) {
	var envelope struct {
		Products []map[string]interface{} `json:"products"`
	}
	raw := envelope.Products
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Products == nil {
		var bare []map[string]interface{}
		if err := json.Unmarshal(data, &bare); err != nil {
			return nil, fmt.Errorf("products response: unrecognized shape: %w", err)
		}
		raw = bare
	} else {
		raw = envelope.Products
	}

	products := make([]Product, 0, len(raw))
	for _, m := range raw {
		p, err := FromMap(m)
		if err != nil {
			// Malformed records degrade, they do not fail the page.
			continue
		}
		products = append(products, p)
	}
	return products, nil
}
