package models

import (
	gql "github.com/graph-gophers/graphql-go"
)

// GraphQL view models. Ints are int32 for graphql-go, times are RFC3339
// strings; field names match the schema for UseFieldResolvers.

type Product struct {
	ID          gql.ID
	Name        string
	Category    string
	Subcategory string
	Brand       string
	Image       string
	Tags        []string
	Description string
	Price       float64
	FinalPrice  float64
	Discount    float64
	Rating      float64
	ReviewCount int32
	Stock       int32
	CreatedAt   string
}

type FacetOption struct {
	Value string
	Label string
}

type PricePreset struct {
	Min   float64
	Max   float64
	Label string
}

type SectionFacets struct {
	Section      string
	Categories   []FacetOption
	Brands       []FacetOption
	PricePresets []PricePreset
	SortKeys     []string
}

type DeliveryEstimate struct {
	FreeDelivery    bool
	DeliveryCharges float64
	TaxApplicable   bool
	TaxAmount       float64
	TaxMessage      string
	DeliveryMessage string
	Total           float64
}
