package graphql

import (
	"strings"
	"sync"
)

const schemaBase = `
schema {
	query: Query
}

type Query {
	products(section: String!, search: String, category: String, brand: String, minPrice: Float, maxPrice: Float, sort: String): [Product!]!
	sections: [String!]!
	facets(section: String!): SectionFacets
	suggestions(section: String!, count: Int): [Product!]!
	deliveryEstimate(subtotal: Float!, country: String!, city: String): DeliveryEstimate!
	_extension(name: String!, args: String): String
}

type Product {
	id: ID!
	name: String!
	category: String!
	subcategory: String!
	brand: String!
	image: String!
	tags: [String!]!
	description: String!
	price: Float!
	finalPrice: Float!
	discount: Float!
	rating: Float!
	reviewCount: Int!
	stock: Int!
	createdAt: String!
}

type FacetOption {
	value: String!
	label: String!
}

type PricePreset {
	min: Float!
	max: Float!
	label: String!
}

type SectionFacets {
	section: String!
	categories: [FacetOption!]!
	brands: [FacetOption!]!
	pricePresets: [PricePreset!]!
	sortKeys: [String!]!
}

type DeliveryEstimate {
	freeDelivery: Boolean!
	deliveryCharges: Float!
	taxApplicable: Boolean!
	taxAmount: Float!
	taxMessage: String!
	deliveryMessage: String!
	total: Float!
}
`

var (
	schemaExtensions []string
	schemaMu         sync.Mutex
)

// RegisterSchemaExtension appends schema to the Query. Call from init() in custom packages.
func RegisterSchemaExtension(schema string) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	schemaExtensions = append(schemaExtensions, strings.TrimSpace(schema))
}

// Schema returns base schema + registered extensions.
func Schema() string {
	schemaMu.Lock()
	ext := schemaExtensions
	schemaMu.Unlock()
	if len(ext) == 0 {
		return schemaBase
	}
	return schemaBase + "\n\n" + strings.Join(ext, "\n\n")
}
