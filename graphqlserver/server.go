package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/programmer-santosh-main/thapaelectronics/graphql"
	gqlmodels "github.com/programmer-santosh-main/thapaelectronics/graphql/models"
	"github.com/programmer-santosh-main/thapaelectronics/graphql/registry"
	"github.com/programmer-santosh-main/thapaelectronics/graphql/resolvers"
	catalogService "github.com/programmer-santosh-main/thapaelectronics/service/catalog"
)

// RootResolver is the root for graphql-go. Query resolvers are created per
// request over the shared catalog client.
type RootResolver struct {
	Catalog *catalogService.Client
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{catalog: r.Catalog}
}

// QueryResolver implements Query fields. Delegates to the resolvers package.
type QueryResolver struct {
	catalog *catalogService.Client
}

// ProductsArgs matches the products query arguments.
type ProductsArgs struct {
	Section  string
	Search   *string
	Category *string
	Brand    *string
	MinPrice *float64
	MaxPrice *float64
	Sort     *string
}

func (r *QueryResolver) Products(ctx context.Context, args ProductsArgs) ([]*gqlmodels.Product, error) {
	res := resolvers.NewResolver(r.catalog)
	q := resolvers.ProductQuery{Section: args.Section}
	if args.Search != nil {
		q.Search = *args.Search
	}
	if args.Category != nil {
		q.Category = *args.Category
	}
	if args.Brand != nil {
		q.Brand = *args.Brand
	}
	if args.MinPrice != nil {
		q.MinPrice = *args.MinPrice
	}
	if args.MaxPrice != nil {
		q.MaxPrice = *args.MaxPrice
	}
	if args.Sort != nil {
		q.Sort = *args.Sort
	}
	return res.Products(ctx, q)
}

func (r *QueryResolver) Sections() []string {
	return resolvers.NewResolver(r.catalog).Sections()
}

// FacetsArgs matches the facets query arguments.
type FacetsArgs struct {
	Section string
}

func (r *QueryResolver) Facets(args FacetsArgs) *gqlmodels.SectionFacets {
	return resolvers.NewResolver(r.catalog).Facets(args.Section)
}

// SuggestionsArgs matches the suggestions query arguments.
type SuggestionsArgs struct {
	Section string
	Count   *int32
}

func (r *QueryResolver) Suggestions(ctx context.Context, args SuggestionsArgs) ([]*gqlmodels.Product, error) {
	count := 3
	if args.Count != nil && *args.Count > 0 {
		count = int(*args.Count)
	}
	return resolvers.NewResolver(r.catalog).Suggestions(ctx, args.Section, count)
}

// DeliveryEstimateArgs matches the deliveryEstimate query arguments.
type DeliveryEstimateArgs struct {
	Subtotal float64
	Country  string
	City     *string
}

func (r *QueryResolver) DeliveryEstimate(args DeliveryEstimateArgs) *gqlmodels.DeliveryEstimate {
	city := ""
	if args.City != nil {
		city = *args.City
	}
	return resolvers.NewResolver(r.catalog).DeliveryEstimate(args.Subtotal, args.Country, city)
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(catalog *catalogService.Client) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Catalog: catalog}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
