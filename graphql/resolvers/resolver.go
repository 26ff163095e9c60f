package resolvers

import (
	"context"

	"github.com/programmer-santosh-main/thapaelectronics/config"
	gqlmodels "github.com/programmer-santosh-main/thapaelectronics/graphql/models"
	checkoutEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/checkout"
	catalogService "github.com/programmer-santosh-main/thapaelectronics/service/catalog"
	checkoutService "github.com/programmer-santosh-main/thapaelectronics/service/checkout"
)

// Resolver answers storefront queries from the catalog snapshot and the
// delivery policy. One instance per request is cheap; it holds no state of
// its own.
type Resolver struct {
	catalog *catalogService.Client
	policy  *config.DeliveryPolicy
}

func NewResolver(catalog *catalogService.Client) *Resolver {
	return &Resolver{catalog: catalog, policy: config.GetDeliveryPolicy()}
}

// ProductQuery carries the filter arguments of the products query.
type ProductQuery struct {
	Section  string
	Search   string
	Category string
	Brand    string
	MinPrice float64
	MaxPrice float64
	Sort     string
}

func (r *Resolver) Products(ctx context.Context, q ProductQuery) ([]*gqlmodels.Product, error) {
	products, err := r.catalog.Section(ctx, q.Section)
	if err != nil {
		return nil, err
	}
	facets := map[string]string{}
	if q.Category != "" {
		facets["category"] = q.Category
	}
	if q.Brand != "" {
		facets["brand"] = q.Brand
	}
	filtered := catalogService.Apply(products, catalogService.Filter{
		SearchTerm: q.Search,
		Facets:     facets,
		PriceRange: catalogService.PriceRange{Min: q.MinPrice, Max: q.MaxPrice},
		SortKey:    q.Sort,
	})
	return gqlmodels.FromProducts(filtered), nil
}

func (r *Resolver) Sections() []string {
	return catalogService.Sections()
}

func (r *Resolver) Facets(section string) *gqlmodels.SectionFacets {
	facets, ok := catalogService.FacetsFor(section)
	if !ok {
		return nil
	}
	return gqlmodels.FromSectionFacets(facets)
}

func (r *Resolver) Suggestions(ctx context.Context, section string, count int) ([]*gqlmodels.Product, error) {
	picks, err := r.catalog.Suggestions(ctx, section, count)
	if err != nil {
		return nil, err
	}
	return gqlmodels.FromProducts(picks), nil
}

func (r *Resolver) DeliveryEstimate(subtotal float64, country, city string) *gqlmodels.DeliveryEstimate {
	addr := checkoutEntity.DeliveryAddress{Country: country, City: city}
	info := checkoutService.ComputeDelivery(subtotal, addr, r.policy)
	return gqlmodels.FromDeliveryInfo(info, checkoutService.Total(subtotal, info))
}
