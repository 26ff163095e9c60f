package catalog

import (
	"sort"
	"strings"

	catalogEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/catalog"
)

// Sort keys accepted by Apply. Unknown keys fall back to newest.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortPopular   = "popular"
	SortDiscount  = "discount"
)

// PriceRange bounds the effective price (price, falling back to finalPrice,
// falling back to 0). Max <= 0 means unbounded.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filter is one page's filter state. Facets apply conjunctively; the value
// "all" (or empty) disables a facet.
type Filter struct {
	SearchTerm string            `json:"searchTerm"`
	Facets     map[string]string `json:"facets"`
	PriceRange PriceRange        `json:"priceRange"`
	SortKey    string            `json:"sortKey"`
}

// Apply runs the pipeline — search, facets, price bounds, sort — and returns
// a fresh slice. The input is never mutated. Sorting is stable so equal keys
// keep their upstream order (deterministic output).
func Apply(products []catalogEntity.Product, f Filter) []catalogEntity.Product {
	filtered := make([]catalogEntity.Product, 0, len(products))
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	for _, p := range products {
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		if !matchesFacets(p, f.Facets) {
			continue
		}
		if !inPriceRange(p, f.PriceRange) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, f.SortKey)
	return filtered
}

func matchesSearch(p catalogEntity.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) {
		return true
	}
	for _, tag := range p.LowerTags() {
		if strings.Contains(tag, term) {
			return true
		}
	}
	return false
}

func matchesFacets(p catalogEntity.Product, facets map[string]string) bool {
	for name, value := range facets {
		value = strings.ToLower(strings.TrimSpace(value))
		if value == "" || value == "all" {
			continue
		}
		if name == "brand" {
			if !strings.Contains(strings.ToLower(p.Brand), value) {
				return false
			}
			continue
		}
		if keywords, ok := FacetKeywords[value]; ok {
			if !matchKeywords(p, keywords) {
				return false
			}
			continue
		}
		if !matchesLiteralFacet(p, value) {
			return false
		}
	}
	return true
}

// matchesLiteralFacet is the fallback for facet values without a curated
// keyword subset: substring on category/subcategory, exact on tags.
func matchesLiteralFacet(p catalogEntity.Product, value string) bool {
	if strings.Contains(strings.ToLower(p.Category), value) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Subcategory), value) {
		return true
	}
	for _, tag := range p.LowerTags() {
		if tag == value {
			return true
		}
	}
	return false
}

func inPriceRange(p catalogEntity.Product, r PriceRange) bool {
	price := p.EffectivePrice()
	if price < r.Min {
		return false
	}
	if r.Max > 0 && price > r.Max {
		return false
	}
	return true
}

func sortProducts(products []catalogEntity.Product, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReviewCount > products[j].ReviewCount
		})
	case SortDiscount:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Discount > products[j].Discount
		})
	default: // newest; missing createdAt sorts as epoch
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
