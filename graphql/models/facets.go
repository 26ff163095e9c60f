package models

import (
	catalogService "github.com/programmer-santosh-main/thapaelectronics/service/catalog"
)

// FromSectionFacets maps browse metadata to its GraphQL view.
func FromSectionFacets(f catalogService.SectionFacets) *SectionFacets {
	out := &SectionFacets{
		Section:  f.Section,
		SortKeys: f.SortKeys,
	}
	for _, c := range f.Categories {
		out.Categories = append(out.Categories, FacetOption{Value: c.Value, Label: c.Label})
	}
	for _, b := range f.Brands {
		out.Brands = append(out.Brands, FacetOption{Value: b.Value, Label: b.Label})
	}
	for _, p := range f.PricePresets {
		out.PricePresets = append(out.PricePresets, PricePreset{Min: p.Min, Max: p.Max, Label: p.Label})
	}
	if out.Categories == nil {
		out.Categories = []FacetOption{}
	}
	if out.Brands == nil {
		out.Brands = []FacetOption{}
	}
	if out.PricePresets == nil {
		out.PricePresets = []PricePreset{}
	}
	if out.SortKeys == nil {
		out.SortKeys = []string{}
	}
	return out
}
