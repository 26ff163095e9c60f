package catalog

import (
	"strings"

	catalogEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/catalog"
)

// MatchesSection reports whether a product belongs to a storefront section.
// Existential test: true as soon as any keyword is a substring of the
// lowercased category, name or description, or an exact element of the
// lowercased tags. Empty fields simply never match — they do not error.
func MatchesSection(p catalogEntity.Product, section string) bool {
	rule, ok := SectionRules[section]
	if !ok {
		return false
	}
	category := strings.ToLower(p.Category)
	for _, alias := range rule.CategoryAliases {
		if category != "" && strings.Contains(category, alias) {
			return true
		}
	}
	return matchKeywords(p, rule.Keywords)
}

func matchKeywords(p catalogEntity.Product, keywords []string) bool {
	category := strings.ToLower(p.Category)
	name := strings.ToLower(p.Name)
	description := strings.ToLower(p.Description)
	tags := p.LowerTags()

	for _, kw := range keywords {
		if category != "" && strings.Contains(category, kw) {
			return true
		}
		if name != "" && strings.Contains(name, kw) {
			return true
		}
		if description != "" && strings.Contains(description, kw) {
			return true
		}
		for _, tag := range tags {
			if tag == kw {
				return true
			}
		}
	}
	return false
}

// ForSection narrows a product list to one section. Input is never mutated.
func ForSection(products []catalogEntity.Product, section string) []catalogEntity.Product {
	out := make([]catalogEntity.Product, 0, len(products))
	for _, p := range products {
		if MatchesSection(p, section) {
			out = append(out, p)
		}
	}
	return out
}
