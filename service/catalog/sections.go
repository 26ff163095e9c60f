package catalog

// FacetOption is one selectable value of a facet.
type FacetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PricePreset is a labeled price range shortcut.
type PricePreset struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Label string  `json:"label"`
}

// SectionFacets is the browse metadata for one section page.
type SectionFacets struct {
	Section      string        `json:"section"`
	Categories   []FacetOption `json:"categories"`
	Brands       []FacetOption `json:"brands"`
	PricePresets []PricePreset `json:"pricePresets"`
	SortKeys     []string      `json:"sortKeys"`
}

var mobileBrands = []FacetOption{
	{Value: "all", Label: "All Brands"},
	{Value: "apple", Label: "Apple"},
	{Value: "samsung", Label: "Samsung"},
	{Value: "xiaomi", Label: "Xiaomi"},
	{Value: "oneplus", Label: "OnePlus"},
	{Value: "google", Label: "Google"},
	{Value: "oppo", Label: "Oppo"},
	{Value: "vivo", Label: "Vivo"},
	{Value: "realme", Label: "Realme"},
	{Value: "nothing", Label: "Nothing"},
	{Value: "motorola", Label: "Motorola"},
	{Value: "nokia", Label: "Nokia"},
}

var sectionFacets = map[string]SectionFacets{
	SectionMobile: {
		Section: SectionMobile,
		Categories: []FacetOption{
			{Value: "all", Label: "All Mobiles"},
			{Value: "flagship", Label: "Flagship"},
			{Value: "midrange", Label: "Mid-Range"},
			{Value: "budget", Label: "Budget"},
			{Value: "gaming", Label: "Gaming"},
			{Value: "camera", Label: "Camera"},
			{Value: "foldable", Label: "Foldable"},
			{Value: "5g", Label: "5G Phones"},
		},
		Brands: mobileBrands,
		PricePresets: []PricePreset{
			{Min: 0, Max: 10000, Label: "Under रू 10,000"},
			{Min: 10000, Max: 25000, Label: "रू 10,000 - 25,000"},
			{Min: 25000, Max: 50000, Label: "रू 25,000 - 50,000"},
			{Min: 50000, Max: 100000, Label: "रू 50,000 - 1,00,000"},
			{Min: 100000, Max: 300000, Label: "Over रू 1,00,000"},
		},
	},
	SectionSmartHome: {
		Section: SectionSmartHome,
		Categories: []FacetOption{
			{Value: "all", Label: "All Devices"},
			{Value: "security", Label: "Security"},
			{Value: "lighting", Label: "Lighting"},
			{Value: "entertainment", Label: "Entertainment"},
			{Value: "climate", Label: "Climate"},
		},
		PricePresets: []PricePreset{
			{Min: 0, Max: 5000, Label: "Under रू 5,000"},
			{Min: 5000, Max: 20000, Label: "रू 5,000 - 20,000"},
			{Min: 20000, Max: 100000, Label: "Over रू 20,000"},
		},
	},
	SectionToys: {
		Section: SectionToys,
		Categories: []FacetOption{
			{Value: "all", Label: "All Toys"},
			{Value: "educational", Label: "Educational"},
			{Value: "outdoor game", Label: "Outdoor"},
			{Value: "board game", Label: "Board Games"},
			{Value: "soft toy", Label: "Soft Toys"},
		},
	},
	SectionAccessories: {
		Section: SectionAccessories,
		Categories: []FacetOption{
			{Value: "all", Label: "All Accessories"},
			{Value: "charger", Label: "Chargers"},
			{Value: "cable", Label: "Cables"},
			{Value: "power bank", Label: "Power Banks"},
			{Value: "audio", Label: "Audio"},
			{Value: "monitor", Label: "Monitors"},
			{Value: "mouse", Label: "Mice"},
			{Value: "keyboard", Label: "Keyboards"},
			{Value: "router", Label: "Networking"},
		},
	},
}

// FacetsFor returns the browse metadata for a section.
func FacetsFor(section string) (SectionFacets, bool) {
	f, ok := sectionFacets[section]
	if !ok {
		return SectionFacets{}, false
	}
	f.SortKeys = []string{SortNewest, SortPriceLow, SortPriceHigh, SortRating, SortPopular, SortDiscount}
	return f, true
}
