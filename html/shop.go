package html

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/programmer-santosh-main/thapaelectronics/api"
	parts "github.com/programmer-santosh-main/thapaelectronics/html/parts"
	catalogService "github.com/programmer-santosh-main/thapaelectronics/service/catalog"
)

func init() {
	api.RegisterHTMLModule(RegisterShopHTMLRoutes)
}

var sectionHeadings = map[string]string{
	catalogService.SectionMobile:      "Mobile Phones",
	catalogService.SectionSmartHome:   "Smart Home",
	catalogService.SectionToys:        "Toys & Gadgets",
	catalogService.SectionAccessories: "Accessories & Gadgets",
}

// RegisterShopHTMLRoutes registers HTML routes for section browsing
func RegisterShopHTMLRoutes(e *echo.Echo, deps *api.Deps) {
	e.GET("/shop/:section", func(c echo.Context) error {
		section := c.Param("section")
		facets, ok := catalogService.FacetsFor(section)
		if !ok {
			return c.String(http.StatusNotFound, "Section not found")
		}

		start := time.Now()
		products, err := deps.Catalog.Section(c.Request().Context(), section)
		log.Printf("catalog section %s took %s", section, time.Since(start))
		if err != nil {
			// The page still renders with its empty state when the
			// upstream is down.
			products = nil
		}

		facetQuery := map[string]string{}
		if v := c.QueryParam("category"); v != "" {
			facetQuery["category"] = v
		}
		if v := c.QueryParam("brand"); v != "" {
			facetQuery["brand"] = v
		}
		filtered := catalogService.Apply(products, catalogService.Filter{
			SearchTerm: c.QueryParam("search"),
			Facets:     facetQuery,
			PriceRange: catalogService.PriceRange{
				Min: cast.ToFloat64(c.QueryParam("min")),
				Max: cast.ToFloat64(c.QueryParam("max")),
			},
			SortKey: c.QueryParam("sort"),
		})

		meta, _ := deps.SEO.PageMeta(c.Request().Context(), section)
		metaHTML := parts.HeadMeta(meta, deps.SEO.Canonical(meta))

		criticalCSS, _ := parts.GetCriticalCSSCached()

		heading := sectionHeadings[section]
		if heading == "" {
			heading = section
		}
		return c.Render(http.StatusOK, "shop.html", map[string]interface{}{
			"Heading":     heading,
			"Sections":    catalogService.Sections(),
			"Facets":      facets,
			"Products":    filtered,
			"MetaHTML":    metaHTML,
			"CriticalCSS": template.CSS(criticalCSS),
		})
	})
}
