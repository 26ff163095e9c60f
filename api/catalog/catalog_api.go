package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/programmer-santosh-main/thapaelectronics/api"
	catalogService "github.com/programmer-santosh-main/thapaelectronics/service/catalog"
	"github.com/programmer-santosh-main/thapaelectronics/service/upstream"
)

func init() {
	api.RegisterRoute(RegisterStorefrontRoutes)
	api.RegisterModule(RegisterCatalogRoutes)
}

// RegisterStorefrontRoutes wires the public browse endpoints.
func RegisterStorefrontRoutes(e *echo.Echo, deps *api.Deps) {
	// GET /storefront/:section – section products with filter/sort query params
	e.GET("/storefront/:section", func(c echo.Context) error {
		section := c.Param("section")
		if !catalogService.KnownSection(section) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "unknown section"})
		}
		start := time.Now()

		products, err := deps.Catalog.Section(c.Request().Context(), section)
		if err != nil {
			return upstreamError(c, err)
		}

		filter := filterFromQuery(c)
		filtered := catalogService.Apply(products, filter)
		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))

		// Empty result is a valid outcome; the client renders its own
		// empty state.
		return c.JSON(http.StatusOK, echo.Map{
			"section":  section,
			"products": filtered,
			"total":    len(filtered),
		})
	})

	// GET /storefront/:section/facets – browse metadata for the section
	e.GET("/storefront/:section/facets", func(c echo.Context) error {
		facets, ok := catalogService.FacetsFor(c.Param("section"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "unknown section"})
		}
		return c.JSON(http.StatusOK, facets)
	})
}

// RegisterCatalogRoutes wires the authenticated catalog maintenance routes.
func RegisterCatalogRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/catalog")

	// POST /api/catalog/refresh – wholesale snapshot replacement
	g.POST("/refresh", func(c echo.Context) error {
		deps.Catalog.Invalidate()
		products, err := deps.Catalog.Refresh(c.Request().Context())
		if err != nil {
			return upstreamError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"refreshed": len(products)})
	})

	// GET /api/catalog/search?q= – ES-backed when configured, filter
	// pipeline otherwise
	g.GET("/search", func(c echo.Context) error {
		query := c.QueryParam("q")
		if query == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "q is required"})
		}
		size := cast.ToInt(c.QueryParam("size"))

		search := catalogService.GetSearchService()
		if search.Enabled() {
			products, err := search.Search(c.Request().Context(), query, size)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
			}
			return c.JSON(http.StatusOK, echo.Map{"products": products, "total": len(products), "engine": "elasticsearch"})
		}

		products, err := deps.Catalog.Snapshot(c.Request().Context())
		if err != nil {
			return upstreamError(c, err)
		}
		filtered := catalogService.Apply(products, catalogService.Filter{SearchTerm: query})
		if size > 0 && len(filtered) > size {
			filtered = filtered[:size]
		}
		return c.JSON(http.StatusOK, echo.Map{"products": filtered, "total": len(filtered), "engine": "memory"})
	})

	// GET /api/catalog/:section/suggestions – top-rated rail picks
	g.GET("/:section/suggestions", func(c echo.Context) error {
		section := c.Param("section")
		if !catalogService.KnownSection(section) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "unknown section"})
		}
		n := cast.ToInt(c.QueryParam("n"))
		if n <= 0 {
			n = 3
		}
		picks, err := deps.Catalog.Suggestions(c.Request().Context(), section, n)
		if err != nil {
			return upstreamError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"products": picks})
	})
}

func filterFromQuery(c echo.Context) catalogService.Filter {
	facets := map[string]string{}
	if v := c.QueryParam("category"); v != "" {
		facets["category"] = v
	}
	if v := c.QueryParam("brand"); v != "" {
		facets["brand"] = v
	}
	return catalogService.Filter{
		SearchTerm: c.QueryParam("search"),
		Facets:     facets,
		PriceRange: catalogService.PriceRange{
			Min: cast.ToFloat64(c.QueryParam("min")),
			Max: cast.ToFloat64(c.QueryParam("max")),
		},
		SortKey: c.QueryParam("sort"),
	}
}

func upstreamError(c echo.Context, err error) error {
	var upErr *upstream.Error
	if errors.As(err, &upErr) && upErr.Message != "" {
		return c.JSON(http.StatusBadGateway, echo.Map{"message": upErr.Message})
	}
	return c.JSON(http.StatusBadGateway, echo.Map{"message": "Error loading products."})
}
