package seo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/programmer-santosh-main/thapaelectronics/api"
)

func init() {
	api.RegisterModule(RegisterSEORoutes)
}

// RegisterSEORoutes wires page metadata lookup and invalidation.
func RegisterSEORoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/seo")

	g.GET("/:page", func(c echo.Context) error {
		meta, ok := deps.SEO.PageMeta(c.Request().Context(), c.Param("page"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "no metadata for page"})
		}
		meta.URL = deps.SEO.Canonical(meta)
		return c.JSON(http.StatusOK, meta)
	})

	g.POST("/invalidate", func(c echo.Context) error {
		deps.SEO.Invalidate()
		return c.JSON(http.StatusOK, echo.Map{"message": "seo cache cleared"})
	})
}
