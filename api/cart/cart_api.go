package cart

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/programmer-santosh-main/thapaelectronics/api"
	"github.com/programmer-santosh-main/thapaelectronics/config"
	cartEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/cart"
	checkoutEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/checkout"
	cartService "github.com/programmer-santosh-main/thapaelectronics/service/cart"
	checkoutService "github.com/programmer-santosh-main/thapaelectronics/service/checkout"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// RegisterCartRoutes wires the session cart, wishlist and checkout routes.
func RegisterCartRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/cart")

	// GET /api/cart – cart contents plus the delivery quote for the
	// currently saved address, if any
	g.GET("", func(c echo.Context) error {
		svc, checkout, err := services(c, deps)
		if err != nil {
			return storeError(c, err)
		}
		subtotal := svc.Subtotal()
		resp := echo.Map{
			"items":    svc.Items(),
			"subtotal": subtotal,
			"count":    svc.Len(),
		}
		if info, ok, err := checkout.DeliveryFor(c.Request().Context(), subtotal); err == nil && ok {
			resp["delivery"] = info
			resp["total"] = checkoutService.Total(subtotal, info)
		}
		return c.JSON(http.StatusOK, resp)
	})

	// POST /api/cart/items – add or merge an item
	g.POST("/items", func(c echo.Context) error {
		var item cartEntity.Item
		if err := c.Bind(&item); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid item payload"})
		}
		if item.ProductID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "_id is required"})
		}
		svc, _, err := services(c, deps)
		if err != nil {
			return storeError(c, err)
		}
		if err := svc.AddItem(c.Request().Context(), item); err != nil {
			return storeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"items": svc.Items(), "subtotal": svc.Subtotal()})
	})

	// PATCH /api/cart/items/:id – quantity delta, clamped to stock
	g.PATCH("/items/:id", func(c echo.Context) error {
		var body struct {
			Delta int `json:"delta"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		svc, _, err := services(c, deps)
		if err != nil {
			return storeError(c, err)
		}
		if err := svc.UpdateQuantity(c.Request().Context(), c.Param("id"), body.Delta); err != nil {
			return storeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"items": svc.Items(), "subtotal": svc.Subtotal()})
	})

	// DELETE /api/cart/items/:id – remove, no-op when absent
	g.DELETE("/items/:id", func(c echo.Context) error {
		svc, _, err := services(c, deps)
		if err != nil {
			return storeError(c, err)
		}
		if err := svc.RemoveItem(c.Request().Context(), c.Param("id")); err != nil {
			return storeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"items": svc.Items(), "subtotal": svc.Subtotal()})
	})

	// POST /api/cart/items/:id/wishlist – move a line to the wishlist
	g.POST("/items/:id/wishlist", func(c echo.Context) error {
		svc, _, err := services(c, deps)
		if err != nil {
			return storeError(c, err)
		}
		if err := svc.MoveToWishlist(c.Request().Context(), c.Param("id")); err != nil {
			return storeError(c, err)
		}
		wishlist, err := svc.Wishlist(c.Request().Context())
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"items": svc.Items(), "wishlist": wishlist})
	})

	// POST /api/cart/address – validate and persist the delivery address
	g.POST("/address", func(c echo.Context) error {
		var addr checkoutEntity.DeliveryAddress
		if err := c.Bind(&addr); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid address payload"})
		}
		svc, checkout, err := services(c, deps)
		if err != nil {
			return storeError(c, err)
		}
		if err := checkout.SubmitAddress(c.Request().Context(), addr); err != nil {
			var vErr *checkoutService.ValidationError
			if errors.As(err, &vErr) {
				return c.JSON(http.StatusBadRequest, echo.Map{"message": vErr.Error(), "field": vErr.Field})
			}
			return storeError(c, err)
		}
		// Re-derive against the live cart so tax reflects the current
		// subtotal, not a stale or empty one.
		info := checkoutService.ComputeDelivery(svc.Subtotal(), addr, config.GetDeliveryPolicy())
		return c.JSON(http.StatusOK, echo.Map{"address": addr, "delivery": info})
	})

	// GET /api/cart/delivery – quote for the current cart and address
	g.GET("/delivery", func(c echo.Context) error {
		svc, checkout, err := services(c, deps)
		if err != nil {
			return storeError(c, err)
		}
		info, ok, err := checkout.DeliveryFor(c.Request().Context(), svc.Subtotal())
		if err != nil {
			return storeError(c, err)
		}
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "no delivery address on file"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"delivery": info,
			"subtotal": svc.Subtotal(),
			"total":    checkoutService.Total(svc.Subtotal(), info),
		})
	})

	// POST /api/cart/checkout – assemble the payment handoff payload
	g.POST("/checkout", func(c echo.Context) error {
		svc, checkout, err := services(c, deps)
		if err != nil {
			return storeError(c, err)
		}
		data, err := checkout.Handoff(c.Request().Context(), svc)
		if err != nil {
			switch {
			case errors.Is(err, checkoutService.ErrEmptyCart):
				return c.JSON(http.StatusConflict, echo.Map{"message": "cart is empty"})
			case errors.Is(err, checkoutService.ErrNoAddress):
				return c.JSON(http.StatusConflict, echo.Map{"message": "delivery address required"})
			}
			return storeError(c, err)
		}
		return c.JSON(http.StatusOK, data)
	})

	// GET /api/wishlist – lives beside cart, shares its session store
	apiGroup.GET("/wishlist", func(c echo.Context) error {
		svc, _, err := services(c, deps)
		if err != nil {
			return storeError(c, err)
		}
		wishlist, err := svc.Wishlist(c.Request().Context())
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"wishlist": wishlist})
	})
}

func services(c echo.Context, deps *api.Deps) (*cartService.Service, *checkoutService.Service, error) {
	store := deps.SessionStore(c)
	svc, err := cartService.NewService(c.Request().Context(), store)
	if err != nil {
		return nil, nil, err
	}
	return svc, checkoutService.NewService(store, config.GetDeliveryPolicy()), nil
}

func storeError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
}
