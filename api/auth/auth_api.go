package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/programmer-santosh-main/thapaelectronics/api"
	authService "github.com/programmer-santosh-main/thapaelectronics/service/auth"
)

func init() {
	api.RegisterModule(RegisterAuthRoutes)
	api.RegisterRoute(RegisterOAuthLanding)
}

// RegisterAuthRoutes wires login, register, session and OAuth endpoints.
func RegisterAuthRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/auth")

	g.POST("/login", func(c echo.Context) error {
		var creds authService.Credentials
		if err := c.Bind(&creds); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid login payload"})
		}
		flow := flowFor(c, deps)
		result := flow.Login(c.Request().Context(), creds)
		if result.State != authService.StateAuthenticated {
			return c.JSON(http.StatusUnauthorized, result)
		}
		return c.JSON(http.StatusOK, result)
	})

	g.POST("/register", func(c echo.Context) error {
		var form authService.RegisterForm
		if err := c.Bind(&form); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid register payload"})
		}
		flow := flowFor(c, deps)
		// Registration never authenticates; the message carries the
		// outcome either way.
		result := flow.Register(c.Request().Context(), form)
		return c.JSON(http.StatusOK, result)
	})

	g.GET("/session", func(c echo.Context) error {
		flow := flowFor(c, deps)
		info, err := flow.Session(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		if !info.Authenticated {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "no active session"})
		}
		return c.JSON(http.StatusOK, info)
	})

	g.POST("/logout", func(c echo.Context) error {
		flow := flowFor(c, deps)
		if err := flow.Logout(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
	})

	// GET /api/auth/oauth/:provider – 302 to the backend consent screen
	g.GET("/oauth/:provider", func(c echo.Context) error {
		flow := flowFor(c, deps)
		target, err := flow.ProviderRedirectURL(c.Param("provider"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
		return c.Redirect(http.StatusFound, target)
	})
}

// RegisterOAuthLanding wires the public callback the backend redirects to
// after a successful provider exchange.
func RegisterOAuthLanding(e *echo.Echo, deps *api.Deps) {
	e.GET("/oauth-success", func(c echo.Context) error {
		flow := flowFor(c, deps)
		redirect, err := flow.HandleOAuthCallback(c.Request().Context(), c.QueryParam("token"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.Redirect(http.StatusFound, redirect)
	})
}

func flowFor(c echo.Context, deps *api.Deps) *authService.Flow {
	return authService.NewFlow(deps.BackendURL, deps.SessionStore(c))
}
