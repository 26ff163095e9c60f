package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public storefront paths (catalog browsing and OAuth capture, no auth)
	// plus the shopper session surface. Maintenance routes (catalog refresh,
	// search, SEO invalidation) stay behind API auth.
	return []string{
		"/storefront/:section",
		"/storefront/:section/facets",
		"/shop/:section",
		"/policy/:page",
		"/oauth-success",
		"/graphql",
		"/playground",
		"/healthz",
		"/api/auth/login",
		"/api/auth/register",
		"/api/auth/session",
		"/api/auth/logout",
		"/api/auth/oauth/:provider",
		"/api/cart",
		"/api/cart/items",
		"/api/cart/items/:id",
		"/api/cart/items/:id/wishlist",
		"/api/cart/address",
		"/api/cart/delivery",
		"/api/cart/checkout",
		"/api/wishlist",
		"/api/seo/:page",
		"/api/catalog/:section/suggestions",
	}
}
