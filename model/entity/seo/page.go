package seo

// PageMeta is the SEO record for one storefront page as served by the
// upstream /api/seo/page/{page} endpoint. A response without Page set is
// treated as absent and suppresses injection silently.
type PageMeta struct {
	Page        string `json:"page"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Type        string `json:"type,omitempty"`
	SchemaType  string `json:"schemaType,omitempty"`
}
