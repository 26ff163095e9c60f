package parts

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	seoEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/seo"
)

// HeadMeta renders the SEO head block for a page: title, description,
// keywords, canonical, hreflang alternates, Open Graph, Twitter card and a
// JSON-LD snippet. Pages without metadata render nothing.
func HeadMeta(meta seoEntity.PageMeta, canonical string) template.HTML {
	if meta.Page == "" {
		return ""
	}

	var b strings.Builder
	tag := func(format string, args ...interface{}) {
		b.WriteString(fmt.Sprintf(format, args...))
		b.WriteString("\n")
	}

	tag("<title>%s</title>", template.HTMLEscapeString(meta.Title))
	tag(`<meta name="description" content="%s">`, template.HTMLEscapeString(meta.Description))
	tag(`<meta name="keywords" content="%s">`, template.HTMLEscapeString(meta.Keywords))

	tag(`<link rel="canonical" href="%s">`, template.HTMLEscapeString(canonical))
	for _, lang := range []string{"x-default", "en", "ne"} {
		tag(`<link rel="alternate" href="%s" hreflang="%s">`, template.HTMLEscapeString(canonical), lang)
	}

	ogType := meta.Type
	if ogType == "" {
		ogType = "website"
	}
	tag(`<meta property="og:title" content="%s">`, template.HTMLEscapeString(meta.Title))
	tag(`<meta property="og:description" content="%s">`, template.HTMLEscapeString(meta.Description))
	tag(`<meta property="og:image" content="%s">`, template.HTMLEscapeString(meta.Image))
	tag(`<meta property="og:url" content="%s">`, template.HTMLEscapeString(canonical))
	tag(`<meta property="og:type" content="%s">`, template.HTMLEscapeString(ogType))

	tag(`<meta name="twitter:card" content="summary_large_image">`)
	tag(`<meta name="twitter:title" content="%s">`, template.HTMLEscapeString(meta.Title))
	tag(`<meta name="twitter:description" content="%s">`, template.HTMLEscapeString(meta.Description))
	tag(`<meta name="twitter:image" content="%s">`, template.HTMLEscapeString(meta.Image))

	if ld := jsonLD(meta, canonical); ld != "" {
		tag(`<script type="application/ld+json">%s</script>`, ld)
	}

	return template.HTML(b.String())
}

func jsonLD(meta seoEntity.PageMeta, canonical string) string {
	schemaType := meta.SchemaType
	if schemaType == "" {
		schemaType = "WebPage"
	}
	payload, err := json.Marshal(map[string]string{
		"@context":    "https://schema.org",
		"@type":       schemaType,
		"url":         canonical,
		"name":        meta.Title,
		"description": meta.Description,
	})
	if err != nil {
		return ""
	}
	return string(payload)
}
