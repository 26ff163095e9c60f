package html

import (
	"html/template"
	"io"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// NewRenderer builds the storefront template set. Templates are compiled in
// so the server binary carries no asset directory besides the optional CSS.
func NewRenderer() *Template {
	t := template.New("storefront").Funcs(TemplateFuncs())
	template.Must(t.New("shop.html").Parse(shopTemplate))
	template.Must(t.New("policy.html").Parse(policyTemplate))
	return &Template{Templates: t}
}

// TemplateFuncs returns FuncMap with helpers for price and pagination
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"npr": func(v float64) string {
			return "रू " + strconv.FormatFloat(v, 'f', -1, 64)
		},
	}
}

const shopTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
{{.MetaHTML}}
{{if .CriticalCSS}}<style>{{.CriticalCSS}}</style>{{end}}
</head>
<body>
<header>
  <h1>{{.Heading}}</h1>
  <nav>
    {{range .Sections}}<a href="/shop/{{.}}">{{.}}</a> {{end}}
  </nav>
</header>
<main>
  <aside>
    <h2>Filters</h2>
    {{range .Facets.Categories}}
    <div><a href="?category={{.Value}}">{{.Label}}</a></div>
    {{end}}
    {{range .Facets.Brands}}
    <div><a href="?brand={{.Value}}">{{.Label}}</a></div>
    {{end}}
    {{range .Facets.PricePresets}}
    <div><a href="?min={{.Min}}&max={{.Max}}">{{.Label}}</a></div>
    {{end}}
  </aside>
  <section>
    {{if .Products}}
    <ul class="product-grid">
      {{range .Products}}
      <li>
        <img src="{{.Image}}" alt="{{.Name}}" loading="lazy">
        <h3>{{.Name}}</h3>
        <p>{{.Brand}}</p>
        <p>{{npr .EffectivePrice}}</p>
        {{if gt .Discount 0.0}}<p class="discount">-{{.Discount}}%</p>{{end}}
      </li>
      {{end}}
    </ul>
    {{else}}
    <p class="empty">No products found in this section.</p>
    {{end}}
  </section>
</main>
</body>
</html>`

const policyTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
{{.MetaHTML}}
{{if .CriticalCSS}}<style>{{.CriticalCSS}}</style>{{end}}
</head>
<body>
<header><h1>{{.Title}}</h1><p>Last updated: {{.LastUpdated}}</p></header>
<main>{{.Body}}</main>
<footer>
  <nav>
    {{range .Pages}}<a href="/policy/{{.}}">{{.}}</a> {{end}}
  </nav>
</footer>
</body>
</html>`
