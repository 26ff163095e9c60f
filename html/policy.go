package html

import (
	"html/template"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/programmer-santosh-main/thapaelectronics/api"
	parts "github.com/programmer-santosh-main/thapaelectronics/html/parts"
)

func init() {
	api.RegisterHTMLModule(RegisterPolicyHTMLRoutes)
}

// PolicyPage is one static policy document.
type PolicyPage struct {
	Title       string
	LastUpdated string
	Body        template.HTML
}

// RegisterPolicyHTMLRoutes registers HTML routes for static policy content
func RegisterPolicyHTMLRoutes(e *echo.Echo, deps *api.Deps) {
	e.GET("/policy/:page", func(c echo.Context) error {
		page, ok := policyPages[c.Param("page")]
		if !ok {
			return c.String(http.StatusNotFound, "Policy page not found")
		}

		meta, _ := deps.SEO.PageMeta(c.Request().Context(), "policy")
		metaHTML := parts.HeadMeta(meta, deps.SEO.Canonical(meta))
		criticalCSS, _ := parts.GetCriticalCSSCached()

		return c.Render(http.StatusOK, "policy.html", map[string]interface{}{
			"Title":       page.Title,
			"LastUpdated": page.LastUpdated,
			"Body":        page.Body,
			"Pages":       PolicyPageNames(),
			"MetaHTML":    metaHTML,
			"CriticalCSS": template.CSS(criticalCSS),
		})
	})
}

// PolicyPageNames returns the available policy slugs, sorted.
func PolicyPageNames() []string {
	names := make([]string, 0, len(policyPages))
	for name := range policyPages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var policyPages = map[string]PolicyPage{
	"privacy": {
		Title:       "Privacy Policy",
		LastUpdated: "December 06, 2025",
		Body: `
<h3>Information We Collect</h3>
<p>We collect information to provide better services for our electronics customers.</p>
<h4>Personal Information</h4>
<ul>
<li>Name, email address, phone number</li>
<li>Shipping and billing addresses</li>
<li>Payment information (processed securely through payment gateways)</li>
</ul>
<h4>Usage Information</h4>
<ul>
<li>Browser type and device information</li>
<li>IP address and location data</li>
<li>Search queries for electronics and gadgets</li>
</ul>
<h3>How We Use Your Information</h3>
<ul>
<li>Process and fulfill your electronics orders</li>
<li>Send order confirmations and shipping updates</li>
<li>Provide technical support for electronic products</li>
<li>Send promotional emails about new tech products (opt-out anytime)</li>
<li>Prevent fraud and unauthorized transactions</li>
</ul>`,
	},
	"terms": {
		Title:       "Terms of Service",
		LastUpdated: "December 05, 2025",
		Body: `
<h3>Account Registration</h3>
<p>To purchase electronics from our store, you must register for an account. You agree to provide accurate information, maintain the security of your credentials and accept responsibility for activity under your account.</p>
<h3>Product Information</h3>
<ul>
<li>Product colors may vary slightly due to monitor settings</li>
<li>Technical specifications are provided by manufacturers</li>
<li>Accessories shown in pictures may be sold separately</li>
</ul>
<h3>Warranty</h3>
<ul>
<li>Most electronics come with manufacturer's warranty</li>
<li>Warranty cards must be preserved for service claims</li>
<li>Warranty does not cover physical or liquid damage</li>
</ul>
<h3>Pricing and Payments</h3>
<ul>
<li>All prices are in Nepalese Rupees (Rs)</li>
<li>Prices are subject to change without notice</li>
<li>We accept major cards, eSewa and bank transfers</li>
</ul>`,
	},
	"shipping": {
		Title:       "Shipping Policy",
		LastUpdated: "December 05, 2025",
		Body: `
<h3>Shipping Methods &amp; Timeframes</h3>
<p>All electronics are shipped with protective packaging to prevent damage during transit.</p>
<h4>Standard Shipping</h4>
<ul>
<li>Delivery within 2-3 business days within Kathmandu Valley</li>
<li>Free delivery inside Kathmandu Valley</li>
</ul>
<h4>Outside Valley Delivery</h4>
<ul>
<li>Delivery within 3-7 business days</li>
<li>Flat delivery charge applies outside the valley</li>
</ul>
<h3>Shipping Restrictions</h3>
<ul>
<li>We ship throughout Nepal</li>
<li>International shipping available on request; charges quoted separately</li>
<li>High-value electronics require signature on delivery</li>
</ul>
<h3>Order Tracking</h3>
<p>Once your order is shipped you receive a tracking number via email and SMS.</p>`,
	},
	"returns": {
		Title:       "Return & Refund Policy",
		LastUpdated: "December 05, 2025",
		Body: `
<h3>Return Window</h3>
<p>Electronics may be returned within 7 days from delivery; software and digital products are non-returnable once activated.</p>
<h3>Return Conditions</h3>
<ul>
<li>Original, unopened condition with seals intact</li>
<li>Original packaging with all accessories included</li>
<li>Original invoice and warranty card attached</li>
<li>Free from physical damage, scratches or liquid damage</li>
</ul>
<h3>Defective Products</h3>
<ul>
<li>Contact us within 48 hours of delivery</li>
<li>Provide clear photos or videos of the defect</li>
<li>If confirmed defective, we replace or refund</li>
</ul>
<h3>Refund Process</h3>
<p>Pickup within 2 days, inspection within 72 hours, refund initiated within 5-7 business days after approval.</p>`,
	},
	"cancellation": {
		Title:       "Order Cancellation",
		LastUpdated: "December 05, 2025",
		Body: `
<h3>Cancellation Timeframe</h3>
<h4>Before Processing</h4>
<ul>
<li>100% refund, processed within 24-48 hours</li>
<li>No cancellation charges</li>
</ul>
<h4>During Processing</h4>
<ul>
<li>If not shipped yet, 100% refund</li>
<li>If shipped, refund after return and inspection</li>
<li>Shipping charges are non-refundable</li>
</ul>
<h3>How to Cancel</h3>
<p>Cancel through My Orders on the website, or contact customer support with your order details.</p>`,
	},
	"security": {
		Title:       "Security & Data Protection",
		LastUpdated: "December 05, 2025",
		Body: `
<h3>Data Security Measures</h3>
<ul>
<li>256-bit SSL encryption for all data transmission</li>
<li>Payment data handled by PCI-DSS compliant gateways</li>
<li>Secure storage of customer purchase history</li>
</ul>
<p>We never sell customer data; access to personal information is restricted to staff who need it to serve you.</p>`,
	},
}
