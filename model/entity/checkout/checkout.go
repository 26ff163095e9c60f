package checkout

import cartEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/cart"

// DeliveryAddress is the single per-session shipping address. No multi-address
// book: submitting a new one replaces the old.
type DeliveryAddress struct {
	Country       string `json:"country"`
	City          string `json:"city"`
	StreetAddress string `json:"streetAddress"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

// DeliveryInfo is derived state: always recomputed from (cart subtotal,
// address), never persisted on its own.
type DeliveryInfo struct {
	FreeDelivery    bool    `json:"freeDelivery"`
	DeliveryCharges float64 `json:"deliveryCharges"`
	TaxApplicable   bool    `json:"taxApplicable"`
	TaxAmount       float64 `json:"taxAmount"`
	TaxMessage      string  `json:"taxMessage"`
	DeliveryMessage string  `json:"deliveryMessage"`
}

// Data is the checkout handoff payload persisted under "checkoutData" for
// the downstream checkout page.
type Data struct {
	Cart            []cartEntity.Item `json:"cart"`
	DeliveryAddress DeliveryAddress   `json:"deliveryAddress"`
	Subtotal        float64           `json:"subtotal"`
	Shipping        float64           `json:"shipping"`
	Tax             float64           `json:"tax"`
	Total           float64           `json:"total"`
	DeliveryInfo    DeliveryInfo      `json:"deliveryInfo"`
}
