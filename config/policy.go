package config

import (
	"os"
	"strings"
	"sync"

	"github.com/spf13/cast"
)

// DeliveryPolicy is the shipping and tax rule set used by the delivery
// calculator. The defaults mirror current business policy; the charge and
// tax rate are env-overridable so ops can adjust them without a deploy.
type DeliveryPolicy struct {
	HomeCountry string
	FreeCities  []string // metro valley, free delivery
	FlatCharge  float64  // outside the valley, inside HomeCountry
	TaxRate     float64  // applied to international orders only
}

var (
	deliveryPolicy     *DeliveryPolicy
	deliveryPolicyOnce sync.Once
)

// GetDeliveryPolicy returns the process-wide delivery policy.
func GetDeliveryPolicy() *DeliveryPolicy {
	deliveryPolicyOnce.Do(func() {
		p := &DeliveryPolicy{
			HomeCountry: "Nepal",
			FreeCities:  []string{"Kathmandu", "Lalitpur", "Bhaktapur"},
			FlatCharge:  500,
			TaxRate:     0.18,
		}
		if v := os.Getenv("DELIVERY_FLAT_CHARGE"); v != "" {
			p.FlatCharge = cast.ToFloat64(v)
		}
		if v := os.Getenv("DELIVERY_TAX_RATE"); v != "" {
			p.TaxRate = cast.ToFloat64(v)
		}
		if v := os.Getenv("DELIVERY_FREE_CITIES"); v != "" {
			cities := strings.Split(v, ",")
			p.FreeCities = p.FreeCities[:0]
			for _, c := range cities {
				if c = strings.TrimSpace(c); c != "" {
					p.FreeCities = append(p.FreeCities, c)
				}
			}
		}
		deliveryPolicy = p
	})
	return deliveryPolicy
}

// IsFreeCity reports whether city is inside the free-delivery zone.
func (p *DeliveryPolicy) IsFreeCity(city string) bool {
	for _, c := range p.FreeCities {
		if strings.EqualFold(c, city) {
			return true
		}
	}
	return false
}
