package checkout

import (
	"fmt"
	"math"
	"strings"

	"github.com/programmer-santosh-main/thapaelectronics/config"
	checkoutEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/checkout"
)

// Customer-facing delivery and tax copy.
const (
	msgFreeDelivery  = "FREE Delivery inside Kathmandu Valley!"
	msgSelectCity    = "Please select your city to calculate delivery charges."
	msgInternational = "International delivery charges will be calculated based on your location."
	msgTaxAdvisory   = "International orders may have additional taxes/customs fees. We'll inform you via email/phone."
)

// ComputeDelivery derives DeliveryInfo from the cart subtotal and the
// delivery address. Pure function: same inputs, same output, no hidden
// state. Policy table:
//
//	home country + valley city  -> free delivery
//	home country + other city   -> flat charge, exact amount confirmed later
//	home country, no city yet   -> no charge yet, prompt for city
//	international               -> quoted later, tax applies
func ComputeDelivery(subtotal float64, addr checkoutEntity.DeliveryAddress, policy *config.DeliveryPolicy) checkoutEntity.DeliveryInfo {
	if policy == nil {
		policy = config.GetDeliveryPolicy()
	}
	isHome := strings.EqualFold(addr.Country, policy.HomeCountry)
	inValley := policy.IsFreeCity(addr.City)

	info := checkoutEntity.DeliveryInfo{
		FreeDelivery: isHome && inValley,
	}

	switch {
	case isHome && inValley:
		info.DeliveryMessage = msgFreeDelivery
	case isHome && addr.City != "":
		info.DeliveryCharges = policy.FlatCharge
		info.DeliveryMessage = fmt.Sprintf("Delivery charges will apply for %s. We'll contact you with exact amount.", addr.City)
	case isHome:
		info.DeliveryMessage = msgSelectCity
	default:
		info.DeliveryMessage = msgInternational
	}

	info.TaxApplicable = !isHome
	if info.TaxApplicable {
		info.TaxAmount = round2(subtotal * policy.TaxRate)
		info.TaxMessage = msgTaxAdvisory
	}
	return info
}

// Total is subtotal plus shipping (zero when free) plus tax.
func Total(subtotal float64, info checkoutEntity.DeliveryInfo) float64 {
	shipping := info.DeliveryCharges
	if info.FreeDelivery {
		shipping = 0
	}
	return round2(subtotal + shipping + info.TaxAmount)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
