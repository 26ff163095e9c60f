package models

import (
	"time"

	gql "github.com/graph-gophers/graphql-go"

	catalogEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/catalog"
	checkoutEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/checkout"
)

// FromProduct maps a catalog product to its GraphQL view.
func FromProduct(p catalogEntity.Product) *Product {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return &Product{
		ID:          gql.ID(p.ID),
		Name:        p.Name,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Brand:       p.Brand,
		Image:       p.Image,
		Tags:        tags,
		Description: p.Description,
		Price:       p.Price,
		FinalPrice:  p.FinalPrice,
		Discount:    p.Discount,
		Rating:      p.Rating,
		ReviewCount: int32(p.ReviewCount),
		Stock:       int32(p.Stock),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

// FromProducts maps a product slice.
func FromProducts(products []catalogEntity.Product) []*Product {
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

// FromDeliveryInfo maps a delivery quote plus its order total.
func FromDeliveryInfo(info checkoutEntity.DeliveryInfo, total float64) *DeliveryEstimate {
	return &DeliveryEstimate{
		FreeDelivery:    info.FreeDelivery,
		DeliveryCharges: info.DeliveryCharges,
		TaxApplicable:   info.TaxApplicable,
		TaxAmount:       info.TaxAmount,
		TaxMessage:      info.TaxMessage,
		DeliveryMessage: info.DeliveryMessage,
		Total:           total,
	}
}
