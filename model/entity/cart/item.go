package cart

// Item is one cart line: a product snapshot plus quantity. Quantity is
// always clamped to [1, MaxStock].
type Item struct {
	ProductID  string  `json:"_id"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	FinalPrice float64 `json:"finalPrice"`
	Discount   float64 `json:"discount"`
	Quantity   int     `json:"quantity"`
	MaxStock   int     `json:"maxStock"`
}

// LineTotal is finalPrice × quantity.
func (i Item) LineTotal() float64 {
	return i.FinalPrice * float64(i.Quantity)
}

// WishlistItem is the reduced projection copied when a cart line moves to
// the wishlist.
type WishlistItem struct {
	ProductID  string  `json:"_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	FinalPrice float64 `json:"finalPrice"`
	Discount   float64 `json:"discount"`
	Image      string  `json:"image"`
	Brand      string  `json:"brand"`
}

// ToWishlist builds the wishlist projection of a cart line.
func (i Item) ToWishlist() WishlistItem {
	return WishlistItem{
		ProductID:  i.ProductID,
		Name:       i.Name,
		Price:      i.Price,
		FinalPrice: i.FinalPrice,
		Discount:   i.Discount,
		Image:      i.Image,
		Brand:      i.Brand,
	}
}
