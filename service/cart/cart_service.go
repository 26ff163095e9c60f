package cart

import (
	"context"
	"sync"

	"github.com/programmer-santosh-main/thapaelectronics/core/kvstore"
	cartEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/cart"
)

const (
	storageKey  = "cart"
	wishlistKey = "wishlist"
)

// Service owns the session's cart line items. Every mutation serializes the
// full list back to the injected store under "cart", which also notifies
// observers (header badge and friends) through the store's subscription.
type Service struct {
	store kvstore.Store

	mu    sync.Mutex
	items []cartEntity.Item
}

// NewService loads the cart persisted under "cart"; an absent key means an
// empty cart.
func NewService(ctx context.Context, store kvstore.Store) (*Service, error) {
	s := &Service{store: store}
	if _, err := store.Get(ctx, storageKey, &s.items); err != nil {
		return nil, err
	}
	return s, nil
}

// Items returns a copy of the current line items in order.
func (s *Service) Items() []cartEntity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]cartEntity.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Subtotal is Σ finalPrice × quantity, recomputed on every call — never
// cached stale.
func (s *Service) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for _, item := range s.items {
		sum += item.LineTotal()
	}
	return sum
}

// Len returns the number of line items.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// AddItem appends a line item (or bumps the quantity of an existing line for
// the same product). Quantity is clamped to [1, MaxStock].
func (s *Service) AddItem(ctx context.Context, item cartEntity.Item) error {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity = clamp(s.items[i].Quantity+item.Quantity, 1, s.items[i].MaxStock)
			found = true
			break
		}
	}
	if !found {
		item.Quantity = clamp(item.Quantity, 1, item.MaxStock)
		s.items = append(s.items, item)
	}
	s.mu.Unlock()
	return s.persist(ctx)
}

// RemoveItem deletes the line with the given product id. Remaining lines keep
// their relative order. Unknown ids are a no-op, not an error.
func (s *Service) RemoveItem(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return s.persist(ctx)
}

// UpdateQuantity applies a delta (may be negative) to a line's quantity,
// clamped to [1, MaxStock]. Unknown ids are a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, id string, delta int) error {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == id {
			s.items[i].Quantity = clamp(s.items[i].Quantity+delta, 1, s.items[i].MaxStock)
			break
		}
	}
	s.mu.Unlock()
	return s.persist(ctx)
}

// MoveToWishlist copies the line's reduced projection into the wishlist
// (deduplicated by product id) and removes the line from the cart.
func (s *Service) MoveToWishlist(ctx context.Context, id string) error {
	s.mu.Lock()
	var moved *cartEntity.Item
	for i := range s.items {
		if s.items[i].ProductID == id {
			moved = &s.items[i]
			break
		}
	}
	if moved == nil {
		s.mu.Unlock()
		return nil
	}
	projection := moved.ToWishlist()
	s.mu.Unlock()

	var wishlist []cartEntity.WishlistItem
	if _, err := s.store.Get(ctx, wishlistKey, &wishlist); err != nil {
		return err
	}
	already := false
	for _, w := range wishlist {
		if w.ProductID == id {
			already = true
			break
		}
	}
	if !already {
		wishlist = append(wishlist, projection)
		if err := s.store.Set(ctx, wishlistKey, wishlist); err != nil {
			return err
		}
	}
	return s.RemoveItem(ctx, id)
}

// Wishlist returns the session's wishlist.
func (s *Service) Wishlist(ctx context.Context) ([]cartEntity.WishlistItem, error) {
	var wishlist []cartEntity.WishlistItem
	if _, err := s.store.Get(ctx, wishlistKey, &wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}

// Clear empties the cart (post-checkout).
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	return s.persist(ctx)
}

func (s *Service) persist(ctx context.Context) error {
	s.mu.Lock()
	items := make([]cartEntity.Item, len(s.items))
	copy(items, s.items)
	s.mu.Unlock()
	return s.store.Set(ctx, storageKey, items)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
