package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/programmer-santosh-main/thapaelectronics/config"
	"github.com/programmer-santosh-main/thapaelectronics/core/kvstore"
	checkoutEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/checkout"
	cartService "github.com/programmer-santosh-main/thapaelectronics/service/cart"
)

const (
	addressKey  = "deliveryAddress"
	checkoutKey = "checkoutData"
)

var (
	// ErrEmptyCart blocks checkout with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoAddress blocks checkout until an address has been submitted this
	// session. Blocked means refused, not warned.
	ErrNoAddress = errors.New("delivery address required")
)

// ValidationError reports which address field failed submission.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// Service handles address submission and checkout handoff for one session.
type Service struct {
	store  kvstore.Store
	policy *config.DeliveryPolicy
}

func NewService(store kvstore.Store, policy *config.DeliveryPolicy) *Service {
	if policy == nil {
		policy = config.GetDeliveryPolicy()
	}
	return &Service{store: store, policy: policy}
}

// SubmitAddress validates and persists the session's delivery address,
// replacing any previous one (single address per session).
func (s *Service) SubmitAddress(ctx context.Context, addr checkoutEntity.DeliveryAddress) error {
	for _, f := range []struct{ name, value string }{
		{"country", addr.Country},
		{"city", addr.City},
		{"streetAddress", addr.StreetAddress},
		{"phone", addr.Phone},
		{"email", addr.Email},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return s.store.Set(ctx, addressKey, addr)
}

// Address returns the stored address, if one was submitted this session.
func (s *Service) Address(ctx context.Context) (checkoutEntity.DeliveryAddress, bool, error) {
	var addr checkoutEntity.DeliveryAddress
	ok, err := s.store.Get(ctx, addressKey, &addr)
	return addr, ok, err
}

// DeliveryFor recomputes DeliveryInfo for the given subtotal against the
// stored address. Called on every address or cart change.
func (s *Service) DeliveryFor(ctx context.Context, subtotal float64) (checkoutEntity.DeliveryInfo, bool, error) {
	addr, ok, err := s.Address(ctx)
	if err != nil || !ok {
		return checkoutEntity.DeliveryInfo{}, false, err
	}
	return ComputeDelivery(subtotal, addr, s.policy), true, nil
}

// Handoff snapshots cart + address + computed totals into the payload the
// downstream checkout page consumes, and persists it under "checkoutData".
func (s *Service) Handoff(ctx context.Context, cart *cartService.Service) (checkoutEntity.Data, error) {
	if cart.Len() == 0 {
		return checkoutEntity.Data{}, ErrEmptyCart
	}
	addr, ok, err := s.Address(ctx)
	if err != nil {
		return checkoutEntity.Data{}, err
	}
	if !ok {
		return checkoutEntity.Data{}, ErrNoAddress
	}

	subtotal := cart.Subtotal()
	info := ComputeDelivery(subtotal, addr, s.policy)
	shipping := info.DeliveryCharges
	if info.FreeDelivery {
		shipping = 0
	}

	data := checkoutEntity.Data{
		Cart:            cart.Items(),
		DeliveryAddress: addr,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             info.TaxAmount,
		Total:           Total(subtotal, info),
		DeliveryInfo:    info,
	}
	if err := s.store.Set(ctx, checkoutKey, data); err != nil {
		return checkoutEntity.Data{}, err
	}
	return data, nil
}
