package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/programmer-santosh-main/thapaelectronics/core/kvstore"
	cartEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/cart"
	checkoutEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/checkout"
	cartService "github.com/programmer-santosh-main/thapaelectronics/service/cart"
)

func fullAddr() checkoutEntity.DeliveryAddress {
	return checkoutEntity.DeliveryAddress{
		Country:       "Nepal",
		City:          "Kathmandu",
		StreetAddress: "Baneshwor 10",
		Phone:         "9800000000",
		Email:         "shopper@example.com",
	}
}

func newHandoffFixture(t *testing.T) (*Service, *cartService.Service, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemory()
	cart, err := cartService.NewService(context.Background(), store)
	if err != nil {
		t.Fatalf("cart service: %v", err)
	}
	return NewService(store, testPolicy()), cart, store
}

func TestSubmitAddress_ValidatesEveryField(t *testing.T) {
	svc, _, _ := newHandoffFixture(t)
	ctx := context.Background()

	cases := []struct {
		field  string
		mutate func(*checkoutEntity.DeliveryAddress)
	}{
		{"country", func(a *checkoutEntity.DeliveryAddress) { a.Country = "" }},
		{"city", func(a *checkoutEntity.DeliveryAddress) { a.City = "  " }},
		{"streetAddress", func(a *checkoutEntity.DeliveryAddress) { a.StreetAddress = "" }},
		{"phone", func(a *checkoutEntity.DeliveryAddress) { a.Phone = "" }},
		{"email", func(a *checkoutEntity.DeliveryAddress) { a.Email = "" }},
	}
	for _, tc := range cases {
		a := fullAddr()
		tc.mutate(&a)
		err := svc.SubmitAddress(ctx, a)
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != tc.field {
			t.Errorf("%s: err = %v, want ValidationError for field", tc.field, err)
		}
	}

	if err := svc.SubmitAddress(ctx, fullAddr()); err != nil {
		t.Fatalf("valid address rejected: %v", err)
	}
}

func TestSubmitAddress_ReplacesPrevious(t *testing.T) {
	svc, _, _ := newHandoffFixture(t)
	ctx := context.Background()
	_ = svc.SubmitAddress(ctx, fullAddr())

	second := fullAddr()
	second.City = "Pokhara"
	_ = svc.SubmitAddress(ctx, second)

	addr, ok, err := svc.Address(ctx)
	if err != nil || !ok {
		t.Fatalf("Address: ok=%v err=%v", ok, err)
	}
	if addr.City != "Pokhara" {
		t.Errorf("City = %q, want Pokhara (single address per session)", addr.City)
	}
}

func TestHandoff_BlockedWithoutCartOrAddress(t *testing.T) {
	svc, cart, _ := newHandoffFixture(t)
	ctx := context.Background()

	if _, err := svc.Handoff(ctx, cart); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("err = %v, want ErrEmptyCart", err)
	}

	_ = cart.AddItem(ctx, cartEntity.Item{ProductID: "p1", FinalPrice: 1000, Quantity: 1, MaxStock: 9})
	if _, err := svc.Handoff(ctx, cart); !errors.Is(err, ErrNoAddress) {
		t.Errorf("err = %v, want ErrNoAddress", err)
	}
}

func TestHandoff_PersistsPayload(t *testing.T) {
	svc, cart, store := newHandoffFixture(t)
	ctx := context.Background()

	_ = cart.AddItem(ctx, cartEntity.Item{ProductID: "p1", FinalPrice: 5000, Quantity: 2, MaxStock: 9})
	a := fullAddr()
	a.City = "Pokhara"
	if err := svc.SubmitAddress(ctx, a); err != nil {
		t.Fatalf("SubmitAddress: %v", err)
	}

	data, err := svc.Handoff(ctx, cart)
	if err != nil {
		t.Fatalf("Handoff: %v", err)
	}
	if data.Subtotal != 10000 || data.Shipping != 500 || data.Tax != 0 || data.Total != 10500 {
		t.Errorf("totals = %+v", data)
	}
	if len(data.Cart) != 1 || data.DeliveryAddress.City != "Pokhara" {
		t.Errorf("payload = %+v", data)
	}

	var persisted checkoutEntity.Data
	ok, err := store.Get(ctx, "checkoutData", &persisted)
	if err != nil || !ok {
		t.Fatalf("checkoutData not persisted: ok=%v err=%v", ok, err)
	}
	if persisted.Total != 10500 {
		t.Errorf("persisted Total = %v, want 10500", persisted.Total)
	}
}
