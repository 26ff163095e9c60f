package cart

import (
	"context"
	"testing"

	"github.com/programmer-santosh-main/thapaelectronics/core/kvstore"
	cartEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/cart"
)

func newTestService(t *testing.T) (*Service, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemory()
	svc, err := NewService(context.Background(), store)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, store
}

func phone(qty int) cartEntity.Item {
	return cartEntity.Item{ProductID: "p1", Name: "Phone", FinalPrice: 50000, Quantity: qty, MaxStock: 5}
}

func TestAddItem_NewLine(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.AddItem(context.Background(), phone(2)); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	items := svc.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Errorf("items = %+v", items)
	}
}

func TestAddItem_MergesByProductID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_ = svc.AddItem(ctx, phone(2))
	_ = svc.AddItem(ctx, phone(1))
	items := svc.Items()
	if len(items) != 1 || items[0].Quantity != 3 {
		t.Errorf("items = %+v, want single line qty 3", items)
	}
}

func TestAddItem_ClampsToMaxStock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_ = svc.AddItem(ctx, phone(4))
	_ = svc.AddItem(ctx, phone(4))
	if got := svc.Items()[0].Quantity; got != 5 {
		t.Errorf("quantity = %d, want clamp at MaxStock 5", got)
	}
}

func TestUpdateQuantity_ClampsBothEnds(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_ = svc.AddItem(ctx, phone(3))

	_ = svc.UpdateQuantity(ctx, "p1", -10)
	if got := svc.Items()[0].Quantity; got != 1 {
		t.Errorf("quantity = %d, want floor 1", got)
	}
	_ = svc.UpdateQuantity(ctx, "p1", 100)
	if got := svc.Items()[0].Quantity; got != 5 {
		t.Errorf("quantity = %d, want ceiling 5", got)
	}
}

func TestUpdateQuantity_UnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_ = svc.AddItem(ctx, phone(2))
	if err := svc.UpdateQuantity(ctx, "ghost", 1); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if got := svc.Items()[0].Quantity; got != 2 {
		t.Errorf("quantity = %d, want unchanged 2", got)
	}
}

func TestRemoveItem_KeepsOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_ = svc.AddItem(ctx, cartEntity.Item{ProductID: "a", Quantity: 1, MaxStock: 9})
	_ = svc.AddItem(ctx, cartEntity.Item{ProductID: "b", Quantity: 1, MaxStock: 9})
	_ = svc.AddItem(ctx, cartEntity.Item{ProductID: "c", Quantity: 1, MaxStock: 9})

	if err := svc.RemoveItem(ctx, "b"); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	items := svc.Items()
	if len(items) != 2 || items[0].ProductID != "a" || items[1].ProductID != "c" {
		t.Errorf("items = %+v, want [a c]", items)
	}
	// Unknown id: no-op, no error.
	if err := svc.RemoveItem(ctx, "ghost"); err != nil {
		t.Errorf("RemoveItem ghost: %v", err)
	}
	if svc.Len() != 2 {
		t.Errorf("Len = %d, want 2", svc.Len())
	}
}

func TestSubtotal_Recomputed(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_ = svc.AddItem(ctx, cartEntity.Item{ProductID: "a", FinalPrice: 100, Quantity: 2, MaxStock: 9})
	_ = svc.AddItem(ctx, cartEntity.Item{ProductID: "b", FinalPrice: 50, Quantity: 1, MaxStock: 9})
	if got := svc.Subtotal(); got != 250 {
		t.Errorf("Subtotal = %v, want 250", got)
	}
	_ = svc.UpdateQuantity(ctx, "b", 2)
	if got := svc.Subtotal(); got != 350 {
		t.Errorf("Subtotal = %v, want 350 after update", got)
	}
}

func TestMoveToWishlist(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_ = svc.AddItem(ctx, phone(2))

	if err := svc.MoveToWishlist(ctx, "p1"); err != nil {
		t.Fatalf("MoveToWishlist: %v", err)
	}
	if svc.Len() != 0 {
		t.Error("cart should be empty after move")
	}
	wishlist, err := svc.Wishlist(ctx)
	if err != nil {
		t.Fatalf("Wishlist: %v", err)
	}
	if len(wishlist) != 1 || wishlist[0].ProductID != "p1" {
		t.Errorf("wishlist = %+v", wishlist)
	}

	// Moving the same product again dedups.
	_ = svc.AddItem(ctx, phone(1))
	_ = svc.MoveToWishlist(ctx, "p1")
	wishlist, _ = svc.Wishlist(ctx)
	if len(wishlist) != 1 {
		t.Errorf("wishlist len = %d, want 1 after dedup", len(wishlist))
	}
}

func TestPersistenceAcrossInstances(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	_ = svc.AddItem(ctx, phone(2))

	reloaded, err := NewService(ctx, store)
	if err != nil {
		t.Fatalf("NewService reload: %v", err)
	}
	items := reloaded.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Errorf("reloaded items = %+v", items)
	}
}

func TestClear(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_ = svc.AddItem(ctx, phone(1))
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if svc.Len() != 0 || svc.Subtotal() != 0 {
		t.Error("cart not empty after Clear")
	}
}
