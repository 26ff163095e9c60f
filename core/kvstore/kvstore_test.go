package kvstore

import (
	"context"
	"testing"
)

func TestMemory_GetSetDelete(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	var out string
	ok, err := store.Get(ctx, "missing", &out)
	if err != nil || ok {
		t.Errorf("missing key: ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "token", "jwt-abc"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	ok, err = store.Get(ctx, "token", &out)
	if err != nil || !ok || out != "jwt-abc" {
		t.Errorf("Get = %q ok=%v err=%v", out, ok, err)
	}

	if err := store.Delete(ctx, "token"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if ok, _ := store.Get(ctx, "token", &out); ok {
		t.Error("key survived delete")
	}
}

func TestMemory_StructRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	type line struct {
		ID  string `json:"_id"`
		Qty int    `json:"quantity"`
	}
	in := []line{{ID: "p1", Qty: 2}}
	if err := store.Set(ctx, "cart", in); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var got []line
	if ok, err := store.Get(ctx, "cart", &got); err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0] != in[0] {
		t.Errorf("got = %+v", got)
	}
}

func TestSubscribe_NotifiesOnSetAndDelete(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	var keys []string
	unsub := store.Subscribe(func(key string) { keys = append(keys, key) })

	_ = store.Set(ctx, "cart", 1)
	_ = store.Delete(ctx, "cart")
	if len(keys) != 2 || keys[0] != "cart" || keys[1] != "cart" {
		t.Errorf("keys = %v, want [cart cart]", keys)
	}

	unsub()
	_ = store.Set(ctx, "cart", 2)
	if len(keys) != 2 {
		t.Error("unsubscribed observer still notified")
	}
}

func TestNamespaced_IsolatesSessions(t *testing.T) {
	backend := NewMemory()
	ctx := context.Background()
	alice := Namespaced(backend, "alice")
	bob := Namespaced(backend, "bob")

	_ = alice.Set(ctx, "cart", "alice-cart")
	_ = bob.Set(ctx, "cart", "bob-cart")

	var got string
	if ok, _ := alice.Get(ctx, "cart", &got); !ok || got != "alice-cart" {
		t.Errorf("alice cart = %q", got)
	}
	if ok, _ := bob.Get(ctx, "cart", &got); !ok || got != "bob-cart" {
		t.Errorf("bob cart = %q", got)
	}

	// Raw backend sees the prefixed keys.
	if ok, _ := backend.Get(ctx, "alice:cart", &got); !ok || got != "alice-cart" {
		t.Errorf("backend alice:cart = %q", got)
	}
}

func TestNamespaced_SubscriptionFiltersAndStripsPrefix(t *testing.T) {
	backend := NewMemory()
	ctx := context.Background()
	alice := Namespaced(backend, "alice")
	bob := Namespaced(backend, "bob")

	var keys []string
	alice.Subscribe(func(key string) { keys = append(keys, key) })

	_ = alice.Set(ctx, "cart", 1)
	_ = bob.Set(ctx, "cart", 1)

	if len(keys) != 1 || keys[0] != "cart" {
		t.Errorf("keys = %v, want [cart] (bob's write filtered, prefix stripped)", keys)
	}
}
