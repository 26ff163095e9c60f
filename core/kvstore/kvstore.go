package kvstore

import (
	"context"
	"strings"
	"sync"
)

// Store is the injected session-state store. Values are JSON-serialized under
// flat string keys ("cart", "wishlist", "deliveryAddress", "checkoutData",
// "token", "user"). UI-facing code never reaches into ambient storage
// directly; it always goes through one of these.
//
// Writes are last-writer-wins. The storefront session is single-actor, so no
// transactional guarantee is made across read-modify-write cycles.
type Store interface {
	// Get unmarshals the value for key into out. ok is false when absent.
	Get(ctx context.Context, key string, out interface{}) (ok bool, err error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
	// Subscribe registers a change observer. Every successful Set/Delete
	// notifies all observers with the affected key.
	Subscribe(fn func(key string)) (unsubscribe func())
}

// notifier fans change events out to subscribers. Embedded by the backends.
type notifier struct {
	mu   sync.Mutex
	subs map[int]func(key string)
	next int
}

func (n *notifier) Subscribe(fn func(key string)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]func(key string))
	}
	id := n.next
	n.next++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) notify(key string) {
	n.mu.Lock()
	fns := make([]func(string), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn(key)
	}
}

// Namespaced returns a view of s with every key prefixed "ns:". Used to give
// each browsing session its own keyspace on a shared backend.
func Namespaced(s Store, ns string) Store {
	return &namespaced{inner: s, prefix: ns + ":"}
}

type namespaced struct {
	inner  Store
	prefix string
}

func (n *namespaced) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	return n.inner.Get(ctx, n.prefix+key, out)
}

func (n *namespaced) Set(ctx context.Context, key string, value interface{}) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

func (n *namespaced) Subscribe(fn func(key string)) func() {
	return n.inner.Subscribe(func(key string) {
		if strings.HasPrefix(key, n.prefix) {
			fn(strings.TrimPrefix(key, n.prefix))
		}
	})
}
