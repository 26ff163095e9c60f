package cache

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache()
	c.Set("k", "v", 0, nil)
	if v, ok := c.Get("k"); !ok || v != "v" {
		t.Errorf("Get = %v ok=%v", v, ok)
	}
	if _, ok := c.Get("absent"); ok {
		t.Error("absent key found")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	if testing.Short() {
		t.Skip("ttl expiry waits a full second")
	}
	c := NewCache()
	c.Set("short", 1, 1, nil)
	if _, ok := c.Get("short"); !ok {
		t.Fatal("value expired immediately")
	}
	time.Sleep(1100 * time.Millisecond)
	if _, ok := c.Get("short"); ok {
		t.Error("value survived its TTL")
	}
}

func TestCache_GetOrDef(t *testing.T) {
	c := NewCache()
	if v := c.GetOrDef("absent", 42); v != 42 {
		t.Errorf("GetOrDef = %v, want default", v)
	}
	c.Set("k", "v", 0, nil)
	if v := c.GetOrDef("k", 42); v != "v" {
		t.Errorf("GetOrDef = %v, want stored value", v)
	}
}

func TestCache_CompositeKeys(t *testing.T) {
	c := NewCache()
	c.SetN([]interface{}{"seo", "mobile"}, "meta", 0, nil)
	if v, ok := c.GetN("seo", "mobile"); !ok || v != "meta" {
		t.Errorf("GetN = %v ok=%v", v, ok)
	}
	c.DeleteN("seo", "mobile")
	if _, ok := c.GetN("seo", "mobile"); ok {
		t.Error("composite key survived DeleteN")
	}
}

func TestCache_Tags(t *testing.T) {
	c := NewCache()
	c.Set("seo|home", "a", 0, []string{"seo"})
	c.Set("seo|mobile", "b", 0, []string{"seo"})
	c.Set("catalog|products", "c", 0, []string{"catalog"})

	if keys := c.GetKeysByTag("seo"); len(keys) != 2 {
		t.Errorf("seo keys = %v, want 2", keys)
	}

	c.DeleteByTag("seo")
	if _, ok := c.Get("seo|home"); ok {
		t.Error("tagged entry survived DeleteByTag")
	}
	if _, ok := c.Get("catalog|products"); !ok {
		t.Error("unrelated entry evicted")
	}
}

func TestCache_IterateFilter(t *testing.T) {
	c := NewCache()
	c.Set("a", 1, 0, nil)
	c.Set("b", 2, 0, nil)
	got := c.IterateFilter(func(key, value interface{}) bool {
		v, ok := value.(int)
		return ok && v > 1
	})
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("IterateFilter = %v, want [2]", got)
	}
}
