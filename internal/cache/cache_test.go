package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	c := New[int](4, time.Minute, 0)
	defer c.Stop()

	if _, ok := c.Get("missing"); ok {
		t.Fatalf("expected miss")
	}
	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("got %v/%v, want 1/true", v, ok)
	}
	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Fatalf("overwrite failed, got %v", v)
	}
}

func TestEviction(t *testing.T) {
	c := New[int](2, time.Minute, 0)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // a is now most recently used
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatalf("least recently used entry should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("recently used entry should survive")
	}
	if c.Size() != 2 {
		t.Fatalf("size = %d, want 2", c.Size())
	}
}

func TestTTLExpiry(t *testing.T) {
	c := New[string](4, 10*time.Millisecond, 0)
	defer c.Stop()

	c.Set("k", "v")
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expired entry should not be returned")
	}
}

func TestSweepExpired(t *testing.T) {
	c := New[int](10, 5*time.Millisecond, 0)
	defer c.Stop()

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	time.Sleep(15 * time.Millisecond)
	if n := c.SweepExpired(); n != 5 {
		t.Fatalf("swept %d, want 5", n)
	}
	if c.Size() != 0 {
		t.Fatalf("size = %d after sweep, want 0", c.Size())
	}
}

func TestDelete(t *testing.T) {
	c := New[int](4, time.Minute, 0)
	defer c.Stop()

	c.Set("a", 1)
	c.Delete("a")
	c.Delete("a") // deleting twice is fine
	if _, ok := c.Get("a"); ok {
		t.Fatalf("deleted entry still present")
	}
}
