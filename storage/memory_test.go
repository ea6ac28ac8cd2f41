package storage

import (
	"context"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("Get(missing) err = %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, "cart", []byte(`[{"id":"tiffin-1"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, "cart")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[{"id":"tiffin-1"}]` {
		t.Errorf("Get = %s, want the stored value", got)
	}

	// returned slice is a copy, mutating it must not corrupt the store
	got[0] = 'X'
	again, _ := s.Get(ctx, "cart")
	if string(again) != `[{"id":"tiffin-1"}]` {
		t.Error("stored value was mutated through the returned slice")
	}

	if err := s.Delete(ctx, "cart"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "cart"); err != ErrNotFound {
		t.Errorf("Get after Delete err = %v, want ErrNotFound", err)
	}

	// deleting a missing key is fine
	if err := s.Delete(ctx, "cart"); err != nil {
		t.Errorf("Delete(missing): %v", err)
	}
}
