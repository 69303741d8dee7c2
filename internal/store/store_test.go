package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryGetMissingKey(t *testing.T) {
	m := NewMemory()
	if _, err := m.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryPutOverwrites(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	if err := m.Put(ctx, "k", []byte(`"one"`)); err != nil {
		t.Fatal(err)
	}
	if err := m.Put(ctx, "k", []byte(`"two"`)); err != nil {
		t.Fatal(err)
	}
	value, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if string(value) != `"two"` {
		t.Fatalf("expected overwrite, got %s", value)
	}
}

func TestMemoryDeleteThenGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	_ = m.Put(ctx, "k", []byte(`[]`))
	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestLoadJSONRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	in := []int{3, 1, 2}
	if err := SaveJSON(ctx, m, "ids", in); err != nil {
		t.Fatal(err)
	}
	var out []int
	if err := LoadJSON(ctx, m, "ids", &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 || out[0] != 3 || out[2] != 2 {
		t.Fatalf("round trip mismatch: %v", out)
	}
}

func TestLoadJSONCorruptValue(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	_ = m.Put(ctx, "broken", []byte(`{not json`))
	var out map[string]string
	err := LoadJSON(ctx, m, "broken", &out)
	if err == nil {
		t.Fatal("expected error for corrupt value")
	}
	if !IsCorrupt(err) {
		t.Fatalf("expected CorruptError, got %v", err)
	}
	var ce CorruptError
	if !errors.As(err, &ce) || ce.Key != "broken" {
		t.Fatalf("corrupt error should carry the key, got %v", err)
	}
}

func TestLoadJSONWrongShapeIsCorrupt(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	_ = m.Put(ctx, "k", []byte(`"a string"`))
	var out []int
	if err := LoadJSON(ctx, m, "k", &out); !IsCorrupt(err) {
		t.Fatalf("expected CorruptError for shape mismatch, got %v", err)
	}
}
