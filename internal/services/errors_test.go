package services

import (
	"errors"
	"testing"
)

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Fatal("wrapping nil should stay nil")
	}
	base := errors.New("boom")
	wrapped := WrapError(base, "load articles")
	if wrapped.Error() != "load articles: boom" {
		t.Fatalf("unexpected message: %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Fatal("wrapped error should unwrap to the original")
	}
}
