package booking

import (
	"testing"

	"github.com/google/uuid"
)

func TestCartAddMergesExistingLine(t *testing.T) {
	cart := NewCart()
	itemID := uuid.New()

	cart.Add(itemID, 2)
	cart.Add(itemID, 3)

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Items))
	}
	if cart.Items[0].Qty != 5 {
		t.Fatalf("expected merged qty 5, got %d", cart.Items[0].Qty)
	}
	if cart.Count() != 5 {
		t.Fatalf("expected count 5, got %d", cart.Count())
	}
}

func TestCartAddClampsQuantity(t *testing.T) {
	cart := NewCart()
	itemID := uuid.New()

	cart.Add(itemID, 0)

	if cart.Items[0].Qty != 1 {
		t.Fatalf("expected qty clamped to 1, got %d", cart.Items[0].Qty)
	}
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCart()
	itemID := uuid.New()
	cart.Add(itemID, 2)

	if !cart.SetQuantity(itemID, 7) {
		t.Fatalf("expected set to succeed for existing line")
	}
	if cart.Items[0].Qty != 7 {
		t.Fatalf("expected qty 7, got %d", cart.Items[0].Qty)
	}

	if !cart.SetQuantity(itemID, -4) {
		t.Fatalf("expected set to succeed for existing line")
	}
	if cart.Items[0].Qty != 1 {
		t.Fatalf("expected qty clamped to 1, got %d", cart.Items[0].Qty)
	}

	if cart.SetQuantity(uuid.New(), 3) {
		t.Fatalf("expected set to fail for unknown item")
	}
}

func TestCartRemove(t *testing.T) {
	cart := NewCart()
	first := uuid.New()
	second := uuid.New()
	cart.Add(first, 1)
	cart.Add(second, 2)

	if !cart.Remove(first) {
		t.Fatalf("expected remove to succeed")
	}
	if len(cart.Items) != 1 || cart.Items[0].ItemID != second {
		t.Fatalf("expected only second item to remain")
	}
	if cart.Remove(first) {
		t.Fatalf("expected remove to fail for missing item")
	}
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.Add(uuid.New(), 3)

	cart.Clear()

	if !cart.IsEmpty() {
		t.Fatalf("expected cart to be empty after clear")
	}
	if cart.Items == nil {
		t.Fatalf("expected cleared items to stay non-nil")
	}
}
