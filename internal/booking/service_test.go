package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
)

type fakeStorage struct {
	carts map[string]*Cart
	saves int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{carts: map[string]*Cart{}}
}

func (f *fakeStorage) Load(ctx context.Context, token string) (*Cart, error) {
	if cart, ok := f.carts[token]; ok {
		return cart, nil
	}
	return NewCart(), nil
}

func (f *fakeStorage) Save(ctx context.Context, token string, cart *Cart) error {
	f.carts[token] = cart
	f.saves++
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, token string) error {
	delete(f.carts, token)
	return nil
}

type fakeItemReader struct {
	items map[uuid.UUID]*models.Item
}

func (f *fakeItemReader) FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func testItem(name string, price int64) *models.Item {
	return &models.Item{
		ID:          uuid.New(),
		Name:        name,
		Slug:        name,
		PricePerDay: decimal.NewFromInt(price),
	}
}

func buildCartService(t *testing.T, items ...*models.Item) (Service, *fakeStorage) {
	t.Helper()
	reader := &fakeItemReader{items: map[uuid.UUID]*models.Item{}}
	for _, item := range items {
		reader.items[item.ID] = item
	}
	storage := newFakeStorage()
	svc, err := NewService(storage, reader)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, storage
}

func TestServiceAddItemPricesCart(t *testing.T) {
	chair := testItem("white-folding-chair", 2)
	table := testItem("60in-round-table", 12)
	svc, _ := buildCartService(t, chair, table)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "tok", chair.ID, 10); err != nil {
		t.Fatalf("add chair: %v", err)
	}
	dto, err := svc.AddItem(ctx, "tok", table.ID, 2)
	if err != nil {
		t.Fatalf("add table: %v", err)
	}

	if dto.Count != 12 {
		t.Fatalf("expected count 12, got %d", dto.Count)
	}
	if !dto.Subtotal.Equal(decimal.NewFromInt(44)) {
		t.Fatalf("expected subtotal 44, got %s", dto.Subtotal)
	}
	if dto.Token != "tok" {
		t.Fatalf("expected token echoed, got %q", dto.Token)
	}
}

func TestServiceAddUnknownItemRejected(t *testing.T) {
	svc, _ := buildCartService(t)

	_, err := svc.AddItem(context.Background(), "tok", uuid.New(), 1)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceSetQuantityMissingLineIsNoop(t *testing.T) {
	chair := testItem("white-folding-chair", 2)
	svc, storage := buildCartService(t, chair)

	dto, err := svc.SetQuantity(context.Background(), "tok", chair.ID, 3)
	if err != nil {
		t.Fatalf("expected no-op for absent line, got %v", err)
	}
	if dto.Count != 0 || len(dto.Items) != 0 {
		t.Fatalf("expected cart unchanged, got %+v", dto)
	}
	if storage.saves != 0 {
		t.Fatalf("expected no save for a no-op, got %d", storage.saves)
	}
}

func TestServiceGetCartPrunesDeletedItems(t *testing.T) {
	chair := testItem("white-folding-chair", 2)
	svc, storage := buildCartService(t, chair)
	ctx := context.Background()

	ghost := uuid.New()
	cart := NewCart()
	cart.Add(chair.ID, 2)
	cart.Add(ghost, 5)
	storage.carts["tok"] = cart

	dto, err := svc.GetCart(ctx, "tok")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}

	if len(dto.Items) != 1 || dto.Items[0].ItemID != chair.ID {
		t.Fatalf("expected ghost line pruned, got %+v", dto.Items)
	}
	if dto.Count != 2 {
		t.Fatalf("expected count 2 after prune, got %d", dto.Count)
	}
	if len(storage.carts["tok"].Items) != 1 {
		t.Fatalf("expected pruned cart written back")
	}
}

func TestServiceClearCart(t *testing.T) {
	chair := testItem("white-folding-chair", 2)
	svc, _ := buildCartService(t, chair)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "tok", chair.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.ClearCart(ctx, "tok"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	dto, err := svc.GetCart(ctx, "tok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if dto.Count != 0 || len(dto.Items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", dto)
	}
}
