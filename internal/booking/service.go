package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// itemReader resolves cart lines against the live catalog.
type itemReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
}

// Service exposes guest cart operations keyed by an opaque cart token.
type Service interface {
	GetCart(ctx context.Context, token string) (*CartDTO, error)
	AddItem(ctx context.Context, token string, itemID uuid.UUID, qty int) (*CartDTO, error)
	SetQuantity(ctx context.Context, token string, itemID uuid.UUID, qty int) (*CartDTO, error)
	RemoveItem(ctx context.Context, token string, itemID uuid.UUID) (*CartDTO, error)
	ClearCart(ctx context.Context, token string) error
}

// CartItemDTO is one cart line joined with current catalog data.
type CartItemDTO struct {
	ItemID      uuid.UUID       `json:"item_id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
	Qty         int             `json:"qty"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// CartDTO is the cart payload returned to clients. Subtotal is the one-day
// rental price of everything in the cart.
type CartDTO struct {
	Token    string          `json:"token"`
	Items    []CartItemDTO   `json:"items"`
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type service struct {
	storage Storage
	items   itemReader
}

// NewService constructs a booking cart service.
func NewService(storage Storage, items itemReader) (Service, error) {
	if storage == nil {
		return nil, fmt.Errorf("cart storage required")
	}
	if items == nil {
		return nil, fmt.Errorf("item reader required")
	}
	return &service{storage: storage, items: items}, nil
}

// GetCart loads and prices the cart. Lines whose catalog item no longer
// exists are pruned and the pruned cart is written back.
func (s *service) GetCart(ctx context.Context, token string) (*CartDTO, error) {
	cart, err := s.loadCart(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.priceCart(ctx, token, cart)
}

// AddItem merges the quantity into the cart after checking the item exists.
func (s *service) AddItem(ctx context.Context, token string, itemID uuid.UUID, qty int) (*CartDTO, error) {
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading item")
	}

	cart, err := s.loadCart(ctx, token)
	if err != nil {
		return nil, err
	}

	cart.Add(itemID, qty)
	if err := s.saveCart(ctx, token, cart); err != nil {
		return nil, err
	}
	return s.priceCart(ctx, token, cart)
}

// SetQuantity replaces a line's quantity. Targeting an item that is not in
// the cart is a no-op and returns the cart unchanged.
func (s *service) SetQuantity(ctx context.Context, token string, itemID uuid.UUID, qty int) (*CartDTO, error) {
	cart, err := s.loadCart(ctx, token)
	if err != nil {
		return nil, err
	}

	if !cart.SetQuantity(itemID, qty) {
		return s.priceCart(ctx, token, cart)
	}
	if err := s.saveCart(ctx, token, cart); err != nil {
		return nil, err
	}
	return s.priceCart(ctx, token, cart)
}

// RemoveItem drops a line from the cart.
func (s *service) RemoveItem(ctx context.Context, token string, itemID uuid.UUID) (*CartDTO, error) {
	cart, err := s.loadCart(ctx, token)
	if err != nil {
		return nil, err
	}

	if !cart.Remove(itemID) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item is not in the cart")
	}
	if err := s.saveCart(ctx, token, cart); err != nil {
		return nil, err
	}
	return s.priceCart(ctx, token, cart)
}

// ClearCart deletes the stored cart.
func (s *service) ClearCart(ctx context.Context, token string) error {
	if err := s.storage.Delete(ctx, token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart")
	}
	return nil
}

func (s *service) loadCart(ctx context.Context, token string) (*Cart, error) {
	cart, err := s.storage.Load(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
	return cart, nil
}

func (s *service) saveCart(ctx context.Context, token string, cart *Cart) error {
	if err := s.storage.Save(ctx, token, cart); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return nil
}

func (s *service) priceCart(ctx context.Context, token string, cart *Cart) (*CartDTO, error) {
	dto := &CartDTO{
		Token:    token,
		Items:    []CartItemDTO{},
		Subtotal: decimal.Zero,
	}

	pruned := false
	kept := cart.Items[:0]
	for _, line := range cart.Items {
		item, err := s.items.FindByID(ctx, line.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				pruned = true
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "pricing cart")
		}

		kept = append(kept, line)
		lineTotal := item.PricePerDay.Mul(decimal.NewFromInt(int64(line.Qty)))
		dto.Items = append(dto.Items, CartItemDTO{
			ItemID:      item.ID,
			Name:        item.Name,
			Slug:        item.Slug,
			PricePerDay: item.PricePerDay,
			Qty:         line.Qty,
			LineTotal:   lineTotal,
		})
		dto.Subtotal = dto.Subtotal.Add(lineTotal)
		dto.Count += line.Qty
	}

	if pruned {
		cart.Items = kept
		if err := s.saveCart(ctx, token, cart); err != nil {
			return nil, err
		}
	}

	return dto, nil
}
