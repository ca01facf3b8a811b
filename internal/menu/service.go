package menu

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service exposes catering menu browse and admin management operations.
type Service interface {
	ListMenuItems(ctx context.Context, cuisine string) ([]MenuItemDTO, error)
	CreateMenuItem(ctx context.Context, input CreateMenuItemInput) (*MenuItemDTO, error)
	UpdateMenuItem(ctx context.Context, id uuid.UUID, input UpdateMenuItemInput) (*MenuItemDTO, error)
	DeleteMenuItem(ctx context.Context, id uuid.UUID) error
}

// MenuItemDTO represents the catering menu payload returned to clients.
type MenuItemDTO struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Cuisine        string          `json:"cuisine,omitempty"`
	PricePerPerson decimal.Decimal `json:"price_per_person"`
	Allergens      []string        `json:"allergens"`
	Images         []types.Image   `json:"images"`
	Description    string          `json:"description,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateMenuItemInput holds the validated payload to create a menu item.
type CreateMenuItemInput struct {
	Name           string
	Cuisine        string
	PricePerPerson decimal.Decimal
	Allergens      []string
	Images         []types.Image
	Description    string
}

// UpdateMenuItemInput holds optional mutation values for a menu item.
type UpdateMenuItemInput struct {
	Name           *string
	Cuisine        *string
	PricePerPerson *decimal.Decimal
	Allergens      *[]string
	Images         *[]types.Image
	Description    *string
}

type service struct {
	repo *Repository
}

// NewService constructs a menu service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("menu repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListMenuItems(ctx context.Context, cuisine string) ([]MenuItemDTO, error) {
	rows, err := s.repo.ListMenuItems(ctx, cuisine)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing menu items")
	}

	dtos := make([]MenuItemDTO, len(rows))
	for i := range rows {
		dtos[i] = *newMenuItemDTO(&rows[i])
	}
	return dtos, nil
}

func (s *service) CreateMenuItem(ctx context.Context, input CreateMenuItemInput) (*MenuItemDTO, error) {
	if input.PricePerPerson.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_per_person cannot be negative")
	}

	row := &models.MenuItem{
		Name:           input.Name,
		Cuisine:        input.Cuisine,
		PricePerPerson: input.PricePerPerson,
		Allergens:      pq.StringArray(input.Allergens),
		Images:         types.ImageList(input.Images),
		Description:    input.Description,
	}
	if row.Allergens == nil {
		row.Allergens = pq.StringArray{}
	}
	if row.Images == nil {
		row.Images = types.ImageList{}
	}

	created, err := s.repo.CreateMenuItem(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating menu item")
	}
	return newMenuItemDTO(created), nil
}

func (s *service) UpdateMenuItem(ctx context.Context, id uuid.UUID, input UpdateMenuItemInput) (*MenuItemDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading menu item")
	}

	if input.Name != nil {
		row.Name = *input.Name
	}
	if input.Cuisine != nil {
		row.Cuisine = *input.Cuisine
	}
	if input.PricePerPerson != nil {
		if input.PricePerPerson.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_per_person cannot be negative")
		}
		row.PricePerPerson = *input.PricePerPerson
	}
	if input.Allergens != nil {
		row.Allergens = pq.StringArray(*input.Allergens)
	}
	if input.Images != nil {
		row.Images = types.ImageList(*input.Images)
	}
	if input.Description != nil {
		row.Description = *input.Description
	}

	updated, err := s.repo.UpdateMenuItem(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating menu item")
	}
	return newMenuItemDTO(updated), nil
}

func (s *service) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.DeleteMenuItem(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting menu item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
	}
	return nil
}

func newMenuItemDTO(row *models.MenuItem) *MenuItemDTO {
	return &MenuItemDTO{
		ID:             row.ID,
		Name:           row.Name,
		Cuisine:        row.Cuisine,
		PricePerPerson: row.PricePerPerson,
		Allergens:      append([]string{}, row.Allergens...),
		Images:         append([]types.Image{}, row.Images...),
		Description:    row.Description,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
