package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/pagination"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service exposes catalog browse and admin management operations.
type Service interface {
	ListItems(ctx context.Context, input ListItemsInput) (*ItemListResult, error)
	GetItem(ctx context.Context, idOrSlug string) (*ItemDTO, error)
	ListCategories(ctx context.Context) ([]string, error)
	CreateItem(ctx context.Context, input CreateItemInput) (*ItemDTO, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, input UpdateItemInput) (*ItemDTO, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

// CreateItemInput holds the validated payload to create a catalog item.
type CreateItemInput struct {
	Name          string
	Slug          string
	Category      string
	PricePerDay   decimal.Decimal
	PricePerWeek  *decimal.Decimal
	Images        []types.Image
	Stock         int
	Tags          []string
	Dimensions    types.Dimensions
	RequiresSetup bool
	Description   string
}

// UpdateItemInput holds optional mutation values for a catalog item.
type UpdateItemInput struct {
	Name          *string
	Slug          *string
	Category      *string
	PricePerDay   *decimal.Decimal
	PricePerWeek  *decimal.Decimal
	Images        *[]types.Image
	Stock         *int
	Tags          *[]string
	Dimensions    *types.Dimensions
	RequiresSetup *bool
	Description   *string
}

type service struct {
	repo *Repository
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// ListItems returns one page of the filtered catalog with the total count.
// A page past the end returns an empty item list, not an error.
func (s *service) ListItems(ctx context.Context, input ListItemsInput) (*ItemListResult, error) {
	input.Pagination = input.Pagination.Normalize()

	rows, total, err := s.repo.ListItems(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing catalog items")
	}

	return &ItemListResult{
		Items: NewItemDTOs(rows),
		Total: total,
		Page:  input.Pagination.Page,
		Pages: pagination.Pages(total, input.Pagination.Limit),
	}, nil
}

// GetItem returns one item for the public detail page. The key is either the
// item UUID or its URL slug.
func (s *service) GetItem(ctx context.Context, idOrSlug string) (*ItemDTO, error) {
	key := strings.TrimSpace(idOrSlug)
	if key == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id or slug is required")
	}

	var (
		item *models.Item
		err  error
	)
	if id, parseErr := uuid.Parse(key); parseErr == nil {
		item, err = s.repo.FindByID(ctx, id)
	} else {
		item, err = s.repo.FindBySlug(ctx, strings.ToLower(key))
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading item")
	}
	return NewItemDTO(item), nil
}

// ListCategories surfaces the distinct category names for filter dropdowns.
func (s *service) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing categories")
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// CreateItem inserts a new catalog item. Slugs must be unique.
func (s *service) CreateItem(ctx context.Context, input CreateItemInput) (*ItemDTO, error) {
	if input.PricePerDay.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_per_day cannot be negative")
	}
	if input.Stock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
	}

	item := &models.Item{
		Name:          input.Name,
		Slug:          normalizeSlug(input.Slug, input.Name),
		Category:      input.Category,
		PricePerDay:   input.PricePerDay,
		PricePerWeek:  input.PricePerWeek,
		Images:        types.ImageList(input.Images),
		Stock:         input.Stock,
		Tags:          pq.StringArray(input.Tags),
		Dimensions:    input.Dimensions,
		RequiresSetup: input.RequiresSetup,
		Description:   input.Description,
	}
	if item.Images == nil {
		item.Images = types.ImageList{}
	}
	if item.Tags == nil {
		item.Tags = pq.StringArray{}
	}

	created, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		if db.IsUniqueViolation(err, "items_slug_key") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "an item with this slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating catalog item")
	}
	return NewItemDTO(created), nil
}

// UpdateItem applies the provided fields to an existing item.
func (s *service) UpdateItem(ctx context.Context, itemID uuid.UUID, input UpdateItemInput) (*ItemDTO, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Slug != nil {
		item.Slug = normalizeSlug(*input.Slug, item.Name)
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.PricePerDay != nil {
		if input.PricePerDay.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_per_day cannot be negative")
		}
		item.PricePerDay = *input.PricePerDay
	}
	if input.PricePerWeek != nil {
		item.PricePerWeek = input.PricePerWeek
	}
	if input.Images != nil {
		item.Images = types.ImageList(*input.Images)
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
		}
		item.Stock = *input.Stock
	}
	if input.Tags != nil {
		item.Tags = pq.StringArray(*input.Tags)
	}
	if input.Dimensions != nil {
		item.Dimensions = *input.Dimensions
	}
	if input.RequiresSetup != nil {
		item.RequiresSetup = *input.RequiresSetup
	}
	if input.Description != nil {
		item.Description = *input.Description
	}

	updated, err := s.repo.UpdateItem(ctx, item)
	if err != nil {
		if db.IsUniqueViolation(err, "items_slug_key") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "an item with this slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating catalog item")
	}
	return NewItemDTO(updated), nil
}

// DeleteItem removes an item permanently.
func (s *service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	affected, err := s.repo.DeleteItem(ctx, itemID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting catalog item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
	}
	return nil
}

// normalizeSlug lowercases the slug and falls back to a slugified name when
// the caller omitted one.
func normalizeSlug(slug, name string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		slug = strings.TrimSpace(strings.ToLower(name))
	}
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}
