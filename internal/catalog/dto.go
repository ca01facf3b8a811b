package catalog

import (
	"time"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the catalog item payload returned to clients.
type ItemDTO struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Category      string           `json:"category"`
	PricePerDay   decimal.Decimal  `json:"price_per_day"`
	PricePerWeek  *decimal.Decimal `json:"price_per_week,omitempty"`
	Images        []types.Image    `json:"images"`
	Stock         int              `json:"stock"`
	Tags          []string         `json:"tags"`
	Dimensions    types.Dimensions `json:"dimensions"`
	RequiresSetup bool             `json:"requires_setup"`
	Description   string           `json:"description,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// NewItemDTO builds a DTO from the persisted model.
func NewItemDTO(item *models.Item) *ItemDTO {
	return &ItemDTO{
		ID:            item.ID,
		Name:          item.Name,
		Slug:          item.Slug,
		Category:      item.Category,
		PricePerDay:   item.PricePerDay,
		PricePerWeek:  item.PricePerWeek,
		Images:        append([]types.Image{}, item.Images...),
		Stock:         item.Stock,
		Tags:          append([]string{}, item.Tags...),
		Dimensions:    item.Dimensions,
		RequiresSetup: item.RequiresSetup,
		Description:   item.Description,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// NewItemDTOs maps the model slice while keeping empty slices non-nil for JSON.
func NewItemDTOs(items []models.Item) []ItemDTO {
	dtos := make([]ItemDTO, len(items))
	for i := range items {
		dtos[i] = *NewItemDTO(&items[i])
	}
	return dtos
}
