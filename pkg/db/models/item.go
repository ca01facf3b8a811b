package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
)

// Item represents a rentable catalog product.
type Item struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string           `gorm:"column:name;not null;index"`
	Slug          string           `gorm:"column:slug;not null;uniqueIndex:items_slug_key"`
	Category      string           `gorm:"column:category;not null;index"`
	PricePerDay   decimal.Decimal  `gorm:"column:price_per_day;type:numeric(10,2);not null;index"`
	PricePerWeek  *decimal.Decimal `gorm:"column:price_per_week;type:numeric(10,2)"`
	Images        types.ImageList  `gorm:"column:images;type:jsonb;not null;default:'[]'"`
	Stock         int              `gorm:"column:stock;not null"`
	Tags          pq.StringArray   `gorm:"column:tags;type:text[];not null;default:ARRAY[]::text[]"`
	Dimensions    types.Dimensions `gorm:"embedded"`
	RequiresSetup bool             `gorm:"column:requires_setup;not null;default:false"`
	Description   string           `gorm:"column:description"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
