package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
)

// MenuItem represents a catering menu offering priced per person.
type MenuItem struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name           string          `gorm:"column:name;not null;index"`
	Cuisine        string          `gorm:"column:cuisine;index"`
	PricePerPerson decimal.Decimal `gorm:"column:price_per_person;type:numeric(10,2);not null"`
	Allergens      pq.StringArray  `gorm:"column:allergens;type:text[];not null;default:ARRAY[]::text[]"`
	Images         types.ImageList `gorm:"column:images;type:jsonb;not null;default:'[]'"`
	Description    string          `gorm:"column:description"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
