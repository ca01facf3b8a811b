package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
)

// Package bundles catalog items sold together at a base price.
type Package struct {
	ID            uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string             `gorm:"column:name;not null;uniqueIndex:packages_name_key"`
	Slug          string             `gorm:"column:slug;not null;uniqueIndex:packages_slug_key"`
	IncludedItems types.LineItemList `gorm:"column:included_items;type:jsonb;not null;default:'[]'"`
	BasePrice     decimal.Decimal    `gorm:"column:base_price;type:numeric(10,2);not null"`
	Upsells       types.UpsellList   `gorm:"column:upsells;type:jsonb;not null;default:'[]'"`
	Description   string             `gorm:"column:description"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
