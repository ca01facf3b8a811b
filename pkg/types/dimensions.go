package types

import "github.com/shopspring/decimal"

// Dimensions describes an item's physical size in inches. All fields are
// optional; unspecified dimensions stay NULL.
type Dimensions struct {
	Width  *decimal.Decimal `json:"w,omitempty" gorm:"column:width;type:numeric(8,2)"`
	Length *decimal.Decimal `json:"l,omitempty" gorm:"column:length;type:numeric(8,2)"`
	Height *decimal.Decimal `json:"h,omitempty" gorm:"column:height;type:numeric(8,2)"`
}
