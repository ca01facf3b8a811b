package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Upsell is a named add-on offered with a package.
type Upsell struct {
	Label string          `json:"label" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// UpsellList stores upsells as a jsonb column.
type UpsellList []Upsell

// Value implements driver.Valuer.
func (l UpsellList) Value() (driver.Value, error) {
	if l == nil {
		l = UpsellList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *UpsellList) Scan(src any) error {
	if src == nil {
		*l = UpsellList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported upsell list source %T", src)
	}
}
