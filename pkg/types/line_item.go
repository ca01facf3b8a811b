package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// LineItem references a catalog item together with a requested quantity.
// Lead rows keep these as a point-in-time snapshot: they are not kept in
// sync when the referenced item later changes or is deleted.
type LineItem struct {
	ItemID uuid.UUID `json:"item_id" validate:"required"`
	Qty    int       `json:"qty" validate:"required,min=1"`
}

// LineItemList stores line items as a jsonb column.
type LineItemList []LineItem

// Value implements driver.Valuer.
func (l LineItemList) Value() (driver.Value, error) {
	if l == nil {
		l = LineItemList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *LineItemList) Scan(src any) error {
	if src == nil {
		*l = LineItemList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported line item list source %T", src)
	}
}
