package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Image is a single catalog photo reference.
type Image struct {
	URL string `json:"url" validate:"required"`
	Alt string `json:"alt,omitempty"`
}

// ImageList stores an ordered set of images as a jsonb column.
type ImageList []Image

// Value implements driver.Valuer.
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *ImageList) Scan(src any) error {
	if src == nil {
		*l = ImageList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported image list source %T", src)
	}
}
