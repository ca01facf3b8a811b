package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
)

// Lead is a customer inquiry. Items is a point-in-time snapshot of the
// visitor's cart with no referential integrity against the items table.
type Lead struct {
	ID        uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	FirstName string             `gorm:"column:first_name;not null;index"`
	LastName  string             `gorm:"column:last_name;not null;index"`
	Email     string             `gorm:"column:email;not null;index:leads_email_created_idx,priority:1"`
	Phone     string             `gorm:"column:phone;not null"`
	EventDate time.Time          `gorm:"column:event_date;type:date;not null;index"`
	EventTime string             `gorm:"column:event_time;not null"`
	Address   types.Address      `gorm:"embedded;embeddedPrefix:address_"`
	Guests    int                `gorm:"column:guests;not null;default:0"`
	Items     types.LineItemList `gorm:"column:items;type:jsonb;not null;default:'[]'"`
	Notes     string             `gorm:"column:notes"`
	Status    enums.LeadStatus   `gorm:"column:status;not null;default:'new';index"`
	Source    string             `gorm:"column:source;not null;default:'website'"`
	Recaptcha string             `gorm:"column:recaptcha"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime;index:leads_email_created_idx,priority:2"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
