package models

import (
	"time"

	"github.com/google/uuid"
)

// FAQ is a public help entry. Only active rows are listed to visitors.
type FAQ struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Question  string    `gorm:"column:question;not null"`
	Answer    string    `gorm:"column:answer;not null"`
	Sort      int       `gorm:"column:sort;not null;default:0;index"`
	IsActive  bool      `gorm:"column:is_active;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the table in step with the public route name.
func (FAQ) TableName() string {
	return "faqs"
}
