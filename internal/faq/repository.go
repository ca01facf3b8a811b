package faq

import (
	"context"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository wires together FAQ persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a FAQ entry by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.FAQ, error) {
	var row models.FAQ
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListActive returns the published FAQ entries in display order.
func (r *Repository) ListActive(ctx context.Context) ([]models.FAQ, error) {
	var rows []models.FAQ
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort ASC, created_at ASC").
		Find(&rows).
		Error
	return rows, err
}

// ListAll returns every FAQ entry for the admin screen, drafts included.
func (r *Repository) ListAll(ctx context.Context) ([]models.FAQ, error) {
	var rows []models.FAQ
	err := r.db.WithContext(ctx).
		Order("sort ASC, created_at ASC").
		Find(&rows).
		Error
	return rows, err
}

// CreateFAQ inserts a new FAQ row.
func (r *Repository) CreateFAQ(ctx context.Context, row *models.FAQ) (*models.FAQ, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// UpdateFAQ updates an existing FAQ row.
func (r *Repository) UpdateFAQ(ctx context.Context, row *models.FAQ) (*models.FAQ, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// DeleteFAQ removes a FAQ row by ID.
func (r *Repository) DeleteFAQ(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.FAQ{})
	return res.RowsAffected, res.Error
}
