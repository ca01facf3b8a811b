package menu

import (
	"context"
	"strings"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository wires together catering menu persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a menu item by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	var row models.MenuItem
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListMenuItems returns the menu, optionally filtered by cuisine, ordered by name.
func (r *Repository) ListMenuItems(ctx context.Context, cuisine string) ([]models.MenuItem, error) {
	qb := r.db.WithContext(ctx).Model(&models.MenuItem{})
	if cuisine = strings.TrimSpace(cuisine); cuisine != "" {
		qb = qb.Where("cuisine = ?", cuisine)
	}

	var rows []models.MenuItem
	err := qb.Order("name ASC").Find(&rows).Error
	return rows, err
}

// CreateMenuItem inserts a new menu row.
func (r *Repository) CreateMenuItem(ctx context.Context, row *models.MenuItem) (*models.MenuItem, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// UpdateMenuItem updates an existing menu row.
func (r *Repository) UpdateMenuItem(ctx context.Context, row *models.MenuItem) (*models.MenuItem, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// DeleteMenuItem removes a menu row by ID.
func (r *Repository) DeleteMenuItem(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MenuItem{})
	return res.RowsAffected, res.Error
}
