package packages

import (
	"context"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository wires together event package persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a package by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Package, error) {
	var row models.Package
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindBySlug loads a package by its URL slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Package, error) {
	var row models.Package
	if err := r.db.WithContext(ctx).First(&row, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListPackages returns all packages ordered by base price ascending.
func (r *Repository) ListPackages(ctx context.Context) ([]models.Package, error) {
	var rows []models.Package
	err := r.db.WithContext(ctx).Order("base_price ASC").Find(&rows).Error
	return rows, err
}

// CreatePackage inserts a new package row.
func (r *Repository) CreatePackage(ctx context.Context, row *models.Package) (*models.Package, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// UpdatePackage updates an existing package row.
func (r *Repository) UpdatePackage(ctx context.Context, row *models.Package) (*models.Package, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// DeletePackage removes a package row by ID.
func (r *Repository) DeletePackage(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Package{})
	return res.RowsAffected, res.Error
}
