package leads

import (
	"context"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository wires together lead persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateLead inserts a new lead row.
func (r *Repository) CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		return nil, err
	}
	return lead, nil
}

// FindByID loads a lead by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// UpdateLead updates an existing lead row.
func (r *Repository) UpdateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if err := r.db.WithContext(ctx).Save(lead).Error; err != nil {
		return nil, err
	}
	return lead, nil
}

// DeleteLead removes a lead by ID. Returns the number of rows removed so
// callers can distinguish a miss from a delete.
func (r *Repository) DeleteLead(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Lead{})
	return res.RowsAffected, res.Error
}

// ListLeads returns one page of leads, newest first, plus the total count.
func (r *Repository) ListLeads(ctx context.Context, input ListLeadsInput) ([]models.Lead, int64, error) {
	params := input.Pagination.Normalize()

	qb := r.db.WithContext(ctx).Model(&models.Lead{})
	if input.Status != nil {
		qb = qb.Where("status = ?", *input.Status)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Lead
	err := qb.
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
