package catalog

import (
	"context"
	"strings"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository wires together catalog item persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindByID loads an item by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindBySlug loads an item by its URL slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts a new item row.
func (r *Repository) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem updates an existing item row.
func (r *Repository) UpdateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item by ID. Returns the number of rows removed so
// callers can distinguish a miss from a delete.
func (r *Repository) DeleteItem(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Item{})
	return res.RowsAffected, res.Error
}

// ListItems applies filters, sort, and offset pagination, returning the rows
// plus the unpaginated total.
func (r *Repository) ListItems(ctx context.Context, input ListItemsInput) ([]models.Item, int64, error) {
	params := input.Pagination.Normalize()

	qb := r.db.WithContext(ctx).Model(&models.Item{})
	qb = applyItemFilters(qb, input.Filters)

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Item
	err := qb.
		Order(orderClause(input.Sort)).
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListCategories returns the distinct categories currently in the catalog.
func (r *Repository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).
		Error
	return categories, err
}

func applyItemFilters(qb *gorm.DB, filters ItemListFilters) *gorm.DB {
	if category := strings.TrimSpace(filters.Category); category != "" {
		qb = qb.Where("category = ?", category)
	}
	if filters.PriceMin != nil {
		qb = qb.Where("price_per_day >= ?", *filters.PriceMin)
	}
	if filters.PriceMax != nil {
		qb = qb.Where("price_per_day <= ?", *filters.PriceMax)
	}
	if search := strings.TrimSpace(filters.Query); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		// CAST(tags AS TEXT) renders the array as '{a,b}' on both Postgres
		// and the sqlite test databases.
		qb = qb.Where(
			"(LOWER(name) LIKE ? OR LOWER(category) LIKE ? OR LOWER(description) LIKE ? OR LOWER(CAST(tags AS TEXT)) LIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}
	return qb
}

// orderClause keeps the sort whitelist in one place. Ties fall back to
// created_at so pages stay stable across requests.
func orderClause(sort enums.ItemSort) string {
	switch sort {
	case enums.ItemSortPriceAsc:
		return "price_per_day ASC, created_at DESC"
	case enums.ItemSortPriceDesc:
		return "price_per_day DESC, created_at DESC"
	case enums.ItemSortNameAsc:
		return "name ASC"
	default:
		return "created_at DESC"
	}
}
