package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/pagination"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS items (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  category TEXT NOT NULL,
  price_per_day NUMERIC NOT NULL,
  price_per_week NUMERIC,
  images TEXT NOT NULL DEFAULT '[]',
  stock INTEGER NOT NULL DEFAULT 1,
  tags TEXT NOT NULL DEFAULT '{}',
  width NUMERIC,
  length NUMERIC,
  height NUMERIC,
  requires_setup INTEGER NOT NULL DEFAULT 0,
  description TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func seedCatalogItems(t *testing.T, repo *Repository) []models.Item {
	t.Helper()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := []models.Item{
		{Name: "Princess Castle Bounce House", Slug: "princess-castle", Category: "bounce-houses", PricePerDay: decimal.NewFromInt(299), Tags: pq.StringArray{"kids", "inflatable"}, Description: "Inflatable castle for kids"},
		{Name: "60in Round Table", Slug: "round-table", Category: "tables", PricePerDay: decimal.NewFromInt(12), Description: "Seats 8 to 10 guests"},
		{Name: "White Folding Chair", Slug: "folding-chair", Category: "seating", PricePerDay: decimal.NewFromInt(2), Description: "Resin folding chair"},
		{Name: "Patio Heater", Slug: "patio-heater", Category: "climate", PricePerDay: decimal.NewFromInt(59), Tags: pq.StringArray{"outdoor", "winter"}, Description: "Propane heater, tank included"},
	}

	for i := range seed {
		seed[i].ID = uuid.New()
		seed[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		seed[i].UpdatedAt = seed[i].CreatedAt
		_, err := repo.CreateItem(context.Background(), &seed[i])
		require.NoError(t, err)
	}
	return seed
}

func TestListItemsPriceFilter(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	seedCatalogItems(t, repo)

	min := decimal.NewFromInt(10)
	max := decimal.NewFromInt(100)
	rows, total, err := repo.ListItems(context.Background(), ListItemsInput{
		Filters:    ItemListFilters{PriceMin: &min, PriceMax: &max},
		Sort:       enums.ItemSortPriceAsc,
		Pagination: pagination.Params{Page: 1, Limit: 12},
	})
	require.NoError(t, err)

	require.EqualValues(t, 2, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "round-table", rows[0].Slug)
	assert.Equal(t, "patio-heater", rows[1].Slug)
}

func TestListItemsCategoryFilter(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	seedCatalogItems(t, repo)

	rows, total, err := repo.ListItems(context.Background(), ListItemsInput{
		Filters:    ItemListFilters{Category: "seating"},
		Pagination: pagination.Params{Page: 1, Limit: 12},
	})
	require.NoError(t, err)

	require.EqualValues(t, 1, total)
	assert.Equal(t, "folding-chair", rows[0].Slug)
}

func TestListItemsSearchMatchesNameAndDescription(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	seedCatalogItems(t, repo)

	rows, total, err := repo.ListItems(context.Background(), ListItemsInput{
		Filters:    ItemListFilters{Query: "CASTLE"},
		Pagination: pagination.Params{Page: 1, Limit: 12},
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "princess-castle", rows[0].Slug)

	rows, total, err = repo.ListItems(context.Background(), ListItemsInput{
		Filters:    ItemListFilters{Query: "tank included"},
		Pagination: pagination.Params{Page: 1, Limit: 12},
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "patio-heater", rows[0].Slug)
}

func TestListItemsSearchMatchesCategoryAndTags(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	seedCatalogItems(t, repo)

	rows, total, err := repo.ListItems(context.Background(), ListItemsInput{
		Filters:    ItemListFilters{Query: "tables"},
		Pagination: pagination.Params{Page: 1, Limit: 12},
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "round-table", rows[0].Slug)

	rows, total, err = repo.ListItems(context.Background(), ListItemsInput{
		Filters:    ItemListFilters{Query: "winter"},
		Pagination: pagination.Params{Page: 1, Limit: 12},
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "patio-heater", rows[0].Slug)
}

func TestListItemsSortPriceDesc(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	seedCatalogItems(t, repo)

	rows, _, err := repo.ListItems(context.Background(), ListItemsInput{
		Sort:       enums.ItemSortPriceDesc,
		Pagination: pagination.Params{Page: 1, Limit: 12},
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "princess-castle", rows[0].Slug)
	assert.Equal(t, "folding-chair", rows[3].Slug)
}

func TestListItemsDefaultSortNewestFirst(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	seed := seedCatalogItems(t, repo)

	rows, _, err := repo.ListItems(context.Background(), ListItemsInput{
		Pagination: pagination.Params{Page: 1, Limit: 12},
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, seed[len(seed)-1].Slug, rows[0].Slug)
}

func TestListItemsPagination(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	seedCatalogItems(t, repo)

	rows, total, err := repo.ListItems(context.Background(), ListItemsInput{
		Sort:       enums.ItemSortNameAsc,
		Pagination: pagination.Params{Page: 2, Limit: 3},
	})
	require.NoError(t, err)

	require.EqualValues(t, 4, total)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, pagination.Pages(total, 3))
}

func TestListCategoriesDistinctSorted(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	seedCatalogItems(t, repo)

	extra := models.Item{
		ID:          uuid.New(),
		Name:        "Kids Folding Chair",
		Slug:        "kids-folding-chair",
		Category:    "seating",
		PricePerDay: decimal.NewFromInt(2),
	}
	_, err := repo.CreateItem(context.Background(), &extra)
	require.NoError(t, err)

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bounce-houses", "climate", "seating", "tables"}, categories)
}

func TestFindBySlugAndDelete(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	seed := seedCatalogItems(t, repo)

	item, err := repo.FindBySlug(context.Background(), "patio-heater")
	require.NoError(t, err)
	assert.Equal(t, "Patio Heater", item.Name)

	affected, err := repo.DeleteItem(context.Background(), item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.DeleteItem(context.Background(), item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	_, err = repo.FindByID(context.Background(), seed[0].ID)
	require.NoError(t, err)
}
