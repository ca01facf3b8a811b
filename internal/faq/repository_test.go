package faq

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
)

func setupFAQTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS faqs (
  id TEXT PRIMARY KEY,
  question TEXT NOT NULL,
  answer TEXT NOT NULL,
  sort INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func seedFAQs(t *testing.T, repo *Repository) []models.FAQ {
	t.Helper()

	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	rows := []models.FAQ{
		{Question: "Do you deliver?", Answer: "Yes.", Sort: 2, IsActive: true},
		{Question: "What about rain?", Answer: "Free reschedule.", Sort: 1, IsActive: true},
		{Question: "Draft entry", Answer: "Not published.", Sort: 0, IsActive: false},
	}
	for i := range rows {
		rows[i].ID = uuid.New()
		rows[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		rows[i].UpdatedAt = rows[i].CreatedAt
		_, err := repo.CreateFAQ(context.Background(), &rows[i])
		require.NoError(t, err)
	}
	return rows
}

func TestListActiveFiltersAndOrders(t *testing.T) {
	repo := NewRepository(setupFAQTestDB(t))
	seedFAQs(t, repo)

	rows, err := repo.ListActive(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "What about rain?", rows[0].Question)
	assert.Equal(t, "Do you deliver?", rows[1].Question)
}

func TestListAllIncludesDrafts(t *testing.T) {
	repo := NewRepository(setupFAQTestDB(t))
	seedFAQs(t, repo)

	rows, err := repo.ListAll(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Draft entry", rows[0].Question)
}

func TestUpdateFAQTogglesActive(t *testing.T) {
	repo := NewRepository(setupFAQTestDB(t))
	seeded := seedFAQs(t, repo)

	draft := seeded[2]
	draft.IsActive = true
	_, err := repo.UpdateFAQ(context.Background(), &draft)
	require.NoError(t, err)

	rows, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
}

func TestDeleteFAQ(t *testing.T) {
	repo := NewRepository(setupFAQTestDB(t))
	seeded := seedFAQs(t, repo)

	affected, err := repo.DeleteFAQ(context.Background(), seeded[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.DeleteFAQ(context.Background(), seeded[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}
