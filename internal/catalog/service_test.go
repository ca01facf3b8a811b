package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
)

func TestNewServiceRequiresRepository(t *testing.T) {
	_, err := NewService(nil)
	require.Error(t, err)
}

func TestGetItemByIDOrSlug(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	seed := seedCatalogItems(t, repo)

	svc, err := NewService(repo)
	require.NoError(t, err)

	byID, err := svc.GetItem(context.Background(), seed[0].ID.String())
	require.NoError(t, err)
	assert.Equal(t, "princess-castle", byID.Slug)

	bySlug, err := svc.GetItem(context.Background(), "Patio-Heater")
	require.NoError(t, err)
	assert.Equal(t, "Patio Heater", bySlug.Name)

	_, err = svc.GetItem(context.Background(), "no-such-item")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
