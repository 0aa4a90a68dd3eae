package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-shop-api/internal/domains/clients/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/clients/ports"
	"github.com/Apurer/go-gin-shop-api/internal/platform/database/dbtest"
)

func TestRepository_CreateGetList(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))
	ctx := context.Background()

	jane, err := domain.NewClient("Jane", "Doe", "+81-3-0000", "jane@doe.com")
	require.NoError(t, err)
	saved, err := repo.Create(ctx, jane)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", fetched.FirstName)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = repo.GetByID(ctx, saved.ID+1)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_UniquePhoneAndEmail(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Client{FirstName: "Jane", LastName: "Doe", PhoneNumber: "1", Email: "jane@doe.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.Client{FirstName: "John", LastName: "Doe", PhoneNumber: "1", Email: "john@doe.com"})
	require.ErrorIs(t, err, ports.ErrConflict)

	_, err = repo.Create(ctx, &domain.Client{FirstName: "John", LastName: "Doe", PhoneNumber: "2", Email: "jane@doe.com"})
	require.ErrorIs(t, err, ports.ErrConflict)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1, "failed inserts leave no rows")
}
