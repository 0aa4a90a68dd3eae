package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-shop-api/internal/domains/clients/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/clients/ports"
)

type fakeClientRepo struct {
	clients map[int64]*domain.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[int64]*domain.Client{}}
}

func (f *fakeClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	for _, existing := range f.clients {
		if existing.Email == client.Email || existing.PhoneNumber == client.PhoneNumber {
			return nil, ports.ErrConflict
		}
	}
	copy := *client
	copy.ID = int64(len(f.clients) + 1)
	f.clients[copy.ID] = &copy
	return &copy, nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	if c, ok := f.clients[id]; ok {
		copy := *c
		return &copy, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeClientRepo) List(context.Context) ([]*domain.Client, error) {
	var list []*domain.Client
	for id := int64(1); id <= int64(len(f.clients)); id++ {
		list = append(list, f.clients[id])
	}
	return list, nil
}

func TestCreateClient_ValidatesAndPersists(t *testing.T) {
	svc := NewService(newFakeClientRepo())

	saved, err := svc.CreateClient(context.Background(), &domain.Client{FirstName: "Jane", LastName: "Doe", PhoneNumber: "1", Email: "jane@doe.com"})
	require.NoError(t, err)
	require.EqualValues(t, 1, saved.ID)

	fetched, err := svc.GetClient(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, "jane@doe.com", fetched.Email)
}

func TestCreateClient_InvalidEmail(t *testing.T) {
	svc := NewService(newFakeClientRepo())

	_, err := svc.CreateClient(context.Background(), &domain.Client{FirstName: "Jane", LastName: "Doe", PhoneNumber: "1", Email: "jane"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestCreateClient_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeClientRepo())
	ctx := context.Background()

	_, err := svc.CreateClient(ctx, &domain.Client{FirstName: "Jane", LastName: "Doe", PhoneNumber: "1", Email: "jane@doe.com"})
	require.NoError(t, err)
	_, err = svc.CreateClient(ctx, &domain.Client{FirstName: "John", LastName: "Doe", PhoneNumber: "2", Email: "jane@doe.com"})
	require.ErrorIs(t, err, ports.ErrConflict)
}
