package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewCountry_TrimsName(t *testing.T) {
	country, err := NewCountry("  Japan ")
	require.NoError(t, err)
	assert.Equal(t, "Japan", country.Name)

	_, err = NewCountry("   ")
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = NewCountry(strings.Repeat("x", 101))
	require.ErrorIs(t, err, ErrNameTooLong)
}

func TestNewManufacturer(t *testing.T) {
	m, err := NewManufacturer("Acme", ptr("  "), 1, ptr(int64(0)))
	require.NoError(t, err)
	assert.Nil(t, m.Website, "blank website is dropped")
	assert.EqualValues(t, 0, *m.AmountOfEmployees)

	_, err = NewManufacturer("Acme", nil, 0, nil)
	require.ErrorIs(t, err, ErrInvalidCountry)

	_, err = NewManufacturer("Acme", nil, 1, ptr(int64(-1)))
	require.ErrorIs(t, err, ErrInvalidEmployees)

	_, err = NewManufacturer("Acme", ptr(strings.Repeat("w", 256)), 1, nil)
	require.ErrorIs(t, err, ErrWebsiteTooLong)
}

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Gizmo", 1, 2, ptr("https://acme.example/gizmo"), 500)
	require.NoError(t, err)
	assert.True(t, p.InStock)
	assert.EqualValues(t, 500, p.Price)

	cases := []struct {
		name     string
		product  func() (*Product, error)
		expected error
	}{
		{"zero price", func() (*Product, error) { return NewProduct("Gizmo", 1, 2, nil, 0) }, ErrInvalidPrice},
		{"missing manufacturer", func() (*Product, error) { return NewProduct("Gizmo", 0, 2, nil, 1) }, ErrInvalidManufacturer},
		{"missing category", func() (*Product, error) { return NewProduct("Gizmo", 1, 0, nil, 1) }, ErrInvalidCategory},
		{"relative home page", func() (*Product, error) { return NewProduct("Gizmo", 1, 2, ptr("gizmo.html"), 1) }, ErrInvalidHomePage},
		{"empty name", func() (*Product, error) { return NewProduct("", 1, 2, nil, 1) }, ErrEmptyName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.product()
			require.ErrorIs(t, err, tc.expected)
		})
	}
}
