package orders

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	storeapp "github.com/Apurer/go-gin-shop-api/internal/domains/store/application"
	storeports "github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
)

func TestEncodeDecodeError(t *testing.T) {
	cases := []error{
		fmt.Errorf("%w: client id must be greater than zero", storeapp.ErrInvalidInput),
		fmt.Errorf("%w: id 9", storeports.ErrClientNotFound),
		storeports.ErrOutOfStock,
		storeports.ErrIdempotencyConflict,
	}
	for _, original := range cases {
		encoded := EncodeError(original)
		var appErr *temporal.ApplicationError
		require.ErrorAs(t, encoded, &appErr)
		assert.True(t, appErr.NonRetryable())

		decoded := DecodeError(encoded)
		for _, t2 := range errorTypes {
			if errors.Is(original, t2.sentinel) {
				assert.ErrorIs(t, decoded, t2.sentinel)
			}
		}
		assert.Equal(t, original.Error(), decoded.Error())
	}
}

func TestEncodeErrorPassesUnknownErrors(t *testing.T) {
	boom := errors.New("boom")
	assert.Same(t, boom, EncodeError(boom))
	assert.Same(t, boom, DecodeError(boom))
	assert.NoError(t, EncodeError(nil))
	assert.NoError(t, DecodeError(nil))
}
