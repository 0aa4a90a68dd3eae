package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	clientdomain "github.com/Apurer/go-gin-shop-api/internal/domains/clients/domain"
)

func TestClientLabel(t *testing.T) {
	assert.Equal(t, "Jane Doe", ClientLabel(&clientdomain.Client{FirstName: "Jane", LastName: "Doe"}))
	assert.Empty(t, ClientLabel(nil))
}
