package shopserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clientmapper "github.com/Apurer/go-gin-shop-api/internal/domains/clients/adapters/http/mapper"
	clientports "github.com/Apurer/go-gin-shop-api/internal/domains/clients/ports"
)

// ClientAPI wires HTTP transport with the clients bounded context service.
type ClientAPI struct {
	service clientports.Service
}

// NewClientAPI creates a ClientAPI backed by the provided service.
func NewClientAPI(service clientports.Service) ClientAPI {
	return ClientAPI{service: service}
}

// Get /clients
func (api *ClientAPI) ListClients(c *gin.Context) {
	result, err := api.service.ListClients(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientmapper.FromDomainClients(result))
}

// Post /clients
// Registers a client. Phone number and email must be unused.
func (api *ClientAPI) CreateClient(c *gin.Context) {
	var payload clientmapper.ClientRequest
	if err := c.ShouldBind(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := api.service.CreateClient(c.Request.Context(), clientmapper.ToDomainClient(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, clientmapper.FromDomainClient(created))
}
