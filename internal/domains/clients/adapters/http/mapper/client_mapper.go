package mapper

import (
	"strings"

	clientdomain "github.com/Apurer/go-gin-shop-api/internal/domains/clients/domain"
)

// ClientRequest is accepted as JSON or form data.
type ClientRequest struct {
	FirstName   string `json:"first_name" form:"first_name" binding:"required"`
	LastName    string `json:"last_name" form:"last_name" binding:"required"`
	PhoneNumber string `json:"phone_number" form:"phone_number" binding:"required,max=20"`
	Email       string `json:"email" form:"email" binding:"required,email"`
}

// Client is the transport view of a client.
type Client struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Label       string `json:"label"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// ClientLabel renders a client as "First Last".
func ClientLabel(c *clientdomain.Client) string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func ToDomainClient(req ClientRequest) *clientdomain.Client {
	return &clientdomain.Client{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}
}

func FromDomainClient(c *clientdomain.Client) Client {
	if c == nil {
		return Client{}
	}
	return Client{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Label:       ClientLabel(c),
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
	}
}

func FromDomainClients(list []*clientdomain.Client) []Client {
	out := make([]Client, 0, len(list))
	for _, c := range list {
		out = append(out, FromDomainClient(c))
	}
	return out
}
