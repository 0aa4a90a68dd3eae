package domain

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Apurer/go-gin-shop-api/internal/shared/validation"
)

var (
	ErrEmptyFirstName = errors.New("first name is required")
	ErrEmptyLastName  = errors.New("last name is required")
	ErrEmptyPhone     = errors.New("phone number is required")
	ErrPhoneTooLong   = errors.New("phone number must be at most 20 characters")
	ErrNameTooLong    = errors.New("names must be at most 100 characters")
	ErrInvalidEmail   = errors.New("email must be a valid address of at most 100 characters")
)

// Client is a customer placing orders. Phone number and email are unique per client.
type Client struct {
	ID          int64
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
}

// NewClient builds a client ensuring required invariants.
func NewClient(firstName, lastName, phone, email string) (*Client, error) {
	client := &Client{FirstName: firstName, LastName: lastName, PhoneNumber: phone, Email: email}
	if err := client.Validate(); err != nil {
		return nil, err
	}
	return client, nil
}

// Validate trims every field and re-applies the invariants.
func (c *Client) Validate() error {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)
	c.Email = strings.TrimSpace(c.Email)
	if c.FirstName == "" {
		return ErrEmptyFirstName
	}
	if c.LastName == "" {
		return ErrEmptyLastName
	}
	if utf8.RuneCountInString(c.FirstName) > 100 || utf8.RuneCountInString(c.LastName) > 100 {
		return ErrNameTooLong
	}
	if c.PhoneNumber == "" {
		return ErrEmptyPhone
	}
	if utf8.RuneCountInString(c.PhoneNumber) > 20 {
		return ErrPhoneTooLong
	}
	if utf8.RuneCountInString(c.Email) > 100 || !validation.Email(c.Email) {
		return ErrInvalidEmail
	}
	return nil
}
