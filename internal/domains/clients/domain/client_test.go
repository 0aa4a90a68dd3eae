package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client, err := NewClient(" Jane ", "Doe", " +81 3 1234 ", "jane@doe.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane", client.FirstName)
	assert.Equal(t, "+81 3 1234", client.PhoneNumber)
}

func TestNewClient_Invalid(t *testing.T) {
	cases := []struct {
		name                     string
		first, last, phone, mail string
		expected                 error
	}{
		{"missing first name", "", "Doe", "1", "jane@doe.com", ErrEmptyFirstName},
		{"missing last name", "Jane", " ", "1", "jane@doe.com", ErrEmptyLastName},
		{"missing phone", "Jane", "Doe", "", "jane@doe.com", ErrEmptyPhone},
		{"long phone", "Jane", "Doe", strings.Repeat("1", 21), "jane@doe.com", ErrPhoneTooLong},
		{"bad email", "Jane", "Doe", "1", "jane.doe.com", ErrInvalidEmail},
		{"long name", strings.Repeat("J", 101), "Doe", "1", "jane@doe.com", ErrNameTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewClient(tc.first, tc.last, tc.phone, tc.mail)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}
