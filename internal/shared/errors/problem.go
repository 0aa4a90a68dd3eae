// Package errors renders shop failures as RFC 7807 problem documents.
package errors

import (
	"fmt"
	"net/http"
)

// Problem is the body of an application/problem+json response.
type Problem struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// WithDetail returns a copy carrying detail.
func (p Problem) WithDetail(detail string) Problem {
	p.Detail = detail
	return p
}

// WithExtension returns a copy with key set in the extensions. The template's
// map is never shared with the copy.
func (p Problem) WithExtension(key string, value any) Problem {
	extensions := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		extensions[k] = v
	}
	extensions[key] = value
	p.Extensions = extensions
	return p
}

// Problem type references, relative to the responder's base URI.
const (
	TypeValidation  = "/problems/validation-error"
	TypeNotFound    = "/problems/not-found"
	TypeConflict    = "/problems/conflict"
	TypeInternal    = "/problems/internal-error"
	TypeBadRequest  = "/problems/bad-request"
	TypeReference   = "/problems/unknown-reference"
	TypeOutOfStock  = "/problems/out-of-stock"
	TypeUnavailable = "/problems/store-unavailable"
)

// Templates for the failures the shop reports.
var (
	ErrNotFound    = Problem{Type: TypeNotFound, Title: "Resource Not Found", Status: http.StatusNotFound}
	ErrValidation  = Problem{Type: TypeValidation, Title: "Validation Error", Status: http.StatusBadRequest}
	ErrBadRequest  = Problem{Type: TypeBadRequest, Title: "Bad Request", Status: http.StatusBadRequest}
	ErrConflict    = Problem{Type: TypeConflict, Title: "Conflict", Status: http.StatusConflict}
	ErrInternal    = Problem{Type: TypeInternal, Title: "Internal Server Error", Status: http.StatusInternalServerError}
	ErrReference   = Problem{Type: TypeReference, Title: "Unknown Reference", Status: http.StatusUnprocessableEntity}
	ErrOutOfStock  = Problem{Type: TypeOutOfStock, Title: "Out Of Stock", Status: http.StatusConflict}
	ErrUnavailable = Problem{Type: TypeUnavailable, Title: "Store Unavailable", Status: http.StatusServiceUnavailable}
)

// NewValidationProblem lists the rejected fields under the "fields" extension.
func NewValidationProblem(fieldErrors map[string]string) Problem {
	return ErrValidation.WithExtension("fields", fieldErrors)
}

// NewConflictProblem reports a duplicate value for a unique field.
func NewConflictProblem(resourceType, detail string) Problem {
	return ErrConflict.
		WithDetail(detail).
		WithExtension("resourceType", resourceType)
}

// NewNotFoundProblem names the missing resource and its identifier.
func NewNotFoundProblem(resourceType string, identifier any) Problem {
	return ErrNotFound.
		WithDetail(fmt.Sprintf("%s %v not found", resourceType, identifier)).
		WithExtension("resourceType", resourceType).
		WithExtension("identifier", identifier)
}
