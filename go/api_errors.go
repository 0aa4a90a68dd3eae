package shopserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	catalogapp "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/application"
	catalogports "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/ports"
	clientapp "github.com/Apurer/go-gin-shop-api/internal/domains/clients/application"
	clientports "github.com/Apurer/go-gin-shop-api/internal/domains/clients/ports"
	storeapp "github.com/Apurer/go-gin-shop-api/internal/domains/store/application"
	storeports "github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
	"github.com/Apurer/go-gin-shop-api/internal/platform/database"
	apierrors "github.com/Apurer/go-gin-shop-api/internal/shared/errors"
	"github.com/Apurer/go-gin-shop-api/internal/shared/validation"
)

var responder = apierrors.NewResponder("",
	mapUnavailableError,
	mapCatalogError,
	mapClientError,
	mapStoreError,
)

// respondServiceError maps domain errors to RFC 7807 responses.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

// respondBindError reports a request body or parameter that could not be decoded.
func respondBindError(c *gin.Context, err error) {
	if fields, ok := validation.FieldErrors(err); ok {
		responder.ValidationFailed(c, fields)
		return
	}
	responder.BadRequest(c, err.Error())
}

// respondCreated answers a JSON create with 201 and the entity; a form post is redirected back to the listing.
func respondCreated(c *gin.Context, body any) {
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		c.Redirect(http.StatusSeeOther, c.Request.URL.Path)
	default:
		c.JSON(http.StatusCreated, body)
	}
}

func mapUnavailableError(err error) (apierrors.Problem, bool) {
	if errors.Is(err, database.ErrUnavailable) {
		return apierrors.ErrUnavailable.WithDetail("the store is temporarily unavailable, retry the request"), true
	}
	return apierrors.Problem{}, false
}

func mapCatalogError(err error) (apierrors.Problem, bool) {
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	case errors.Is(err, catalogports.ErrConflict):
		return apierrors.NewConflictProblem("catalog", err.Error()), true
	case errors.Is(err, catalogports.ErrReferenceNotFound):
		return apierrors.ErrReference.WithDetail(err.Error()), true
	}
	return apierrors.Problem{}, false
}

func mapClientError(err error) (apierrors.Problem, bool) {
	switch {
	case errors.Is(err, clientapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	case errors.Is(err, clientports.ErrConflict):
		return apierrors.NewConflictProblem("client", "a client with this phone number or email already exists"), true
	case errors.Is(err, clientports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	}
	return apierrors.Problem{}, false
}

func mapStoreError(err error) (apierrors.Problem, bool) {
	switch {
	case errors.Is(err, storeapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	case errors.Is(err, storeports.ErrClientNotFound):
		return apierrors.ErrReference.WithDetail(err.Error()), true
	case errors.Is(err, storeports.ErrOutOfStock):
		return apierrors.ErrOutOfStock.WithDetail(err.Error()), true
	case errors.Is(err, storeports.ErrIdempotencyConflict):
		return apierrors.NewConflictProblem("order", err.Error()), true
	case errors.Is(err, storeports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	}
	return apierrors.Problem{}, false
}
