package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSoldOut = stderrors.New("sold out")

func serve(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, Problem) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/orders/:id", handler)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/7", nil))

	var problem Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem), rec.Body.String())
	return rec, problem
}

func TestResponder_RespondErrorUsesFirstMatchingMapper(t *testing.T) {
	unmatched := func(error) (Problem, bool) { return Problem{}, false }
	soldOut := func(err error) (Problem, bool) {
		if stderrors.Is(err, errSoldOut) {
			return ErrOutOfStock.WithDetail(err.Error()), true
		}
		return Problem{}, false
	}
	r := NewResponder("https://shop.example.com", unmatched, soldOut)

	rec, problem := serve(t, func(c *gin.Context) { r.RespondError(c, errSoldOut) })

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, "https://shop.example.com"+TypeOutOfStock, problem.Type)
	assert.Equal(t, "sold out", problem.Detail)
	assert.Equal(t, "/orders/7", problem.Instance)
	assert.Empty(t, rec.Header().Get("Retry-After"))
}

func TestResponder_UnmappedErrorsHideDetails(t *testing.T) {
	r := NewResponder("")
	var recorded []*gin.Error

	rec, problem := serve(t, func(c *gin.Context) {
		r.RespondError(c, stderrors.New("pq: password authentication failed"))
		recorded = c.Errors
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, TypeInternal, problem.Type)
	assert.Equal(t, "unexpected error", problem.Detail)
	require.Len(t, recorded, 1)
}

func TestResponder_ServiceUnavailableSetsRetryAfter(t *testing.T) {
	unavailable := func(error) (Problem, bool) { return ErrUnavailable, true }
	r := NewResponder("", unavailable)

	for name, handler := range map[string]gin.HandlerFunc{
		"mapped error": func(c *gin.Context) { r.RespondError(c, stderrors.New("timeout")) },
		"helper":       func(c *gin.Context) { r.Unavailable(c, "store ping failed") },
	} {
		t.Run(name, func(t *testing.T) {
			rec, problem := serve(t, handler)
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.Equal(t, RetryAfterSeconds, rec.Header().Get("Retry-After"))
			assert.Equal(t, TypeUnavailable, problem.Type)
		})
	}
}

func TestResponder_NotFoundNamesTheResource(t *testing.T) {
	r := NewResponder("")

	rec, problem := serve(t, func(c *gin.Context) { r.NotFound(c, "order", int64(7)) })

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource Not Found", problem.Title)
	assert.Equal(t, "order 7 not found", problem.Detail)
	assert.Equal(t, "order", problem.Extensions["resourceType"])
	assert.EqualValues(t, 7, problem.Extensions["identifier"])
}

func TestResponder_ValidationFailedListsFields(t *testing.T) {
	r := NewResponder("")

	rec, problem := serve(t, func(c *gin.Context) {
		r.ValidationFailed(c, map[string]string{"price": "must be greater than 0"})
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, TypeValidation, problem.Type)
	assert.Equal(t, map[string]any{"price": "must be greater than 0"}, problem.Extensions["fields"])
}

func TestProblem_WithExtensionDoesNotShareTemplateMap(t *testing.T) {
	base := ErrConflict.WithExtension("resourceType", "catalog")
	first := base.WithExtension("field", "name")
	second := base.WithExtension("field", "email")

	assert.Equal(t, "name", first.Extensions["field"])
	assert.Equal(t, "email", second.Extensions["field"])
	assert.NotContains(t, base.Extensions, "field")
	assert.Nil(t, ErrConflict.Extensions)
}
