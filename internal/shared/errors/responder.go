package errors

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type of every problem response.
const ContentTypeProblemJSON = "application/problem+json"

// RetryAfterSeconds is advertised on every 503 response.
const RetryAfterSeconds = "1"

// Mapper translates an application error into a problem. ok is false when
// the mapper does not recognise err.
type Mapper func(err error) (problem Problem, ok bool)

// Responder writes problem responses, translating errors through its
// mappers in order.
type Responder struct {
	baseURI string
	mappers []Mapper
}

func NewResponder(baseURI string, mappers ...Mapper) *Responder {
	return &Responder{baseURI: baseURI, mappers: mappers}
}

// Respond writes problem. Relative type references are resolved against the
// base URI and the instance defaults to the request path.
func (r *Responder) Respond(c *gin.Context, problem Problem) {
	if r.baseURI != "" && strings.HasPrefix(problem.Type, "/") {
		problem.Type = r.baseURI + problem.Type
	}
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	if problem.Status == http.StatusServiceUnavailable {
		c.Header("Retry-After", RetryAfterSeconds)
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// RespondError writes the problem of the first mapper that recognises err.
// Anything else is attached to the gin context and answered with a bare 500.
func (r *Responder) RespondError(c *gin.Context, err error) {
	for _, mapper := range r.mappers {
		if problem, ok := mapper(err); ok {
			r.Respond(c, problem)
			return
		}
	}
	_ = c.Error(err)
	r.Respond(c, ErrInternal.WithDetail("unexpected error"))
}

func (r *Responder) NotFound(c *gin.Context, resourceType string, identifier any) {
	r.Respond(c, NewNotFoundProblem(resourceType, identifier))
}

func (r *Responder) BadRequest(c *gin.Context, detail string) {
	r.Respond(c, ErrBadRequest.WithDetail(detail))
}

func (r *Responder) Unavailable(c *gin.Context, detail string) {
	r.Respond(c, ErrUnavailable.WithDetail(detail))
}

// ValidationFailed writes a 400 listing the rejected fields.
func (r *Responder) ValidationFailed(c *gin.Context, fieldErrors map[string]string) {
	r.Respond(c, NewValidationProblem(fieldErrors))
}
