package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authdomain "github.com/Developer-Sahil/portfolio-system/internal/auth/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/logging"
)

const (
	KindNotFound     = "not_found"
	KindUnauthorized = "unauthorized"
	KindValidation   = "validation_error"
	KindConflict     = "conflict"
	KindRateLimited  = "rate_limited"
	KindInternal     = "internal"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Kind   string `json:"kind"`
}

// Error maps a service error to its status code and writes it. Anything
// unrecognised is logged and reported as a generic 500.
func Error(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, authdomain.ErrUnauthorized):
		Unauthorized(c)
	case errors.As(err, &ve):
		abort(c, http.StatusBadRequest, KindValidation, ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		abort(c, http.StatusNotFound, KindNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		abort(c, http.StatusConflict, KindConflict, err.Error())
	default:
		logging.NewLogger(c.Request.Context()).LogError("http.error", err,
			zap.String("method", c.Request.Method), zap.String("route", c.FullPath()))
		abort(c, http.StatusInternalServerError, KindInternal, "internal server error")
	}
}

// Unauthorized answers 401 with a bearer challenge.
func Unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", `Bearer realm="portfolio"`)
	abort(c, http.StatusUnauthorized, KindUnauthorized, "Invalid or missing authentication token")
}

// BadRequest reports a malformed request body or parameter.
func BadRequest(c *gin.Context, detail string) {
	abort(c, http.StatusBadRequest, KindValidation, detail)
}

func TooManyRequests(c *gin.Context) {
	abort(c, http.StatusTooManyRequests, KindRateLimited, "Too many requests, slow down")
}

func abort(c *gin.Context, status int, kind, detail string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail, Kind: kind})
}
