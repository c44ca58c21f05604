package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/number-classifier/internal/domain/dto"
	"github.com/guttosm/number-classifier/internal/i18n"
	"github.com/guttosm/number-classifier/internal/middleware"
)

var errorResponsePool = sync.Pool{
	New: func() interface{} {
		return &dto.ErrorResponse{}
	},
}

// getErrorResponse retrieves an ErrorResponse from the pool.
func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

// putErrorResponse returns an ErrorResponse to the pool.
func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// ResponseBuilder writes localized error responses.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Error sends an error response with the given status code and message key.
// err, when set, is attached to the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.ErrorWithMessage(statusCode, message, err)
}

// ErrorWithMessage sends an error response with a custom message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	resp := getErrorResponse()
	defer putErrorResponse(resp)

	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}

	// gin serializes synchronously, so resp can go back to the pool afterwards
	b.c.AbortWithStatusJSON(statusCode, resp)
}

// i18nKeyForStatus returns the message key for an HTTP error status.
func i18nKeyForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return i18n.ErrKeyInvalidRequest
	case http.StatusNotFound:
		return i18n.ErrKeyNotFound
	case http.StatusMethodNotAllowed:
		return i18n.ErrKeyMethodNotAllowed
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return i18n.ErrKeyTimeout
	default:
		return i18n.ErrKeyInternalError
	}
}
