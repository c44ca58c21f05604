package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/number-classifier/internal/domain/dto"
	"github.com/guttosm/number-classifier/internal/i18n"
	"github.com/guttosm/number-classifier/internal/logger"
)

// ErrorHandler returns a middleware that handles gin context errors.
// Errors left unanswered by a handler become a 500, or a 504 when the
// request deadline passed.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)
		locale := i18n.GetLocale(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		status, code, key := http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError
		if errors.Is(err.Err, context.DeadlineExceeded) {
			status, code, key = http.StatusGatewayTimeout, dto.ErrCodeTimeout, i18n.ErrKeyTimeout
		}

		message := i18n.GetTranslator().Translate(key, locale)
		c.JSON(status, dto.NewError(code, message).WithRequestID(requestID))
	}
}
