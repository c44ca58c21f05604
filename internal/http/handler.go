package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/number-classifier/internal/domain/dto"
	"github.com/guttosm/number-classifier/internal/logger"
	"github.com/guttosm/number-classifier/internal/metrics"
	"github.com/guttosm/number-classifier/internal/service"
)

// outcomeInvalid labels rejected classify requests in metrics.
const outcomeInvalid = "invalid"

// Handler provides HTTP handlers for classification routes.
type Handler struct {
	classifier service.Classifier
	parseMode  dto.ParseMode
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithParseMode sets how the number query parameter is parsed.
func WithParseMode(mode dto.ParseMode) HandlerOption {
	return func(h *Handler) {
		if mode == dto.ParseLenient || mode == dto.ParseStrict {
			h.parseMode = mode
		}
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(classifier service.Classifier, opts ...HandlerOption) *Handler {
	h := &Handler{
		classifier: classifier,
		parseMode:  dto.ParseLenient,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ClassifyNumber handles GET /api/classify-number requests.
//
// @Summary      Classify a number
// @Description  Returns the mathematical properties of an integer (prime, perfect, Armstrong, parity, digit sum) together with a fun fact. Results are memoized, so repeated requests return the identical payload.
// @Tags         Classification
// @Produce      json
// @Param        number query string true "Integer to classify" example(371)
// @Success      200 {object} model.Classification "Classification result"
// @Failure      400 {object} dto.InvalidNumberResponse "Missing or non-numeric number"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Router       /api/classify-number [get]
func (h *Handler) ClassifyNumber(c *gin.Context) {
	start := time.Now()

	raw, present := c.GetQuery("number")
	req := dto.ClassifyRequest{Raw: raw, Present: present}

	n, err := req.Parse(h.parseMode)
	if err != nil {
		metrics.RecordClassification(time.Since(start), outcomeInvalid)
		l := logger.FromContext(c.Request.Context(), logger.Component("http"))
		l.Debug().
			Err(err).
			Str("number", raw).
			Bool("present", present).
			Msg("rejected classify request")
		c.JSON(http.StatusBadRequest, dto.NewInvalidNumber(req))
		return
	}

	result, err := h.classifier.Classify(c.Request.Context(), n)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CacheStats handles GET /api/cache/stats requests.
//
// @Summary      Result cache statistics
// @Description  Returns hit, miss and eviction counters of the result cache and the number of persisted fun facts.
// @Tags         Classification
// @Produce      json
// @Success      200 {object} dto.CacheStatsResponse "Cache statistics"
// @Router       /api/cache/stats [get]
func (h *Handler) CacheStats(c *gin.Context) {
	stats := h.classifier.Stats()
	c.JSON(http.StatusOK, dto.CacheStatsResponse{
		Hits:           stats.Hits,
		Misses:         stats.Misses,
		Evictions:      stats.Evictions,
		Size:           stats.Size,
		Capacity:       stats.Capacity,
		PersistedFacts: stats.PersistedFacts,
		Persistence:    stats.Persistence,
	})
}

// NotFound answers unknown routes with a JSON error.
func NotFound(c *gin.Context) {
	NewResponseBuilder(c).Error(http.StatusNotFound, i18nKeyForStatus(http.StatusNotFound), nil)
}

// MethodNotAllowed answers known routes called with an unsupported method.
func MethodNotAllowed(c *gin.Context) {
	NewResponseBuilder(c).Error(http.StatusMethodNotAllowed, i18nKeyForStatus(http.StatusMethodNotAllowed), nil)
}
