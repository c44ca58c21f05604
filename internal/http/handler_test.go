//go:build !integration

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/number-classifier/internal/domain/dto"
	"github.com/guttosm/number-classifier/internal/domain/model"
	"github.com/guttosm/number-classifier/internal/mocks"
	"github.com/guttosm/number-classifier/internal/service"
	"github.com/guttosm/number-classifier/internal/service/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouterWithMock(opts ...HandlerOption) (*gin.Engine, *mocks.MockClassifier) {
	mockClassifier := new(mocks.MockClassifier)
	handler := NewHandler(mockClassifier, opts...)
	return NewRouter(handler, NewHealthHandler(), DefaultRouterConfig()), mockClassifier
}

func TestClassifyNumber_Success(t *testing.T) {
	router, mockClassifier := setupRouterWithMock()
	expected := model.Classification{
		Number:     371,
		IsPrime:    false,
		IsPerfect:  false,
		Properties: []string{"armstrong", "odd"},
		DigitSum:   11,
		FunFact:    "371 is an Armstrong number because 3^3 + 7^3 + 1^3 = 371",
	}
	mockClassifier.On("Classify", mock.Anything, 371).Return(expected, nil).Once()

	w := doGet(router, "/api/classify-number?number=371")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{
		"number": 371,
		"is_prime": false,
		"is_perfect": false,
		"properties": ["armstrong", "odd"],
		"digit_sum": 11,
		"fun_fact": "371 is an Armstrong number because 3^3 + 7^3 + 1^3 = 371"
	}`, w.Body.String())
	mockClassifier.AssertExpectations(t)
}

func TestClassifyNumber_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		mode     dto.ParseMode
		expected string
	}{
		{
			name:     "missing parameter omits number",
			target:   "/api/classify-number",
			expected: `{"error": true}`,
		},
		{
			name:     "empty parameter",
			target:   "/api/classify-number?number=",
			expected: `{"number": "", "error": true}`,
		},
		{
			name:     "alphabetic",
			target:   "/api/classify-number?number=abc",
			expected: `{"number": "abc", "error": true}`,
		},
		{
			name:     "trailing garbage",
			target:   "/api/classify-number?number=42abc",
			expected: `{"number": "42abc", "error": true}`,
		},
		{
			name:     "no integer prefix",
			target:   "/api/classify-number?number=.5",
			expected: `{"number": ".5", "error": true}`,
		},
		{
			name:     "hexadecimal float",
			target:   "/api/classify-number?number=0x1p4",
			expected: `{"number": "0x1p4", "error": true}`,
		},
		{
			name:     "decimal rejected in strict mode",
			target:   "/api/classify-number?number=10.9",
			mode:     dto.ParseStrict,
			expected: `{"number": "10.9", "error": true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []HandlerOption
			if tt.mode != "" {
				opts = append(opts, WithParseMode(tt.mode))
			}
			router, mockClassifier := setupRouterWithMock(opts...)

			w := doGet(router, tt.target)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, tt.expected, w.Body.String())
			mockClassifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
		})
	}
}

func TestClassifyNumber_LenientParsing(t *testing.T) {
	tests := []struct {
		target string
		want   int
	}{
		{"/api/classify-number?number=10.9", 10},
		{"/api/classify-number?number=-7", -7},
		{"/api/classify-number?number=%2B8", 8},
		{"/api/classify-number?number=1e3", 1},
		{"/api/classify-number?number=%2012%20", 12},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			router, mockClassifier := setupRouterWithMock()
			mockClassifier.On("Classify", mock.Anything, tt.want).
				Return(service.Analyze(tt.want), nil).Once()

			w := doGet(router, tt.target)

			assert.Equal(t, http.StatusOK, w.Code)
			mockClassifier.AssertExpectations(t)
		})
	}
}

func TestClassifyNumber_ClassifierError(t *testing.T) {
	router, mockClassifier := setupRouterWithMock()
	mockClassifier.On("Classify", mock.Anything, 5).
		Return(model.Classification{}, errors.New("boom")).Once()

	w := doGet(router, "/api/classify-number?number=5")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInternal, resp.Error)
	assert.NotEmpty(t, resp.RequestID)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestClassifyNumber_PanicIsRecovered(t *testing.T) {
	router, mockClassifier := setupRouterWithMock()
	mockClassifier.On("Classify", mock.Anything, 5).
		Run(func(mock.Arguments) { panic("unexpected") }).
		Return(model.Classification{}, nil)

	w := doGet(router, "/api/classify-number?number=5")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrCodeInternal)
}

func TestClassifyNumber_DeadlineExceeded(t *testing.T) {
	router, mockClassifier := setupRouterWithMock()
	mockClassifier.On("Classify", mock.Anything, 5).
		Return(model.Classification{}, context.DeadlineExceeded).Once()

	w := doGet(router, "/api/classify-number?number=5")

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrCodeTimeout)
}

func TestCacheStats(t *testing.T) {
	router, mockClassifier := setupRouterWithMock()
	mockClassifier.On("Stats").Return(service.CacheStats{
		Metrics:        cache.Metrics{Hits: 3, Misses: 2, Evictions: 1, Size: 2, Capacity: 10},
		PersistedFacts: 2,
		Persistence:    "file",
	}).Once()

	w := doGet(router, "/api/cache/stats")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"hits": 3,
		"misses": 2,
		"evictions": 1,
		"size": 2,
		"capacity": 10,
		"persisted_facts": 2,
		"persistence": "file"
	}`, w.Body.String())
}

func TestWithParseMode_IgnoresUnknownModes(t *testing.T) {
	h := NewHandler(nil, WithParseMode("loose"))

	assert.Equal(t, dto.ParseLenient, h.parseMode)
}
