//go:build !integration

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/number-classifier/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		statusCode int
		expected   zerolog.Level
	}{
		{200, zerolog.InfoLevel},
		{304, zerolog.InfoLevel},
		{400, zerolog.WarnLevel},
		{404, zerolog.WarnLevel},
		{500, zerolog.ErrorLevel},
		{504, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.statusCode), func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.statusCode))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		path          string
		query         string
		statusCode    int
		logLevel      string
		expectedLevel string
		expectEntry   bool
	}{
		{
			name:          "successful request logs info",
			path:          "/api/classify-number",
			query:         "number=371",
			statusCode:    http.StatusOK,
			logLevel:      "info",
			expectedLevel: "info",
			expectEntry:   true,
		},
		{
			name:          "client error logs warn",
			path:          "/api/classify-number",
			query:         "number=abc",
			statusCode:    http.StatusBadRequest,
			logLevel:      "info",
			expectedLevel: "warn",
			expectEntry:   true,
		},
		{
			name:          "server error logs error",
			path:          "/api/classify-number",
			statusCode:    http.StatusInternalServerError,
			logLevel:      "info",
			expectedLevel: "error",
			expectEntry:   true,
		},
		{
			name:        "quiet path is hidden at info",
			path:        "/healthz",
			statusCode:  http.StatusOK,
			logLevel:    "info",
			expectEntry: false,
		},
		{
			name:          "quiet path is visible at debug",
			path:          "/healthz",
			statusCode:    http.StatusOK,
			logLevel:      "debug",
			expectedLevel: "debug",
			expectEntry:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitWithWriter(tt.logLevel, false, &buf)
			t.Cleanup(func() { logger.Init("info", false) })

			router := gin.New()
			router.Use(RequestID(), RequestLogger("/healthz", "/metrics"))
			router.GET(tt.path, func(c *gin.Context) {
				c.Status(tt.statusCode)
			})

			target := tt.path
			if tt.query != "" {
				target += "?" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			req.Header.Set(RequestIDHeader, "req-123")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.statusCode, w.Code)
			out := strings.TrimSpace(buf.String())
			if !tt.expectEntry {
				assert.Empty(t, out)
				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &entry))
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "HTTP request", entry["message"])
			assert.Equal(t, "req-123", entry["request_id"])
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, tt.query, entry["query"])
			assert.Equal(t, float64(tt.statusCode), entry["status_code"])
		})
	}
}
