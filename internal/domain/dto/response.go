package dto

import (
	"net/http"
	"time"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeMethodNotAllowed indicates the route exists for another method.
	ErrCodeMethodNotAllowed = "method_not_allowed"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// InvalidNumberResponse is the 400 payload of the classify endpoint.
// Number echoes the raw query value and is omitted when the parameter is absent.
//
// @Description Invalid number response
// @Example {"number": "abc", "error": true}
type InvalidNumberResponse struct {
	Number *string `json:"number,omitempty" swaggertype:"string" example:"abc"`
	Error  bool    `json:"error" example:"true"`
} // @name InvalidNumberResponse

// NewInvalidNumber builds the 400 payload for the given request.
func NewInvalidNumber(req ClassifyRequest) InvalidNumberResponse {
	resp := InvalidNumberResponse{Error: true}
	if req.Present {
		raw := req.Raw
		resp.Number = &raw
	}
	return resp
}

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string    `json:"error" example:"internal_error"`
	Message   string    `json:"message,omitempty" example:"An unexpected error occurred"`
	RequestID string    `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusMethodNotAllowed:
		return ErrCodeMethodNotAllowed
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// CacheStatsResponse reports result cache counters.
// @Description Result cache statistics
type CacheStatsResponse struct {
	Hits           int64  `json:"hits" example:"42"`
	Misses         int64  `json:"misses" example:"7"`
	Evictions      int64  `json:"evictions" example:"0"`
	Size           int    `json:"size" example:"7"`
	Capacity       int    `json:"capacity" example:"0"`
	PersistedFacts int    `json:"persisted_facts" example:"7"`
	Persistence    string `json:"persistence" example:"file"`
} // @name CacheStatsResponse
