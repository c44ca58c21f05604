// Package i18n provides internationalization support for the number classifier.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a route was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyMethodNotAllowed indicates the route exists for another method.
	ErrKeyMethodNotAllowed = "error.method_not_allowed"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)
