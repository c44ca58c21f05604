// Package factprovider fetches textual fun facts about numbers from a remote API.
package factprovider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/number-classifier/internal/circuitbreaker"
	"github.com/guttosm/number-classifier/internal/logger"
	"github.com/guttosm/number-classifier/internal/metrics"
	"github.com/rs/zerolog"
)

// Fallback is returned whenever a fact cannot be fetched.
const Fallback = "Fun fact unavailable"

const (
	// DefaultBaseURL is the public numbers API.
	DefaultBaseURL = "http://numbersapi.com"
	// DefaultTimeout bounds one fetch.
	DefaultTimeout = 2 * time.Second

	maxBodyBytes = 64 << 10
)

// Fetch results used as metric labels.
const (
	ResultOK          = "ok"
	ResultError       = "error"
	ResultTimeout     = "timeout"
	ResultCircuitOpen = "circuit_open"
)

var (
	errUnexpectedStatus = errors.New("unexpected status")
	errEmptyBody        = errors.New("empty body")
)

// Provider returns a fun fact for n. It never fails: on any problem it
// returns Fallback.
type Provider interface {
	Fact(ctx context.Context, n int) string
}

// HTTPProvider fetches facts from {baseURL}/{n}/math.
type HTTPProvider struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
	log     zerolog.Logger
}

// Option configures an HTTPProvider.
type Option func(*HTTPProvider)

// WithTimeout sets the per-fetch timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(p *HTTPProvider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(p *HTTPProvider) {
		if c != nil {
			p.client = c
		}
	}
}

// WithCircuitBreaker guards fetches with cb. While it is open no request is made.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(p *HTTPProvider) {
		p.breaker = cb
	}
}

// NewHTTPProvider creates a provider for baseURL. An empty baseURL uses DefaultBaseURL.
func NewHTTPProvider(baseURL string, opts ...Option) *HTTPProvider {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	p := &HTTPProvider{
		baseURL: baseURL,
		timeout: DefaultTimeout,
		client:  &http.Client{},
		log:     logger.Component("factprovider"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CircuitBreaker returns the breaker guarding fetches, or nil.
func (p *HTTPProvider) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return p.breaker
}

// Fact implements Provider.
func (p *HTTPProvider) Fact(ctx context.Context, n int) string {
	start := time.Now()

	var fact string
	fetch := func() error {
		var err error
		fact, err = p.fetch(ctx, n)
		return err
	}

	var err error
	if p.breaker != nil {
		err = p.breaker.Execute(ctx, fetch)
	} else {
		err = fetch()
	}

	result := classifyResult(err)
	metrics.RecordFactFetch(time.Since(start), result)
	if err != nil {
		l := logger.FromContext(ctx, p.log)
		l.Warn().
			Err(err).
			Int("number", n).
			Str("result", result).
			Dur("elapsed", time.Since(start)).
			Msg("fun fact unavailable, using fallback")
		return Fallback
	}
	return fact
}

func (p *HTTPProvider) fetch(ctx context.Context, n int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	url := p.baseURL + "/" + strconv.Itoa(n) + "/math"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return "", fmt.Errorf("%w: %d from %s", errUnexpectedStatus, resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	fact := strings.TrimSpace(string(body))
	if fact == "" {
		return "", errEmptyBody
	}
	return fact, nil
}

func classifyResult(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return ResultCircuitOpen
	case errors.Is(err, context.DeadlineExceeded):
		return ResultTimeout
	default:
		return ResultError
	}
}
