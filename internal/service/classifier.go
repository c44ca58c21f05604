package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/guttosm/number-classifier/internal/domain/model"
	"github.com/guttosm/number-classifier/internal/factprovider"
	"github.com/guttosm/number-classifier/internal/logger"
	"github.com/guttosm/number-classifier/internal/metrics"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Classification outcomes used as metric labels.
const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)

// ErrClassificationFailed is returned when computing a classification panics.
var ErrClassificationFailed = errors.New("classification failed")

// Classifier defines the interface for number classification.
type Classifier interface {
	Classify(ctx context.Context, n int) (model.Classification, error)
	Stats() CacheStats
}

// Option configures a ClassifierService.
type Option func(*ClassifierService)

// ClassifierService computes number properties and a fun fact concurrently
// and memoizes the merged result.
type ClassifierService struct {
	results *ResultCache
	facts   factprovider.Provider
	flight  singleflight.Group
	log     zerolog.Logger
}

// NewClassifierService creates a ClassifierService. Without options it uses an
// unbounded in-memory cache and the public numbers API.
func NewClassifierService(opts ...Option) *ClassifierService {
	s := &ClassifierService{
		log: logger.Component("classifier"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.results == nil {
		s.results = NewResultCache(nil, nil, "")
	}
	if s.facts == nil {
		s.facts = factprovider.NewHTTPProvider(factprovider.DefaultBaseURL)
	}
	return s
}

// WithResultCache sets the result cache.
func WithResultCache(c *ResultCache) Option {
	return func(s *ClassifierService) {
		s.results = c
	}
}

// WithFactProvider sets the fun fact source.
func WithFactProvider(p factprovider.Provider) Option {
	return func(s *ClassifierService) {
		s.facts = p
	}
}

// Classify returns the classification of n. A memoized result is returned
// as is; otherwise properties and the fun fact are computed concurrently.
// Concurrent misses for the same n share one computation.
func (s *ClassifierService) Classify(ctx context.Context, n int) (model.Classification, error) {
	start := time.Now()

	if result, ok := s.results.Get(n); ok {
		metrics.RecordClassification(time.Since(start), OutcomeHit)
		return result, nil
	}

	// the shared computation must outlive any single caller
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.flight.Do(strconv.Itoa(n), func() (any, error) {
		// a flight that just finished may have stored n; the miss is already counted
		if result, ok := s.results.Peek(n); ok {
			return result, nil
		}
		return s.compute(shared, n)
	})
	if err != nil {
		metrics.RecordClassification(time.Since(start), OutcomeError)
		return model.Classification{}, err
	}

	result, _ := v.(model.Classification)
	metrics.RecordClassification(time.Since(start), OutcomeMiss)
	return result.Clone(), nil
}

// Stats returns result cache counters.
func (s *ClassifierService) Stats() CacheStats {
	return s.results.Stats()
}

func (s *ClassifierService) compute(ctx context.Context, n int) (model.Classification, error) {
	var (
		result model.Classification
		fact   string
		g      errgroup.Group
	)

	g.Go(guard(func() {
		result = Analyze(n)
	}))
	g.Go(guard(func() {
		if cached, ok := s.results.Fact(n); ok {
			fact = cached
			return
		}
		fact = s.facts.Fact(ctx, n)
	}))

	if err := g.Wait(); err != nil {
		l := logger.FromContext(ctx, s.log)
		l.Error().Err(err).Int("number", n).Msg("classification failed")
		return model.Classification{}, err
	}

	result.FunFact = fact
	s.results.Put(ctx, result)
	return result, nil
}

// guard turns a panic in fn into ErrClassificationFailed.
func guard(fn func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrClassificationFailed, r)
			}
		}()
		fn()
		return nil
	}
}
