// Package app provides service initialization.
package app

import (
	"context"
	"time"

	"github.com/guttosm/number-classifier/config"
	"github.com/guttosm/number-classifier/internal/circuitbreaker"
	"github.com/guttosm/number-classifier/internal/factprovider"
	"github.com/guttosm/number-classifier/internal/repository"
	"github.com/guttosm/number-classifier/internal/service"
	"github.com/guttosm/number-classifier/internal/service/cache"
)

// factLoadTimeout bounds reading persisted facts at startup.
const factLoadTimeout = 10 * time.Second

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Classifier   service.Classifier
	Results      *service.ResultCache
	FactsBreaker *circuitbreaker.CircuitBreaker
}

// InitializeServices initializes the result cache, the fact provider and the classifier.
func InitializeServices(cfg config.Config, facts *FactStoreComponents) *ServiceComponents {
	var (
		store       repository.FactStore
		persistence string
	)
	if facts != nil {
		store = facts.Store
		persistence = facts.Persistence
	}

	results := service.NewResultCache(
		cache.New(cfg.Cache.Size, cfg.Cache.TTL, cfg.Cache.Shards),
		store,
		persistence,
	)
	ctx, cancel := context.WithTimeout(context.Background(), factLoadTimeout)
	// a failed load is logged by the cache and the service starts empty
	_ = results.Load(ctx)
	cancel()

	providerOpts := []factprovider.Option{factprovider.WithTimeout(cfg.Facts.Timeout)}
	var factsBreaker *circuitbreaker.CircuitBreaker
	if cfg.Facts.BreakerEnabled {
		factsBreaker = newCircuitBreaker(
			"facts-api",
			cfg.Facts.CircuitBreakerFailureThreshold,
			cfg.Facts.CircuitBreakerSuccessThreshold,
			cfg.Facts.CircuitBreakerTimeout,
		)
		providerOpts = append(providerOpts, factprovider.WithCircuitBreaker(factsBreaker))
	}
	provider := factprovider.NewHTTPProvider(cfg.Facts.BaseURL, providerOpts...)

	classifier := service.NewClassifierService(
		service.WithResultCache(results),
		service.WithFactProvider(provider),
	)

	return &ServiceComponents{
		Classifier:   classifier,
		Results:      results,
		FactsBreaker: factsBreaker,
	}
}
