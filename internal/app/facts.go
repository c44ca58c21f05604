// Package app provides fact store initialization.
package app

import (
	"context"

	"github.com/guttosm/number-classifier/config"
	"github.com/guttosm/number-classifier/internal/circuitbreaker"
	"github.com/guttosm/number-classifier/internal/repository"
	"github.com/rs/zerolog/log"
)

// FactStoreComponents holds the persistence backend for fun facts.
type FactStoreComponents struct {
	Store          repository.FactStore
	Persistence    string
	CircuitBreaker *circuitbreaker.CircuitBreaker
	HealthCheck    func(ctx context.Context) error
}

// InitializeFactStore creates the configured fact store. It returns nil when
// persistence is disabled or MongoDB is unreachable; the service then keeps
// facts in memory only.
func InitializeFactStore(cfg config.Config) *FactStoreComponents {
	switch cfg.Cache.Persistence {
	case config.PersistenceFile:
		log.Info().Str("path", cfg.Cache.SnapshotPath).Msg("Using fact snapshot file")
		return &FactStoreComponents{
			Store:       repository.NewFactSnapshot(cfg.Cache.SnapshotPath),
			Persistence: config.PersistenceFile,
		}

	case config.PersistenceMongo:
		db, err := repository.NewMongoDB(cfg.Database.URI, cfg.Database.DatabaseName)
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without fact persistence")
			return nil
		}
		log.Info().Str("database", cfg.Database.DatabaseName).Msg("Connected to MongoDB")

		cb := newCircuitBreaker(
			"mongodb-facts",
			cfg.Database.CircuitBreakerFailureThreshold,
			cfg.Database.CircuitBreakerSuccessThreshold,
			cfg.Database.CircuitBreakerTimeout,
		)
		return &FactStoreComponents{
			Store:          repository.NewFactStoreWithCircuitBreaker(repository.NewFactRepository(db), cb),
			Persistence:    config.PersistenceMongo,
			CircuitBreaker: cb,
			HealthCheck:    db.HealthCheck,
		}

	default:
		return nil
	}
}
