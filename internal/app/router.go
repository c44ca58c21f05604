// Package app provides router configuration.
package app

import (
	"github.com/guttosm/number-classifier/config"
	"github.com/guttosm/number-classifier/internal/domain/dto"
	"github.com/guttosm/number-classifier/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, facts *FactStoreComponents, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(
		services.Classifier,
		http.WithParseMode(dto.ParseMode(cfg.Classify.ParseMode)),
	)

	healthHandler := http.NewHealthHandler()
	if services.FactsBreaker != nil {
		healthHandler.RegisterCircuitBreaker("facts_api", services.FactsBreaker, false)
	}
	if facts != nil {
		if facts.HealthCheck != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(facts.HealthCheck))
		}
		if facts.CircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_facts", facts.CircuitBreaker, true)
		}
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config: http.RouterConfig{
			CORSOrigins:    cfg.Server.CORSOrigins,
			RequestTimeout: cfg.Server.RequestTimeout,
			SwaggerUser:    cfg.Server.SwaggerUser,
			SwaggerPass:    cfg.Server.SwaggerPass,
		},
	}
}
