// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/number-classifier/config"
	"github.com/guttosm/number-classifier/internal/http"
	"github.com/guttosm/number-classifier/internal/service"
)

// App holds the wired router and the resources to release on shutdown.
type App struct {
	Router  *gin.Engine
	Results *service.ResultCache
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	facts := InitializeFactStore(cfg)
	services := InitializeServices(cfg, facts)
	routerComponents := InitializeRouter(services, facts, cfg)

	return &App{
		Router:  http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Results: services.Results,
	}
}

// Close flushes pending facts and closes the fact store.
func (a *App) Close(ctx context.Context) error {
	if a.Results == nil {
		return nil
	}
	return a.Results.Close(ctx)
}
