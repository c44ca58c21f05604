// Package main is the entry point for the number-classifier application.
//
// @title           Number Classifier API
// @version         1.0.0
// @description     Classifies integers by their mathematical properties and adds a fun fact.
//
//	Reports primality, perfection, Armstrong-ness, parity and digit sum of a number.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/number-classifier
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Classification
// @tag.description Number classification operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/number-classifier/docs" // swagger docs

	"github.com/guttosm/number-classifier/config"
	"github.com/guttosm/number-classifier/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port)
	server.OnShutdown(application.Close)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
