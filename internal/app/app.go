package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotepulse/config"
	"github.com/guttosm/quotepulse/internal/api"
	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the CriptoYa client from config.AppConfig.
//   - Wires the averager and the quote service.
//   - Creates the HTTP handler and router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function that drops idle upstream connections.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	client, err := upstreamOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize upstream: %w", err)
	}

	avg := NewAverager(cfg, client)

	svc := service.NewQuoteService(avg, models.QuoteRequest{
		Asset:  cfg.Quote.DefaultAsset,
		Fiat:   cfg.Quote.DefaultFiat,
		Volume: cfg.Quote.DefaultVolume,
	})

	handler := api.NewHandler(svc)

	router := api.NewRouter(handler, cfg.Server.RequestTimeout)

	healthHandler := api.NewHealthHandler(func() error {
		if client.BaseURL() == "" {
			return errors.New("upstream base url not configured")
		}
		return nil
	})
	healthHandler.Register(router)

	cleanup := func() {
		client.CloseIdleConnections()
	}

	return router, cleanup, nil
}
