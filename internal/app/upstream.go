package app

import (
	"fmt"

	"github.com/guttosm/quotepulse/config"
	"github.com/guttosm/quotepulse/internal/criptoya"
	"github.com/guttosm/quotepulse/internal/logger"
	"github.com/guttosm/quotepulse/internal/quote"
)

// InitCriptoYa builds the upstream client from cfg.CriptoYa.
//
// The client carries no timeout of its own; callers bound each call with
// their context.
//
// Example usage:
//
//	client, err := app.InitCriptoYa(config.AppConfig)
//	if err != nil {
//	    log.Fatalf("invalid upstream config: %v", err)
//	}
//	defer client.CloseIdleConnections()
func InitCriptoYa(cfg config.Config) (*criptoya.Client, error) {
	opts := []criptoya.ClientOption{
		criptoya.WithBaseURL(cfg.CriptoYa.BaseURL),
		criptoya.WithLogger(logger.Component("criptoya")),
	}
	if cfg.CriptoYa.UserAgent != "" {
		opts = append(opts, criptoya.WithUserAgent(cfg.CriptoYa.UserAgent))
	}

	client, err := criptoya.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize criptoya client: %w", err)
	}
	return client, nil
}

// NewAverager wires an Averager over source using the quote settings in cfg.
func NewAverager(cfg config.Config, source quote.QuoteSource) *quote.Averager {
	return quote.NewAverager(source,
		quote.WithExcludedExchanges(cfg.Quote.ExcludedExchanges...),
		quote.WithLogger(logger.Component("quote")),
	)
}

// upstreamOpener is an indirection used by InitializeApp; overridden in tests.
var upstreamOpener = InitCriptoYa
