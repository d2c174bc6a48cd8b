package service

import (
	"context"
	"strings"

	"github.com/guttosm/quotepulse/internal/domain/models"
)

// Averager is the part of quote.Averager the service depends on.
type Averager interface {
	Average(ctx context.Context, asset, fiat string, volume float64) (*models.QuoteSummary, error)
	AverageMany(ctx context.Context, asset, fiat string, volumes []float64) []models.BatchResult
}

// QuoteService defines business logic for averaged exchange quotes.
type QuoteService interface {
	GetQuote(ctx context.Context, req models.QuoteRequest) (*models.QuoteSummary, error)
	GetQuotes(ctx context.Context, asset, fiat string, volumes []float64) []models.BatchResult
	Defaults() models.QuoteRequest
}

type quoteService struct {
	avg      Averager
	defaults models.QuoteRequest
}

// NewQuoteService wraps avg. Empty asset or fiat in a request fall back to
// the ones in defaults.
func NewQuoteService(avg Averager, defaults models.QuoteRequest) QuoteService {
	defaults.Asset = strings.ToUpper(defaults.Asset)
	defaults.Fiat = strings.ToUpper(defaults.Fiat)
	return &quoteService{avg: avg, defaults: defaults}
}

func (s *quoteService) GetQuote(ctx context.Context, req models.QuoteRequest) (*models.QuoteSummary, error) {
	asset, fiat := s.pair(req.Asset, req.Fiat)
	return s.avg.Average(ctx, asset, fiat, req.Volume)
}

func (s *quoteService) GetQuotes(ctx context.Context, asset, fiat string, volumes []float64) []models.BatchResult {
	asset, fiat = s.pair(asset, fiat)
	return s.avg.AverageMany(ctx, asset, fiat, volumes)
}

func (s *quoteService) Defaults() models.QuoteRequest {
	return s.defaults
}

func (s *quoteService) pair(asset, fiat string) (string, string) {
	asset = strings.TrimSpace(asset)
	fiat = strings.TrimSpace(fiat)
	if asset == "" {
		asset = s.defaults.Asset
	}
	if fiat == "" {
		fiat = s.defaults.Fiat
	}
	return asset, fiat
}
