// Package quote averages exchange quotes for a crypto/fiat pair into a
// single buy, sell and parallel price.
package quote

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/quotepulse/internal/domain/models"
)

// ErrInvalidVolume is returned when the volume is not a finite number > 0.
var ErrInvalidVolume = errors.New("invalid volume: must be a positive number")

// defaultBatchLimit caps concurrent upstream calls in AverageMany.
const defaultBatchLimit = 4

// QuoteSource fetches the per-exchange quotes for a pair at a volume.
// *criptoya.Client satisfies it.
type QuoteSource interface {
	GetQuotes(ctx context.Context, asset, fiat string, volume float64) ([]models.ExchangeQuote, error)
}

// Averager turns the quotes of a QuoteSource into a QuoteSummary.
// It holds no per-call state and is safe for concurrent use.
type Averager struct {
	source     QuoteSource
	excluded   []string
	batchLimit int
	log        zerolog.Logger
}

// Option configures an Averager.
type Option func(*Averager)

// WithExcludedExchanges adds exchanges that are never averaged on top of
// DefaultExcludedExchanges. Names are compared case-insensitively.
func WithExcludedExchanges(names ...string) Option {
	return func(a *Averager) {
		a.excluded = append([]string(nil), names...)
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Averager) {
		a.log = l
	}
}

// WithBatchLimit caps how many upstream calls AverageMany runs at once.
// Values < 1 are ignored.
func WithBatchLimit(n int) Option {
	return func(a *Averager) {
		if n > 0 {
			a.batchLimit = n
		}
	}
}

// NewAverager builds an Averager reading from source.
func NewAverager(source QuoteSource, opts ...Option) *Averager {
	a := &Averager{
		source:     source,
		batchLimit: defaultBatchLimit,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ValidVolume reports whether v can be used as a trade volume.
func ValidVolume(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Average fetches the quotes for asset/fiat at volume and reduces them.
//
// An invalid volume fails with ErrInvalidVolume before any network call.
// Upstream failures are returned as produced by the source.
func (a *Averager) Average(ctx context.Context, asset, fiat string, volume float64) (*models.QuoteSummary, error) {
	if !ValidVolume(volume) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidVolume, volume)
	}

	req := models.QuoteRequest{
		Asset:  strings.ToUpper(asset),
		Fiat:   strings.ToUpper(fiat),
		Volume: volume,
	}
	log := a.log.With().
		Str("asset", req.Asset).
		Str("fiat", req.Fiat).
		Str("volume", FormatVolume(volume)).
		Logger()

	log.Debug().Msg("fetching exchange quotes")

	quotes, err := a.source.GetQuotes(ctx, req.Asset, req.Fiat, req.Volume)
	if err != nil {
		return nil, err
	}

	summary := Reduce(req, quotes, a.excluded, log)

	log.Info().
		Int("exchange_count", summary.ExchangeCount).
		Str("average_buy_total", FormatAmount(summary.AverageBuyTotal)).
		Str("average_sell_total", FormatAmount(summary.AverageSellTotal)).
		Str("parallel_average", FormatAmount(summary.ParallelAverage)).
		Msg("quotes averaged")

	return summary, nil
}

// AverageQuotes is Average with a soft failure contract: any error is logged
// and turned into a nil summary.
func (a *Averager) AverageQuotes(ctx context.Context, asset, fiat string, volume float64) *models.QuoteSummary {
	summary, err := a.Average(ctx, asset, fiat, volume)
	if err != nil {
		a.log.Error().
			Err(err).
			Str("asset", strings.ToUpper(asset)).
			Str("fiat", strings.ToUpper(fiat)).
			Float64("volume", volume).
			Msg("failed to average quotes")
		return nil
	}
	return summary
}

// AverageMany runs Average once per volume, concurrently. Results keep the
// order of volumes; a failure for one volume never cancels the others.
func (a *Averager) AverageMany(ctx context.Context, asset, fiat string, volumes []float64) []models.BatchResult {
	results := make([]models.BatchResult, len(volumes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.batchLimit)

	for i, v := range volumes {
		g.Go(func() error {
			summary, err := a.Average(gctx, asset, fiat, v)
			results[i] = models.BatchResult{Volume: v, Summary: summary, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
