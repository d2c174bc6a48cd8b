package quote

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/guttosm/quotepulse/internal/domain/models"
)

// DefaultExcludedExchanges are never averaged, whatever their data. Reduce
// skips them even when the caller passes its own exclusions.
var DefaultExcludedExchanges = []string{"paydecep2p"}

// sideTotal picks the total for one side of a record. A positive
// volume-scaled total wins over a positive unit price times volume.
func sideTotal(total, unit models.OptionalNumber, volume float64) (float64, bool) {
	if total.Positive() {
		return total.Value, true
	}
	if unit.Positive() {
		return unit.Value * volume, true
	}
	return 0, false
}

// accumulator holds the running sums of a single reduction.
type accumulator struct {
	sum   float64
	count int
}

func (a *accumulator) add(v float64) {
	a.sum += v
	a.count++
}

func (a accumulator) average() models.Amount {
	if a.count == 0 {
		return models.None()
	}
	return models.Some(a.sum / float64(a.count))
}

// parallel is the mean of buy and sell when both exist, else whichever exists.
func parallel(buy, sell models.Amount) models.Amount {
	switch {
	case buy.Valid && sell.Valid:
		return models.Some((buy.Value + sell.Value) / 2)
	case buy.Valid:
		return buy
	case sell.Valid:
		return sell
	default:
		return models.None()
	}
}

// excludeSet lowercases DefaultExcludedExchanges plus names into a lookup set.
func excludeSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(DefaultExcludedExchanges)+len(names))
	for _, n := range append(append([]string(nil), DefaultExcludedExchanges...), names...) {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Reduce folds exchange quotes, in the given order, into a QuoteSummary.
//
// Rules per exchange:
//   - skipped when its name matches DefaultExcludedExchanges or excluded
//     (case-insensitive);
//   - skipped when its record is nil (upstream value was not an object);
//   - buy side uses totalAsk > 0, else ask*volume when ask > 0;
//   - sell side uses totalBid > 0, else bid*volume when bid > 0;
//   - included iff at least one side produced a total.
//
// Averages use unrounded totals; detail lines carry totals rounded to 2
// decimals. req.Asset and req.Fiat are uppercased into the summary.
//
// log receives one debug entry per included or skipped exchange; it never
// affects the result.
func Reduce(req models.QuoteRequest, quotes []models.ExchangeQuote, excluded []string, log zerolog.Logger) *models.QuoteSummary {
	skip := excludeSet(excluded)

	var buy, sell accumulator
	names := []string{}
	details := []models.ExchangeDetail{}

	for _, q := range quotes {
		if _, ok := skip[strings.ToLower(q.Name)]; ok {
			log.Debug().Str("exchange", q.Name).Msg("exchange excluded")
			continue
		}
		if q.Record == nil {
			log.Debug().Str("exchange", q.Name).Msg("exchange record is not an object")
			continue
		}

		detail := models.ExchangeDetail{Name: q.Name, BuyTotal: models.None(), SellTotal: models.None()}

		buyTotal, hasBuy := sideTotal(q.Record.TotalAsk, q.Record.Ask, req.Volume)
		if hasBuy {
			buy.add(buyTotal)
			detail.BuyTotal = models.Some(Round2(buyTotal))
		}
		sellTotal, hasSell := sideTotal(q.Record.TotalBid, q.Record.Bid, req.Volume)
		if hasSell {
			sell.add(sellTotal)
			detail.SellTotal = models.Some(Round2(sellTotal))
		}

		if !hasBuy && !hasSell {
			log.Debug().Str("exchange", q.Name).Msg("exchange has no usable prices")
			continue
		}

		log.Debug().
			Str("exchange", q.Name).
			Str("buy_total", FormatAmount(detail.BuyTotal)).
			Str("sell_total", FormatAmount(detail.SellTotal)).
			Msg("exchange included")

		names = append(names, q.Name)
		details = append(details, detail)
	}

	avgBuy := buy.average()
	avgSell := sell.average()

	return &models.QuoteSummary{
		AverageBuyTotal:  avgBuy,
		AverageSellTotal: avgSell,
		ParallelAverage:  parallel(avgBuy, avgSell),
		ExchangeCount:    len(names),
		ExchangeNames:    names,
		ExchangeDetails:  details,
		BaseAsset:        strings.ToUpper(req.Asset),
		BaseFiat:         strings.ToUpper(req.Fiat),
		RequestedVolume:  req.Volume,
	}
}
