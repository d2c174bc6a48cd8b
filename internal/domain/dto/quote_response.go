package dto

import "github.com/guttosm/quotepulse/internal/domain/models"

// QuoteResponse represents the JSON structure returned by the
// GET /api/v1/quotes endpoint.
//
// Fields match the API contract and may differ from internal domain models.
// Prices are numbers, or the string "N/A" when no exchange supplied that side.
type QuoteResponse struct {
	Asset            string                   `json:"asset" example:"USDT"`
	Fiat             string                   `json:"fiat" example:"ARS"`
	Volume           float64                  `json:"volume" example:"100"`
	AverageBuyTotal  models.Amount            `json:"average_buy_total" swaggertype:"primitive,string" example:"125040.5"`
	AverageSellTotal models.Amount            `json:"average_sell_total" swaggertype:"primitive,string" example:"119075"`
	ParallelAverage  models.Amount            `json:"parallel_average" swaggertype:"primitive,string" example:"122057.75"`
	ExchangeCount    int                      `json:"exchange_count" example:"2"`
	Exchanges        []string                 `json:"exchanges"`
	Details          []ExchangeDetailResponse `json:"details"`
}

// ExchangeDetailResponse is one exchange line of a QuoteResponse.
type ExchangeDetailResponse struct {
	Name      string        `json:"name" example:"lemoncash"`
	BuyTotal  models.Amount `json:"buy_total" swaggertype:"primitive,string" example:"125100.25"`
	SellTotal models.Amount `json:"sell_total" swaggertype:"primitive,string" example:"N/A"`
}

// BatchQuoteResponse is returned by GET /api/v1/quotes/batch.
// Results keep the order of the requested volumes.
type BatchQuoteResponse struct {
	Asset   string           `json:"asset" example:"USDT"`
	Fiat    string           `json:"fiat" example:"ARS"`
	Results []BatchQuoteItem `json:"results"`
}

// BatchQuoteItem carries either a quote or the error text for one volume.
type BatchQuoteItem struct {
	Volume float64        `json:"volume" example:"10"`
	Quote  *QuoteResponse `json:"quote,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// NewQuoteResponse maps a domain summary to its API representation.
func NewQuoteResponse(s *models.QuoteSummary) QuoteResponse {
	details := make([]ExchangeDetailResponse, 0, len(s.ExchangeDetails))
	for _, d := range s.ExchangeDetails {
		details = append(details, ExchangeDetailResponse{
			Name:      d.Name,
			BuyTotal:  d.BuyTotal,
			SellTotal: d.SellTotal,
		})
	}
	names := s.ExchangeNames
	if names == nil {
		names = []string{}
	}
	return QuoteResponse{
		Asset:            s.BaseAsset,
		Fiat:             s.BaseFiat,
		Volume:           s.RequestedVolume,
		AverageBuyTotal:  s.AverageBuyTotal,
		AverageSellTotal: s.AverageSellTotal,
		ParallelAverage:  s.ParallelAverage,
		ExchangeCount:    s.ExchangeCount,
		Exchanges:        names,
		Details:          details,
	}
}
