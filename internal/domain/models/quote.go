package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// NotAvailable is the sentinel shown in place of a price that could not be computed.
const NotAvailable = "N/A"

// Amount is a price that is either a number or NotAvailable.
//
// It encodes to JSON as a plain number when Valid, and as the string "N/A"
// otherwise. Non-finite values (an overflowing ask*volume) encode as null.
//
// swagger:model Amount
type Amount struct {
	Value float64
	Valid bool
}

// Some returns a valid Amount.
func Some(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

// None returns an Amount holding the NotAvailable sentinel.
func None() Amount {
	return Amount{}
}

// String renders the amount with the minimal number of digits, or "N/A".
func (a Amount) String() string {
	if !a.Valid {
		return NotAvailable
	}
	return strconv.FormatFloat(a.Value, 'f', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return json.Marshal(NotAvailable)
	}
	if math.IsInf(a.Value, 0) || math.IsNaN(a.Value) {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a number or "N/A".
func (a *Amount) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		*a = Some(t)
	case string:
		if t != NotAvailable {
			return fmt.Errorf("amount: unexpected string %q", t)
		}
		*a = None()
	case nil:
		*a = None()
	default:
		return fmt.Errorf("amount: unexpected JSON value %s", string(b))
	}
	return nil
}

// QuoteRequest identifies one averaging run.
//
// Asset and Fiat are free-form currency codes (e.g. "USDT", "ARS"); they are
// uppercased before use. Volume is the quantity of Asset being priced.
type QuoteRequest struct {
	Asset  string  `json:"asset" example:"USDT"`
	Fiat   string  `json:"fiat" example:"ARS"`
	Volume float64 `json:"volume" example:"100"`
}

// ExchangeDetail is the per-exchange line shown next to the averages.
// Totals are rounded to 2 decimals.
type ExchangeDetail struct {
	Name      string `json:"name" example:"binancep2p"`
	BuyTotal  Amount `json:"buy_total" swaggertype:"primitive,string" example:"1234.56"`
	SellTotal Amount `json:"sell_total" swaggertype:"primitive,string" example:"N/A"`
}

// QuoteSummary is the result of averaging all exchange quotes for a request.
//
// Invariant: ExchangeCount == len(ExchangeNames) == len(ExchangeDetails).
//
// swagger:model QuoteSummary
type QuoteSummary struct {
	AverageBuyTotal  Amount           `json:"average_buy_total" swaggertype:"primitive,string" example:"1250.4"`
	AverageSellTotal Amount           `json:"average_sell_total" swaggertype:"primitive,string" example:"1190.75"`
	ParallelAverage  Amount           `json:"parallel_average" swaggertype:"primitive,string" example:"1220.575"`
	ExchangeCount    int              `json:"exchange_count" example:"2"`
	ExchangeNames    []string         `json:"exchange_names"`
	ExchangeDetails  []ExchangeDetail `json:"exchange_details"`
	BaseAsset        string           `json:"base_asset" example:"USDT"`
	BaseFiat         string           `json:"base_fiat" example:"ARS"`
	RequestedVolume  float64          `json:"requested_volume" example:"1"`
}

// BatchResult is one entry of a multi-volume run. Exactly one of Summary and
// Err is set.
type BatchResult struct {
	Volume  float64
	Summary *QuoteSummary
	Err     error
}
