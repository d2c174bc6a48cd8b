package models

import (
	"encoding/json"
)

// OptionalNumber is a numeric field of an upstream exchange record that may be
// absent or carry a non-numeric value.
//
// Only JSON numbers set Valid. Strings, booleans, null, arrays and objects are
// accepted without error and leave the field unset, so one badly typed field
// never invalidates the rest of the record.
type OptionalNumber struct {
	Value float64
	Valid bool
}

// Number returns a set OptionalNumber.
func Number(v float64) OptionalNumber {
	return OptionalNumber{Value: v, Valid: true}
}

// Positive reports whether the field is set and strictly greater than zero.
func (n OptionalNumber) Positive() bool {
	return n.Valid && n.Value > 0
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *OptionalNumber) UnmarshalJSON(b []byte) error {
	*n = OptionalNumber{}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		// out-of-range numbers (e.g. 1e400) land here; treat as unusable
		return nil
	}
	if f, ok := v.(float64); ok {
		n.Value, n.Valid = f, true
	}
	return nil
}

// ExchangeRecord is the per-exchange object returned by the CriptoYa API.
//
// Fields:
//   - Ask: unit price a buyer pays.
//   - TotalAsk: buy total already scaled to the requested volume.
//   - Bid: unit price a seller receives.
//   - TotalBid: sell total already scaled to the requested volume.
//
// Keys are matched case-sensitively ("totalAsk", not "TotalAsk"); any other
// key in the upstream object is ignored.
type ExchangeRecord struct {
	Ask      OptionalNumber
	TotalAsk OptionalNumber
	Bid      OptionalNumber
	TotalBid OptionalNumber
}

// UnmarshalJSON implements json.Unmarshaler with exact key matching.
func (r *ExchangeRecord) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	*r = ExchangeRecord{}
	for key, dst := range map[string]*OptionalNumber{
		"ask":      &r.Ask,
		"totalAsk": &r.TotalAsk,
		"bid":      &r.Bid,
		"totalBid": &r.TotalBid,
	} {
		if raw, ok := fields[key]; ok {
			_ = dst.UnmarshalJSON(raw)
		}
	}
	return nil
}

// ExchangeQuote pairs an exchange identifier with its record, in the order the
// upstream returned it. Record is nil when the upstream value was not a JSON
// object (null, array or scalar).
type ExchangeQuote struct {
	Name   string
	Record *ExchangeRecord
}
