package quote

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/guttosm/quotepulse/internal/domain/models"
)

// Round2 rounds v to 2 decimal places (half away from zero on the shortest
// decimal form of v). Infinities pass through unchanged.
func Round2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FormatAmount renders an Amount with exactly 2 decimals, or "N/A".
func FormatAmount(a models.Amount) string {
	if !a.Valid {
		return models.NotAvailable
	}
	if math.IsInf(a.Value, 0) || math.IsNaN(a.Value) {
		return strconv.FormatFloat(a.Value, 'f', -1, 64)
	}
	return decimal.NewFromFloat(a.Value).StringFixed(2)
}

// FormatVolume renders a volume the way it appears in request URLs.
func FormatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
