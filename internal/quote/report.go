package quote

import (
	"fmt"
	"strings"

	"github.com/guttosm/quotepulse/internal/domain/models"
)

// Report renders a summary as the plain-text block printed by the CLI.
func Report(s *models.QuoteSummary) string {
	if s == nil {
		return "No result.\n"
	}

	var b strings.Builder
	vol := FormatVolume(s.RequestedVolume)

	fmt.Fprintf(&b, "--- Exchanges for %s/%s (volume %s) ---\n", s.BaseAsset, s.BaseFiat, vol)
	for _, d := range s.ExchangeDetails {
		fmt.Fprintf(&b, "  %-20s buy: %s  sell: %s\n", d.Name, FormatAmount(d.BuyTotal), FormatAmount(d.SellTotal))
	}

	fmt.Fprintf(&b, "\n--- Averages for %s/%s for %s %s ---\n", s.BaseAsset, s.BaseFiat, vol, s.BaseAsset)
	if s.ExchangeCount > 0 {
		fmt.Fprintf(&b, "Exchanges considered (%d): %s\n", s.ExchangeCount, strings.Join(s.ExchangeNames, ", "))
	} else {
		b.WriteString("No valid exchange data found for this volume or currency pair.\n")
	}

	fmt.Fprintf(&b, "\nAverage buy total (%s %s): %s %s\n", vol, s.BaseAsset, FormatAmount(s.AverageBuyTotal), s.BaseFiat)
	fmt.Fprintf(&b, "Average sell total (%s %s): %s %s\n", vol, s.BaseAsset, FormatAmount(s.AverageSellTotal), s.BaseFiat)
	fmt.Fprintf(&b, "\nParallel average: %s %s\n", FormatAmount(s.ParallelAverage), s.BaseFiat)

	return b.String()
}
