package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/quotepulse/internal/domain/models"
)

type stubAverager struct {
	summary *models.QuoteSummary
	err     error

	gotAsset, gotFiat string
	gotVolume         float64
	gotVolumes        []float64
}

func (s *stubAverager) Average(_ context.Context, asset, fiat string, volume float64) (*models.QuoteSummary, error) {
	s.gotAsset, s.gotFiat, s.gotVolume = asset, fiat, volume
	return s.summary, s.err
}

func (s *stubAverager) AverageMany(_ context.Context, asset, fiat string, volumes []float64) []models.BatchResult {
	s.gotAsset, s.gotFiat, s.gotVolumes = asset, fiat, volumes
	out := make([]models.BatchResult, len(volumes))
	for i, v := range volumes {
		out[i] = models.BatchResult{Volume: v, Summary: s.summary, Err: s.err}
	}
	return out
}

var defaults = models.QuoteRequest{Asset: "usdt", Fiat: "ars", Volume: 1}

func TestQuoteService_GetQuote_TableDriven(t *testing.T) {
	cases := []struct {
		name      string
		avg       *stubAverager
		req       models.QuoteRequest
		wantAsset string
		wantFiat  string
		wantErr   bool
	}{
		{
			name:      "success with explicit pair",
			avg:       &stubAverager{summary: &models.QuoteSummary{ExchangeCount: 2}},
			req:       models.QuoteRequest{Asset: "btc", Fiat: "brl", Volume: 0.5},
			wantAsset: "btc",
			wantFiat:  "brl",
		},
		{
			name:      "empty pair falls back to defaults",
			avg:       &stubAverager{summary: &models.QuoteSummary{}},
			req:       models.QuoteRequest{Asset: " ", Volume: 3},
			wantAsset: "USDT",
			wantFiat:  "ARS",
		},
		{
			name:      "error",
			avg:       &stubAverager{err: errors.New("boom")},
			req:       models.QuoteRequest{Asset: "USDT", Fiat: "ARS", Volume: 1},
			wantAsset: "USDT",
			wantFiat:  "ARS",
			wantErr:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewQuoteService(tc.avg, defaults)
			out, err := svc.GetQuote(context.Background(), tc.req)
			if tc.wantErr {
				if err == nil || out != nil {
					t.Fatalf("expected error, got out=%+v err=%v", out, err)
				}
			} else if err != nil || out == nil {
				t.Fatalf("unexpected: out=%+v err=%v", out, err)
			}
			if tc.avg.gotAsset != tc.wantAsset || tc.avg.gotFiat != tc.wantFiat || tc.avg.gotVolume != tc.req.Volume {
				t.Fatalf("forwarded %s/%s/%v", tc.avg.gotAsset, tc.avg.gotFiat, tc.avg.gotVolume)
			}
		})
	}
}

func TestQuoteService_GetQuotes(t *testing.T) {
	avg := &stubAverager{summary: &models.QuoteSummary{}}
	svc := NewQuoteService(avg, defaults)

	out := svc.GetQuotes(context.Background(), "", "", []float64{1, 10})
	if len(out) != 2 || out[0].Volume != 1 || out[1].Volume != 10 {
		t.Fatalf("unexpected results: %+v", out)
	}
	if avg.gotAsset != "USDT" || avg.gotFiat != "ARS" {
		t.Fatalf("defaults not applied: %s/%s", avg.gotAsset, avg.gotFiat)
	}
	if d := svc.Defaults(); d.Asset != "USDT" || d.Fiat != "ARS" || d.Volume != 1 {
		t.Fatalf("unexpected defaults: %+v", d)
	}
}
