package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/quotepulse/internal/criptoya"
	"github.com/guttosm/quotepulse/internal/domain/dto"
	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/middleware"
	"github.com/guttosm/quotepulse/internal/quote"
	"github.com/guttosm/quotepulse/internal/service"
)

// Handler provides HTTP handlers for the averaged quote endpoints.
//
// Responsibilities:
//   - Validate incoming query parameters
//   - Delegate to the quote service
//   - Translate summaries into response DTOs
//   - Map upstream failures to HTTP status codes
type Handler struct {
	svc service.QuoteService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.QuoteService) *Handler {
	return &Handler{svc: svc}
}

// GetQuote handles GET /api/v1/quotes requests.
//
// Query Parameters:
//   - asset (string, optional): base crypto asset, defaults to the configured one.
//   - fiat (string, optional): fiat currency, defaults to the configured one.
//   - volume (number, optional): quantity of asset, defaults to the configured one.
//
// GetQuote godoc
// @Summary      Get averaged quote
// @Description  Averages buy, sell and parallel prices across every exchange CriptoYa lists for the pair
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        asset   query     string  false  "Base asset"     example(USDT)
// @Param        fiat    query     string  false  "Fiat currency"  example(ARS)
// @Param        volume  query     number  false  "Trade volume"   example(100)
// @Success      200     {object}  dto.QuoteResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502     {object}  dto.ErrorResponse  "Upstream Failure"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/quotes [get]
func (h *Handler) GetQuote(c *gin.Context) {
	// ─── Validate "volume" param ──────────────────────────────
	volume := h.svc.Defaults().Volume
	if raw, ok := c.GetQuery("volume"); ok {
		v, err := quote.ParseVolume(raw)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid volume", err)
			return
		}
		volume = v
	}

	req := models.QuoteRequest{
		Asset:  strings.TrimSpace(c.Query("asset")),
		Fiat:   strings.TrimSpace(c.Query("fiat")),
		Volume: volume,
	}

	// ─── Query service (with request context) ─────────────────
	summary, err := h.svc.GetQuote(c.Request.Context(), req)
	if err != nil {
		status, msg := classify(err)
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Int("status", status).Msg("quote request failed")
		middleware.AbortWithError(c, status, msg, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(summary))
}

// GetBatchQuotes handles GET /api/v1/quotes/batch requests.
//
// GetBatchQuotes godoc
// @Summary      Get averaged quotes for several volumes
// @Description  Runs one independent average per volume; a failed volume carries its error text
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        asset    query     string  false  "Base asset"                    example(USDT)
// @Param        fiat     query     string  false  "Fiat currency"                 example(ARS)
// @Param        volumes  query     string  true   "Comma separated volumes"       example(1,10,100)
// @Success      200      {object}  dto.BatchQuoteResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse       "Bad Request"
// @Router       /api/v1/quotes/batch [get]
func (h *Handler) GetBatchQuotes(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("volumes"))
	if raw == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "volumes is required", nil)
		return
	}
	volumes, err := quote.ParseVolumes(raw)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid volumes", err)
		return
	}

	results := h.svc.GetQuotes(c.Request.Context(), c.Query("asset"), c.Query("fiat"), volumes)

	resp := dto.BatchQuoteResponse{Results: make([]dto.BatchQuoteItem, 0, len(results))}
	for _, r := range results {
		item := dto.BatchQuoteItem{Volume: r.Volume}
		if r.Err != nil {
			item.Error = r.Err.Error()
		} else {
			q := dto.NewQuoteResponse(r.Summary)
			item.Quote = &q
			resp.Asset, resp.Fiat = r.Summary.BaseAsset, r.Summary.BaseFiat
		}
		resp.Results = append(resp.Results, item)
	}
	if resp.Asset == "" {
		d := h.svc.Defaults()
		resp.Asset = strings.ToUpper(firstNonEmpty(c.Query("asset"), d.Asset))
		resp.Fiat = strings.ToUpper(firstNonEmpty(c.Query("fiat"), d.Fiat))
	}

	c.JSON(http.StatusOK, resp)
}

// classify maps a service error to an HTTP status and message.
func classify(err error) (int, string) {
	var httpErr *criptoya.HTTPError
	switch {
	case errors.Is(err, quote.ErrInvalidVolume):
		return http.StatusBadRequest, "invalid volume"
	case errors.As(err, &httpErr):
		return http.StatusBadGateway, "upstream responded with an error"
	case errors.Is(err, criptoya.ErrNetwork):
		return http.StatusBadGateway, "upstream unreachable"
	case errors.Is(err, criptoya.ErrMalformedResponse):
		return http.StatusBadGateway, "upstream returned a malformed response"
	default:
		return http.StatusInternalServerError, "failed to average quotes"
	}
}

func firstNonEmpty(a, b string) string {
	if s := strings.TrimSpace(a); s != "" {
		return s
	}
	return b
}
