package criptoya

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/guttosm/quotepulse/internal/domain/models"
)

const bodyExcerptLimit = 500

// QuoteURL builds the request URL for asset/fiat at volume. Codes are
// uppercased; the volume uses the shortest decimal form (1, 0.5, 2500).
func (c *Client) QuoteURL(asset, fiat string, volume float64) string {
	return fmt.Sprintf("%s/%s/%s/%s",
		c.baseURL,
		url.PathEscape(strings.ToUpper(asset)),
		url.PathEscape(strings.ToUpper(fiat)),
		strconv.FormatFloat(volume, 'f', -1, 64),
	)
}

// GetQuotes performs a single GET for asset/fiat at volume and returns the
// exchange records in the order the API listed them.
//
// It does not retry. Errors:
//   - ErrNetwork (wrapped) when the request or body read fails.
//   - *HTTPError for non-2xx responses.
//   - ErrMalformedResponse (wrapped) when the body is not valid JSON.
//
// A top-level array is keyed by element index; any other valid JSON body
// whose top-level value is not an object yields no quotes.
func (c *Client) GetQuotes(ctx context.Context, asset, fiat string, volume float64) ([]models.ExchangeQuote, error) {
	endpoint := c.QuoteURL(asset, fiat, volume)
	c.log.Debug().Str("url", endpoint).Msg("requesting quotes")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer res.Body.Close()

	// read the whole body first so it can be logged before parsing
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrNetwork, err)
	}
	c.log.Debug().
		Int("status", res.StatusCode).
		Str("body", excerpt(body, bodyExcerptLimit)).
		Msg("quotes response")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.logErrorBody(res.StatusCode, body)
		return nil, newHTTPError(res, body)
	}

	return decodeQuotes(body)
}

// logErrorBody reports a failed response body, parsed as JSON when possible.
func (c *Client) logErrorBody(status int, body []byte) {
	var detail any
	if err := json.Unmarshal(body, &detail); err != nil {
		c.log.Error().
			Int("status", status).
			Err(err).
			Str("body", excerpt(body, bodyExcerptLimit)).
			Msg("error response is not json")
		return
	}
	c.log.Error().
		Int("status", status).
		Interface("body", detail).
		Msg("api responded with non-success status")
}

// decodeQuotes walks the top-level value token by token so that key order
// survives. Duplicate keys keep their first position and the last value.
//
// A top-level array is read as an object keyed by index ("0", "1", ...).
// Any other non-object value yields no quotes.
func decodeQuotes(body []byte) ([]models.ExchangeQuote, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid json", ErrMalformedResponse)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return []models.ExchangeQuote{}, nil
	}

	quotes := []models.ExchangeQuote{}
	index := map[string]int{}
	for i := 0; dec.More(); i++ {
		name := strconv.Itoa(i)
		if d == '{' {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("%w: reading key: %w", ErrMalformedResponse, err)
			}
			name, _ = keyTok.(string)
		}

		q, err := decodeQuote(dec, name)
		if err != nil {
			return nil, err
		}

		if at, dup := index[name]; dup {
			quotes[at] = q
			continue
		}
		index[name] = len(quotes)
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// decodeQuote reads the next value from dec. Non-object values leave
// Record nil.
func decodeQuote(dec *json.Decoder, name string) (models.ExchangeQuote, error) {
	q := models.ExchangeQuote{Name: name}

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return q, fmt.Errorf("%w: reading %q: %w", ErrMalformedResponse, name, err)
	}
	if isObject(raw) {
		var rec models.ExchangeRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return q, fmt.Errorf("%w: decoding %q: %w", ErrMalformedResponse, name, err)
		}
		q.Record = &rec
	}
	return q, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
