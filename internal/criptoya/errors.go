package criptoya

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

var (
	// ErrNetwork wraps failures to complete the request or read its body.
	ErrNetwork = errors.New("criptoya: request failed")

	// ErrMalformedResponse wraps bodies that are not valid JSON.
	ErrMalformedResponse = errors.New("criptoya: malformed response")
)

// HTTPError is returned when the API answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	StatusText string
	// Body is an excerpt of the response body, for diagnostics.
	Body string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("criptoya: api call failed with status %d %s", e.StatusCode, e.StatusText)
}

func newHTTPError(res *http.Response, body []byte) *HTTPError {
	// res.Status is "503 Service Unavailable"; keep only the reason phrase
	text := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode)))
	if text == "" {
		text = http.StatusText(res.StatusCode)
	}
	return &HTTPError{
		StatusCode: res.StatusCode,
		StatusText: text,
		Body:       excerpt(body, bodyExcerptLimit),
	}
}

// excerpt returns at most n runes of b.
func excerpt(b []byte, n int) string {
	s := string(b)
	if len(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
