package criptoya_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/guttosm/quotepulse/internal/criptoya"
	"github.com/guttosm/quotepulse/internal/domain/models"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	// Assert: defaults produce a client pointing at the public API.
	client, err := criptoya.NewClient()
	require.NoError(t, err)
	require.Equal(t, criptoya.DefaultBaseURL, client.BaseURL())
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	for _, u := range []string{"", "criptoya.com/api", "ftp://criptoya.com", "http://"} {
		_, err := criptoya.NewClient(criptoya.WithBaseURL(u))
		require.Errorf(t, err, "expected error for base url %q", u)
	}
}

func TestQuoteURL(t *testing.T) {
	t.Parallel()

	client, err := criptoya.NewClient(criptoya.WithBaseURL("http://localhost:8080/api/"))
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8080/api/USDT/ARS/1", client.QuoteURL("usdt", "ars", 1))
	require.Equal(t, "http://localhost:8080/api/BTC/ARS/0.5", client.QuoteURL("btc", "Ars", 0.5))
	require.Equal(t, "http://localhost:8080/api/USDT/ARS/2500", client.QuoteURL("USDT", "ARS", 2500))
}

func TestGetQuotes_RequestShape(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller and http client
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: one GET to the uppercased pair with configured headers
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, http.MethodGet, req.Method)
			require.Equal(t, "https://criptoya.com/api/USDT/ARS/100", req.URL.String())
			require.Equal(t, "quotepulse-test", req.Header.Get("User-Agent"))
			require.Equal(t, "bar", req.Header.Get("foo"))
			return jsonResponse(http.StatusOK, `{}`), nil
		}).
		Times(1)

	client, err := criptoya.NewClient(
		criptoya.WithHTTPClient(httpClient),
		criptoya.WithUserAgent("quotepulse-test"),
		criptoya.WithHeader(http.Header{"foo": []string{"bar"}}),
	)
	require.NoError(t, err)

	// Act
	quotes, err := client.GetQuotes(t.Context(), "usdt", "ars", 100)

	// Assert
	require.NoError(t, err)
	require.Empty(t, quotes)
}

func TestGetQuotes_PreservesKeyOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusOK, `{
			"zeta": {"ask": 10, "bid": 9},
			"alpha": {"totalAsk": 100},
			"broken": null,
			"list": [1, 2],
			"mid": {"bid": "abc"}
		}`), nil)

	client, err := criptoya.NewClient(criptoya.WithHTTPClient(httpClient))
	require.NoError(t, err)

	quotes, err := client.GetQuotes(t.Context(), "USDT", "ARS", 1)
	require.NoError(t, err)

	names := make([]string, 0, len(quotes))
	for _, q := range quotes {
		names = append(names, q.Name)
	}
	require.Equal(t, []string{"zeta", "alpha", "broken", "list", "mid"}, names)

	require.NotNil(t, quotes[0].Record)
	require.Equal(t, models.Number(10), quotes[0].Record.Ask)
	require.Equal(t, models.Number(100), quotes[1].Record.TotalAsk)
	require.Nil(t, quotes[2].Record)
	require.Nil(t, quotes[3].Record)
	require.NotNil(t, quotes[4].Record)
	require.False(t, quotes[4].Record.Bid.Valid)
}

func TestGetQuotes_DuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusOK, `{"a":{"ask":1},"b":{"ask":2},"a":{"ask":3}}`), nil)

	client, err := criptoya.NewClient(criptoya.WithHTTPClient(httpClient))
	require.NoError(t, err)

	quotes, err := client.GetQuotes(t.Context(), "USDT", "ARS", 1)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	require.Equal(t, "a", quotes[0].Name)
	require.Equal(t, models.Number(3), quotes[0].Record.Ask)
}

func TestGetQuotes_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		res    *http.Response
		err    error
		assert func(t *testing.T, err error)
	}{
		{
			name: "network failure",
			err:  errors.New("dial tcp: no such host"),
			assert: func(t *testing.T, err error) {
				require.ErrorIs(t, err, criptoya.ErrNetwork)
			},
		},
		{
			name: "server error with json body",
			res:  jsonResponse(http.StatusInternalServerError, `{"error":"boom"}`),
			assert: func(t *testing.T, err error) {
				var httpErr *criptoya.HTTPError
				require.ErrorAs(t, err, &httpErr)
				require.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
				require.Equal(t, "Internal Server Error", httpErr.StatusText)
				require.Contains(t, httpErr.Body, "boom")
			},
		},
		{
			name: "not found with html body",
			res:  jsonResponse(http.StatusNotFound, `<html>nope</html>`),
			assert: func(t *testing.T, err error) {
				var httpErr *criptoya.HTTPError
				require.ErrorAs(t, err, &httpErr)
				require.Equal(t, http.StatusNotFound, httpErr.StatusCode)
			},
		},
		{
			name: "success with invalid json",
			res:  jsonResponse(http.StatusOK, `{"a":`),
			assert: func(t *testing.T, err error) {
				require.ErrorIs(t, err, criptoya.ErrMalformedResponse)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			httpClient := NewMockHTTPClient(ctrl)
			httpClient.EXPECT().Do(gomock.Any()).Return(tc.res, tc.err).Times(1)

			client, err := criptoya.NewClient(criptoya.WithHTTPClient(httpClient))
			require.NoError(t, err)

			quotes, err := client.GetQuotes(t.Context(), "USDT", "ARS", 1)
			require.Error(t, err)
			require.Nil(t, quotes)
			tc.assert(t, err)
		})
	}
}

func TestGetQuotes_NonObjectBodyYieldsNoQuotes(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`[]`, `null`, `"text"`, `42`} {
		ctrl := gomock.NewController(t)
		httpClient := NewMockHTTPClient(ctrl)
		httpClient.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusOK, body), nil)

		client, err := criptoya.NewClient(criptoya.WithHTTPClient(httpClient))
		require.NoError(t, err)

		quotes, err := client.GetQuotes(t.Context(), "USDT", "ARS", 1)
		require.NoErrorf(t, err, "body %s", body)
		require.Emptyf(t, quotes, "body %s", body)
	}
}

func TestGetQuotes_AgainstHTTPServer(t *testing.T) {
	t.Parallel()

	paths := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ExA":{"totalAsk":100,"totalBid":90},"ExB":{"ask":10,"bid":9}}`)
	}))
	defer srv.Close()

	client, err := criptoya.NewClient(criptoya.WithBaseURL(srv.URL + "/api"))
	require.NoError(t, err)

	quotes, err := client.GetQuotes(t.Context(), "usdt", "ars", 1)
	require.NoError(t, err)
	require.Equal(t, "/api/USDT/ARS/1", <-paths)
	require.Len(t, quotes, 2)
	require.Equal(t, "ExA", quotes[0].Name)
	require.Equal(t, "ExB", quotes[1].Name)
}
