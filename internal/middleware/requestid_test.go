package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	incoming := uuid.NewString()
	cases := []struct {
		name   string
		header string
		reuse  bool
	}{
		{name: "generated when absent", header: "", reuse: false},
		{name: "reused when valid uuid", header: incoming, reuse: true},
		{name: "replaced when not a uuid", header: "not-a-uuid", reuse: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ctxLogger *zerolog.Logger
			var stored string

			r := gin.New()
			r.Use(RequestID())
			r.GET("/", func(c *gin.Context) {
				ctxLogger = zerolog.Ctx(c.Request.Context())
				stored = c.GetString(RequestIDKey)
				c.String(http.StatusOK, "ok")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(RequestIDHeader, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("header %q is not a uuid", got)
			}
			if tc.reuse && got != incoming {
				t.Fatalf("expected incoming id to be reused, got %q", got)
			}
			if !tc.reuse && got == tc.header {
				t.Fatalf("expected a fresh id, got %q", got)
			}
			if stored != got {
				t.Fatalf("context id %q != header id %q", stored, got)
			}
			if ctxLogger == nil || ctxLogger.GetLevel() == zerolog.Disabled {
				t.Fatal("expected a request logger in the request context")
			}
		})
	}
}
