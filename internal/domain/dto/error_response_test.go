package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/guttosm/quotepulse/internal/criptoya"
)

func TestNewErrorResponse_Cases(t *testing.T) {
	cases := []struct {
		name        string
		message     string
		err         error
		wantDetails string
		wantText    string
	}{
		{name: "no cause", message: "volumes is required", wantText: "volumes is required"},
		{
			name:        "plain cause",
			message:     "invalid volume",
			err:         errors.New("got -1"),
			wantDetails: "got -1",
			wantText:    "invalid volume: got -1",
		},
		{
			name:        "wrapped upstream cause",
			message:     "upstream unreachable",
			err:         fmt.Errorf("%w: dial tcp: refused", criptoya.ErrNetwork),
			wantDetails: criptoya.ErrNetwork.Error() + ": dial tcp: refused",
			wantText:    "upstream unreachable: " + criptoya.ErrNetwork.Error() + ": dial tcp: refused",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := time.Now().UTC()
			resp := NewErrorResponse(tc.message, tc.err)

			if resp.Message != tc.message || resp.ErrorDetails != tc.wantDetails {
				t.Fatalf("unexpected response: %+v", resp)
			}
			if resp.Error() != tc.wantText {
				t.Fatalf("Error() = %q, want %q", resp.Error(), tc.wantText)
			}
			if resp.Timestamp.Before(before) || resp.Timestamp.Location() != time.UTC {
				t.Fatalf("timestamp not stamped in UTC: %v", resp.Timestamp)
			}
		})
	}
}

func TestErrorResponse_OmitsEmptyDetails(t *testing.T) {
	b, err := json.Marshal(NewErrorResponse("volumes is required", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := raw["error"]; ok {
		t.Fatalf("empty details should be omitted: %s", b)
	}
	if raw["message"] != "volumes is required" || raw["timestamp"] == nil {
		t.Fatalf("unexpected body: %s", b)
	}
}
