package quote

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseVolume parses textual volume input. The whole string must be a
// number; it must be finite and > 0.
func ParseVolume(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidVolume)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidVolume, s)
	}
	if !ValidVolume(v) {
		return 0, fmt.Errorf("%w: got %s", ErrInvalidVolume, s)
	}
	return v, nil
}

// ParseVolumes parses a comma separated list of volumes, e.g. "1,10,100".
// Empty items are rejected.
func ParseVolumes(csv string) ([]float64, error) {
	parts := strings.Split(csv, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := ParseVolume(p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
