package common

import (
	"math"
	"strings"
)

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// ClampByte rounds v and clamps it into the 0..255 range.
func ClampByte(v float64) uint8 {
	r := math.Round(v)
	switch {
	case r <= 0 || math.IsNaN(r):
		return 0
	case r >= 255:
		return 255
	default:
		return uint8(r)
	}
}

// EqualFoldAny returns true if s case-insensitively equals any of the candidates.
func EqualFoldAny(s string, candidates ...string) bool {
	s = strings.TrimSpace(s)
	for _, c := range candidates {
		if strings.EqualFold(s, c) {
			return true
		}
	}
	return false
}
