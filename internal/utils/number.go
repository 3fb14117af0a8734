package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPrefix matches the longest leading decimal literal, the way a browser's parseFloat reads input
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber reads the leading number from user input ("12abc" reads as 12).
// It reports false when the text has no numeric prefix or the value is not finite.
func ParseNumber(s string) (float64, bool) {
	match := numberPrefix.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ParseNumberOrZero is ParseNumber with unreadable input treated as 0
func ParseNumberOrZero(s string) float64 {
	v, _ := ParseNumber(s)
	return v
}

// FormatNumber renders a float with the fewest digits that round-trip,
// switching to exponent form for very large or very small magnitudes
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
