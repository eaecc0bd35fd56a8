package schedule

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericPrefix matches the leading decimal number of a bonus field, so
// "12.5%" reads as 12.5 and "abc" reads as nothing.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseBonus returns the percentage held in s, or 0 when s carries no number.
func ParseBonus(s string) float64 {
	m := numericPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// TotalBonus sums the support card percentages.
func TotalBonus(bonuses []string) float64 {
	total := 0.0
	for _, b := range bonuses {
		total += ParseBonus(b)
	}
	return total
}

// Multiplier converts support card percentages into a fan multiplier.
// The percentages are summed first and divided once.
func Multiplier(bonuses []string) float64 {
	return 1 + TotalBonus(bonuses)/100
}

// roundHalfUp rounds .5 towards positive infinity for both signs.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
