package analysis

import "strconv"

const (
	millionThreshold  = 1000000
	thousandThreshold = 1000
)

// FormatNumber renders a metric for display: 1500000 → "1.5M", 2500 →
// "2.5K", 999 → "999". One decimal place, rounded.
func FormatNumber(n int) string {
	switch {
	case n >= millionThreshold:
		return strconv.FormatFloat(float64(n)/millionThreshold, 'f', 1, 64) + "M"
	case n >= thousandThreshold:
		return strconv.FormatFloat(float64(n)/thousandThreshold, 'f', 1, 64) + "K"
	default:
		return strconv.Itoa(n)
	}
}
