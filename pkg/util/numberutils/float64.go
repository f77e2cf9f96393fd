package numberutils

import "strconv"

// ToFloat64WithError converts the given string to a float64 and returns any
// conversion error.
func ToFloat64WithError(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// FormatFloat renders a float64 with the smallest number of digits necessary
// to round-trip the value.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RoundTo rounds f to the given number of decimal places.
func RoundTo(f float64, places int) float64 {
	shift := 1.0
	for i := 0; i < places; i++ {
		shift *= 10
	}
	if f >= 0 {
		return float64(int64(f*shift+0.5)) / shift
	}
	return float64(int64(f*shift-0.5)) / shift
}
