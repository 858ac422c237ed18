package domain

import (
	"math"
	"strconv"
	"strings"
)

// FahrenheitToCelsius converts f to Celsius rounded to one decimal place.
func FahrenheitToCelsius(f float64) float64 {
	return roundTenth((f - 32) * 5 / 9)
}

// ParseFahrenheit parses a numeric Fahrenheit reading from the input table.
// NaN and infinities are rejected so they never reach the statistics.
func ParseFahrenheit(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &FormatError{Field: "temperature", Value: s, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FormatError{Field: "temperature", Value: s, Err: ErrNotFinite}
	}
	return v, nil
}

// roundTenth rounds through the one-digit decimal rendering so the stored
// value always prints the way it was rounded.
func roundTenth(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}
