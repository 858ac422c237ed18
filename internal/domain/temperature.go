package domain

import (
	"strconv"
	"strings"
)

// DegreeSymbol is appended to every displayed temperature.
const DegreeSymbol = "°C"

// FormatTemperature appends the degree suffix to an already rounded value.
// Integers print as-is (0 -> "0°C"). Floats use their shortest form but keep
// a fractional digit (20.0 -> "20.0°C"). Strings are kept verbatim and are
// not suffixed twice.
func FormatTemperature[T string | int | float64](value T) string {
	switch v := any(value).(type) {
	case string:
		if strings.HasSuffix(v, DegreeSymbol) {
			return v
		}
		return v + DegreeSymbol
	case int:
		return strconv.Itoa(v) + DegreeSymbol
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.ContainsAny(s, ".NI") {
			s += ".0"
		}
		return s + DegreeSymbol
	}
	return ""
}

// FormatCelsius renders a rounded Celsius value with exactly one fractional
// digit, e.g. 20 -> "20.0°C".
func FormatCelsius(c float64) string {
	return FormatTemperature(strconv.FormatFloat(c, 'f', 1, 64))
}
