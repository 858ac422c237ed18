package domain

import (
	"fmt"
	"time"
)

// WeatherRecord is one row of the input table.
type WeatherRecord struct {
	Date     string  `json:"date"`       // ISO-8601, e.g. "2021-07-06" or "2021-07-06T07:00:00+08:00"
	MinTempF float64 `json:"min_temp_f"` // Fahrenheit
	MaxTempF float64 `json:"max_temp_f"` // Fahrenheit
}

// WeatherTable is the ordered sequence of records as read from the input.
// Row order decides tie-breaks and the order of daily blocks.
type WeatherTable []WeatherRecord

// MinCelsius returns the converted minimum of every record, in table order.
func (t WeatherTable) MinCelsius() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = FahrenheitToCelsius(r.MinTempF)
	}
	return out
}

// MaxCelsius returns the converted maximum of every record, in table order.
func (t WeatherTable) MaxCelsius() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = FahrenheitToCelsius(r.MaxTempF)
	}
	return out
}

// ReportKind names one of the two report flavours.
type ReportKind string

const (
	ReportOverview ReportKind = "overview"
	ReportDaily    ReportKind = "daily"
)

// ParseReportKind validates a kind received from outside (URL path, flag).
func ParseReportKind(s string) (ReportKind, error) {
	switch k := ReportKind(s); k {
	case ReportOverview, ReportDaily:
		return k, nil
	default:
		return "", fmt.Errorf("unknown report kind %q", s)
	}
}

// Report is a generated report body plus the metadata sinks need to route it.
type Report struct {
	Kind        ReportKind `json:"kind"`
	Days        int        `json:"days"`
	Body        string     `json:"body"`
	GeneratedAt time.Time  `json:"generated_at"`
}
