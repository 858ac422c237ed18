package domain

import (
	"fmt"
	"strings"
)

// GenerateOverview builds the multi-day overview for table.
// The table must hold at least one record; an empty table yields ErrEmptyTable.
func GenerateOverview(table WeatherTable) (string, error) {
	if len(table) == 0 {
		return "", ErrEmptyTable
	}

	lows := table.MinCelsius()
	highs := table.MaxCelsius()

	lowest, ok := FindMin(lows)
	if !ok {
		return "", ErrEmptyTable
	}
	highest, ok := FindMax(highs)
	if !ok {
		return "", ErrEmptyTable
	}

	lowestDate, err := FormatDate(table[lowest.Index].Date)
	if err != nil {
		return "", fmt.Errorf("lowest temperature date: %w", err)
	}
	highestDate, err := FormatDate(table[highest.Index].Date)
	if err != nil {
		return "", fmt.Errorf("highest temperature date: %w", err)
	}

	meanLow, err := Mean(lows)
	if err != nil {
		return "", fmt.Errorf("average low: %w", err)
	}
	meanHigh, err := Mean(highs)
	if err != nil {
		return "", fmt.Errorf("average high: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d Day Overview\n", len(table))
	fmt.Fprintf(&b, "  The lowest temperature will be %s, and will occur on %s.\n", FormatCelsius(lowest.Value), lowestDate)
	fmt.Fprintf(&b, "  The highest temperature will be %s, and will occur on %s.\n", FormatCelsius(highest.Value), highestDate)
	fmt.Fprintf(&b, "  The average low this week is %s.\n", FormatCelsius(roundTenth(meanLow)))
	fmt.Fprintf(&b, "  The average high this week is %s.\n", FormatCelsius(roundTenth(meanHigh)))
	return b.String(), nil
}

// GenerateDailySummary builds one block per record, in table order.
// An empty table produces an empty summary.
func GenerateDailySummary(table WeatherTable) (string, error) {
	var b strings.Builder
	for i, r := range table {
		date, err := FormatDate(r.Date)
		if err != nil {
			return "", fmt.Errorf("record %d: %w", i, err)
		}
		fmt.Fprintf(&b, "---- %s ----\n", date)
		fmt.Fprintf(&b, "  Minimum Temperature: %s\n", FormatCelsius(FahrenheitToCelsius(r.MinTempF)))
		fmt.Fprintf(&b, "  Maximum Temperature: %s\n", FormatCelsius(FahrenheitToCelsius(r.MaxTempF)))
		b.WriteString("\n")
	}
	return b.String(), nil
}
