package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/weather-report-service/internal/domain"
)

// WeatherReporter implements Generator using the domain report functions.
type WeatherReporter struct {
	logger *slog.Logger
}

// NewReporter creates a WeatherReporter.
func NewReporter(logger *slog.Logger) *WeatherReporter {
	return &WeatherReporter{logger: logger}
}

// Generate builds the overview followed by the daily summary.
func (r *WeatherReporter) Generate(_ context.Context, table domain.WeatherTable) ([]domain.Report, error) {
	overview, err := domain.GenerateOverview(table)
	if err != nil {
		return nil, fmt.Errorf("generate overview: %w", err)
	}
	daily, err := domain.GenerateDailySummary(table)
	if err != nil {
		return nil, fmt.Errorf("generate daily summary: %w", err)
	}

	r.logger.Debug("reports generated", "days", len(table))
	return []domain.Report{
		domain.NewReport(domain.ReportOverview, table, overview),
		domain.NewReport(domain.ReportDaily, table, daily),
	}, nil
}
