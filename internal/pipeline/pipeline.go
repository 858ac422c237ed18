package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/weather-report-service/internal/domain"
	"github.com/couchcryptid/weather-report-service/internal/observability"
)

// TableExtractor reads the whole input table.
type TableExtractor interface {
	ExtractTable(ctx context.Context) (domain.WeatherTable, error)
}

// Generator turns a table into reports.
type Generator interface {
	Generate(ctx context.Context, table domain.WeatherTable) ([]domain.Report, error)
}

// ReportLoader delivers reports to a destination.
type ReportLoader interface {
	LoadReports(ctx context.Context, reports []domain.Report) error
}

// Pipeline orchestrates one extract-generate-load pass and keeps the latest
// reports for readers such as the HTTP server.
type Pipeline struct {
	extractor TableExtractor
	generator Generator
	loaders   []ReportLoader
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool

	mu     sync.RWMutex
	latest map[domain.ReportKind]domain.Report
}

// New creates a Pipeline with the given stages and observability. Every
// loader receives every report, in the order given.
func New(e TableExtractor, g Generator, loaders []ReportLoader, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor: e,
		generator: g,
		loaders:   loaders,
		logger:    logger,
		metrics:   metrics,
		latest:    make(map[domain.ReportKind]domain.Report),
	}
}

// CheckReadiness returns nil once a run has completed successfully.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no weather report has been generated yet")
	}
	return nil
}

// LatestReport returns the most recently generated report of the given kind.
func (p *Pipeline) LatestReport(kind domain.ReportKind) (domain.Report, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	r, ok := p.latest[kind]
	return r, ok
}

// Run executes one extract-generate-load pass. Failures are not retried.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	table, err := p.extractor.ExtractTable(ctx)
	if err != nil {
		p.fail("extract", err)
		return fmt.Errorf("load table: %w", err)
	}
	p.metrics.RecordsLoaded.Add(float64(len(table)))
	p.metrics.TableDays.Set(float64(len(table)))

	reports, err := p.generator.Generate(ctx, table)
	if err != nil {
		p.fail("generate", err)
		return fmt.Errorf("generate reports: %w", err)
	}
	p.metrics.ReportsGenerated.Add(float64(len(reports)))
	p.store(reports)

	for _, l := range p.loaders {
		if err := l.LoadReports(ctx, reports); err != nil {
			p.fail("load", err)
			return fmt.Errorf("publish reports: %w", err)
		}
		p.metrics.ReportsPublished.Add(float64(len(reports)))
	}

	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	p.logger.Info("weather reports generated", "days", len(table), "reports", len(reports), "loaders", len(p.loaders))
	return nil
}

func (p *Pipeline) store(reports []domain.Report) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range reports {
		p.latest[r.Kind] = r
	}
}

func (p *Pipeline) fail(stage string, err error) {
	p.logger.Error("pipeline stage failed", "stage", stage, "error", err)
	p.metrics.PipelineErrors.WithLabelValues(stage).Inc()
}
