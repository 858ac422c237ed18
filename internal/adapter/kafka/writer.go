package kafka

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/weather-report-service/internal/config"
	"github.com/couchcryptid/weather-report-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafkago.Writer used here.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer publishes reports to a Kafka topic, one message per report.
// It implements pipeline.ReportLoader.
type Writer struct {
	writer messageWriter
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured report topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaReportTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadReports publishes all reports in a single WriteMessages call.
func (w *Writer) LoadReports(ctx context.Context, reports []domain.Report) error {
	if len(reports) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(reports))
	for i := range reports {
		msgs[i] = reportToMessage(reports[i])
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return err
	}
	w.logger.Info("reports published", "count", len(msgs))
	return nil
}

// Close flushes pending messages and releases the underlying Kafka writer.
func (w *Writer) Close() error {
	return w.writer.Close()
}

// reportToMessage keys the message by report kind so each kind stays on one
// partition; the body travels unchanged as plain text.
func reportToMessage(r domain.Report) kafkago.Message {
	return kafkago.Message{
		Key:   []byte(r.Kind),
		Value: []byte(r.Body),
		Headers: []kafkago.Header{
			{Key: "report_kind", Value: []byte(r.Kind)},
			{Key: "days", Value: []byte(strconv.Itoa(r.Days))},
			{Key: "generated_at", Value: []byte(r.GeneratedAt.Format(time.RFC3339))},
			{Key: "content_type", Value: []byte("text/plain; charset=utf-8")},
		},
	}
}
