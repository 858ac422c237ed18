package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/couchcryptid/weather-report-service/internal/domain"
)

// Writer prints report bodies to an io.Writer, one after another with a
// blank line between them. It implements pipeline.ReportLoader.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter creates a console Writer; pass os.Stdout in production.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) LoadReports(ctx context.Context, reports []domain.Report) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, r := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(w.out, "\n"); err != nil {
				return fmt.Errorf("write report separator: %w", err)
			}
		}
		if _, err := io.WriteString(w.out, r.Body); err != nil {
			return fmt.Errorf("write %s report: %w", r.Kind, err)
		}
	}
	return nil
}
