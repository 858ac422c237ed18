package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/couchcryptid/weather-report-service/internal/domain"
)

// Column names recognized in the header row.
const (
	ColumnDate = "date"
	ColumnMin  = "min"
	ColumnMax  = "max"
)

// Loader reads a delimited weather table from disk.
// It implements pipeline.TableExtractor.
type Loader struct {
	path      string
	delimiter rune
	logger    *slog.Logger
}

// NewLoader creates a Loader for the file at path.
func NewLoader(path string, delimiter rune, logger *slog.Logger) *Loader {
	return &Loader{path: path, delimiter: delimiter, logger: logger}
}

// ExtractTable opens the configured file and parses every data row.
func (l *Loader) ExtractTable(ctx context.Context) (domain.WeatherTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open weather table: %w", err)
	}
	defer f.Close()

	table, skipped, err := ReadTable(f, l.delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	l.logger.Info("weather table loaded", "path", l.path, "rows", len(table), "skipped_blank", skipped)
	return table, nil
}

// ReadTable parses a header row followed by data rows. Columns are matched by
// name, so their order does not matter and extra columns are ignored. Rows
// whose fields are all blank are skipped and counted.
func ReadTable(r io.Reader, delimiter rune) (domain.WeatherTable, int, error) {
	cr := csv.NewReader(r)
	if delimiter != 0 {
		cr.Comma = delimiter
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, errors.New("missing header row")
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, 0, err
	}

	var (
		table   domain.WeatherTable
		skipped int
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if isBlank(row) {
			skipped++
			continue
		}

		rec, err := parseRow(row, cols, line)
		if err != nil {
			return nil, 0, err
		}
		table = append(table, rec)
	}
	return table, skipped, nil
}

type columns struct {
	date, min, max int
}

func columnIndex(header []string) (columns, error) {
	idx := map[string]int{}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	for _, name := range []string{ColumnDate, ColumnMin, ColumnMax} {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("header missing column(s): %s", strings.Join(missing, ", "))
	}
	return columns{date: idx[ColumnDate], min: idx[ColumnMin], max: idx[ColumnMax]}, nil
}

// parseRow validates one data row into a record. The date is checked here so
// report generation never meets a malformed date from a file.
func parseRow(row []string, cols columns, line int) (domain.WeatherRecord, error) {
	date := field(row, cols.date)
	if _, err := domain.ParseDate(date); err != nil {
		return domain.WeatherRecord{}, withLine(err, ColumnDate, line)
	}

	minF, err := domain.ParseFahrenheit(field(row, cols.min))
	if err != nil {
		return domain.WeatherRecord{}, withLine(err, ColumnMin, line)
	}
	maxF, err := domain.ParseFahrenheit(field(row, cols.max))
	if err != nil {
		return domain.WeatherRecord{}, withLine(err, ColumnMax, line)
	}

	return domain.WeatherRecord{Date: strings.TrimSpace(date), MinTempF: minF, MaxTempF: maxF}, nil
}

// ParseDelimiter turns a delimiter setting into a field separator rune. The
// literal two-character string `\t` selects a tab. Quotes and line breaks are
// rejected because encoding/csv cannot split on them.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character other than a quote or line break", s)
	}
	return r, nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func withLine(err error, column string, line int) error {
	var fe *domain.FormatError
	if errors.As(err, &fe) {
		fe.Field = column
		fe.Line = line
		return fe
	}
	return fmt.Errorf("line %d: %s: %w", line, column, err)
}
