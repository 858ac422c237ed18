// Command validate performs end-to-end integrity checks on a weather table
// before it is fed to the report service: header columns, per-row parsing,
// temperature sanity, and report generation. Unlike the service loader, which
// stops at the first bad row, it collects every problem it finds.
//
// Usage:
//
//	go run ./cmd/validate -input testdata/weather_sample.csv
//	go run ./cmd/validate -input data/july.tsv -delimiter '\t'
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/couchcryptid/weather-report-service/internal/adapter/csvfile"
	"github.com/couchcryptid/weather-report-service/internal/domain"
)

// Plausible Fahrenheit bounds: roughly the coldest and hottest air
// temperatures ever recorded at the surface.
const (
	minPlausibleF = -130.0
	maxPlausibleF = 140.0
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
	notes  []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) notef(format string, args ...any) {
	p.notes = append(p.notes, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	input := flag.String("input", "", "path to the weather CSV table")
	delimiter := flag.String("delimiter", ",", `field delimiter (single character, or \t)`)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*input, *delimiter); code != 0 {
		os.Exit(code)
	}
}

func run(path, delimiter string) int {
	comma, err := csvfile.ParseDelimiter(delimiter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read table: %v\n", err)
		return 1
	}

	fmt.Println("=== Weather Table Validation ===")
	fmt.Println()

	header, rows, err := loadCSV(data, comma)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: parse CSV: %v\n", err)
		return 1
	}

	headerPhase, cols := validateHeader(header)
	phases := []*phase{headerPhase}
	if headerPhase.passed() {
		parsed, parsePhase := validateRows(rows, cols)
		phases = append(phases,
			parsePhase,
			validateSanity(parsed),
			validateReports(data, comma, parsed),
		)
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Rows: %d data rows in %s\n", len(rows), path)

	for _, p := range phases {
		for _, n := range p.notes {
			fmt.Printf("  Note: %s\n", n)
		}
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Data loading ──

// csvRow is a raw data row with its source line number.
type csvRow struct {
	lineNum int
	fields  []string
}

func loadCSV(data []byte, comma rune) ([]string, []csvRow, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, errors.New("no header row")
	}
	if err != nil {
		return nil, nil, err
	}

	var rows []csvRow
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		line, _ := r.FieldPos(0)
		rows = append(rows, csvRow{lineNum: line, fields: fields})
	}
	return header, rows, nil
}

// ── Phase 1: Header ──

type columnSet struct {
	date, min, max int
}

func validateHeader(header []string) (*phase, columnSet) {
	p := &phase{name: "Phase 1: Header (required columns)"}

	idx := map[string]int{}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if prev, dup := idx[name]; dup {
			p.notef("column %q appears more than once; using position %d", name, prev+1)
			continue
		}
		idx[name] = i
	}

	for _, name := range []string{csvfile.ColumnDate, csvfile.ColumnMin, csvfile.ColumnMax} {
		if _, ok := idx[name]; !ok {
			p.errorf("missing column %q (header: %s)", name, strings.Join(header, ","))
		}
	}
	return p, columnSet{date: idx[csvfile.ColumnDate], min: idx[csvfile.ColumnMin], max: idx[csvfile.ColumnMax]}
}

// ── Phase 2: Row parsing ──

type parsedRow struct {
	lineNum int
	record  domain.WeatherRecord
}

func validateRows(rows []csvRow, cols columnSet) ([]parsedRow, *phase) {
	p := &phase{name: "Phase 2: Row Parsing (date, min, max)"}

	parsed := make([]parsedRow, 0, len(rows))
	blank := 0
	for _, row := range rows {
		if isBlank(row.fields) {
			blank++
			continue
		}

		date := field(row.fields, cols.date)
		_, dateErr := domain.ParseDate(date)
		minF, minErr := domain.ParseFahrenheit(field(row.fields, cols.min))
		maxF, maxErr := domain.ParseFahrenheit(field(row.fields, cols.max))

		if dateErr != nil {
			p.errorf("line %d: date %q is not an ISO-8601 date", row.lineNum, date)
		}
		if minErr != nil {
			p.errorf("line %d: min %q is not numeric", row.lineNum, field(row.fields, cols.min))
		}
		if maxErr != nil {
			p.errorf("line %d: max %q is not numeric", row.lineNum, field(row.fields, cols.max))
		}
		if dateErr != nil || minErr != nil || maxErr != nil {
			continue
		}

		parsed = append(parsed, parsedRow{
			lineNum: row.lineNum,
			record:  domain.WeatherRecord{Date: strings.TrimSpace(date), MinTempF: minF, MaxTempF: maxF},
		})
	}

	if blank > 0 {
		p.notef("%d blank row(s) will be skipped by the loader", blank)
	}
	if len(parsed) == 0 && p.passed() {
		p.errorf("table has no data rows; an overview needs at least one day")
	}
	return parsed, p
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

// ── Phase 3: Temperature sanity ──

func validateSanity(rows []parsedRow) *phase {
	p := &phase{name: "Phase 3: Temperature Sanity"}

	seen := map[string]int{}
	for _, row := range rows {
		r := row.record
		if r.MinTempF > r.MaxTempF {
			p.errorf("line %d: min %g°F is above max %g°F", row.lineNum, r.MinTempF, r.MaxTempF)
		}
		for _, v := range []float64{r.MinTempF, r.MaxTempF} {
			if v < minPlausibleF || v > maxPlausibleF {
				p.errorf("line %d: %g°F is outside the plausible range [%g, %g]", row.lineNum, v, minPlausibleF, maxPlausibleF)
			}
		}

		day, _ := domain.FormatDate(r.Date)
		if prev, dup := seen[day]; dup {
			p.notef("line %d repeats %s from line %d", row.lineNum, day, prev)
			continue
		}
		seen[day] = row.lineNum
	}
	return p
}

// ── Phase 4: Report generation ──
// Runs the service loader and both reports, then checks every daily block
// against a single conversion of its source row.

func validateReports(data []byte, comma rune, rows []parsedRow) *phase {
	p := &phase{name: "Phase 4: Report Generation"}

	table, _, err := csvfile.ReadTable(bytes.NewReader(data), comma)
	if err != nil {
		p.errorf("service loader rejected the table: %v", err)
		return p
	}
	if len(table) != len(rows) {
		p.errorf("service loader read %d rows, validator parsed %d", len(table), len(rows))
	}

	if _, err := domain.GenerateOverview(table); err != nil {
		p.errorf("overview: %v", err)
	}

	daily, err := domain.GenerateDailySummary(table)
	if err != nil {
		p.errorf("daily summary: %v", err)
		return p
	}

	blocks := strings.Split(strings.TrimSuffix(daily, "\n\n"), "\n\n")
	if daily == "" {
		blocks = nil
	}
	if len(blocks) != len(table) {
		p.errorf("daily summary has %d blocks for %d rows", len(blocks), len(table))
		return p
	}

	for i, rec := range table {
		wantMin := "Minimum Temperature: " + domain.FormatCelsius(domain.FahrenheitToCelsius(rec.MinTempF))
		wantMax := "Maximum Temperature: " + domain.FormatCelsius(domain.FahrenheitToCelsius(rec.MaxTempF))
		if !strings.Contains(blocks[i], wantMin) || !strings.Contains(blocks[i], wantMax) {
			p.errorf("row %d (%s): daily block does not match a single conversion:\n%s", i+1, rec.Date, blocks[i])
		}
	}
	return p
}
