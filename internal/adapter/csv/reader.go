// Package csvadapter reads performance rows from CSV exports.
package csvadapter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"mesa-roi/internal/core/domain"
)

// DateLayout is the reporting date format of the exports (day first).
const DateLayout = "02/01/2006"

var required = []string{"campaign_id", "clicks", "impressions", "spent"}

// ReadRows parses a CSV document with a header line. Column names are
// matched case-insensitively. Any malformed value rejects the whole input
// with domain.ErrInvalidInput. Reporting dates that do not parse are left
// as the zero time.
func ReadRows(r io.Reader) ([]domain.PerformanceRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty CSV", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", domain.ErrInvalidInput, err)
	}
	index := mapHeaders(header)
	if missing := missingHeaders(required, index); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required columns: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}

	var rows []domain.PerformanceRow
	line := 1
	for {
		line++
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", domain.ErrInvalidInput, line, err)
		}
		row, err := parseRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrInvalidInput, line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func mapHeaders(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		index[key] = i
	}
	return index
}

func missingHeaders(required []string, index map[string]int) []string {
	var missing []string
	for _, key := range required {
		if _, ok := index[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

type fieldReader struct {
	record []string
	index  map[string]int
	err    error
}

func (f *fieldReader) str(key string) string {
	pos, ok := f.index[key]
	if !ok || pos >= len(f.record) {
		return ""
	}
	return strings.TrimSpace(f.record[pos])
}

func (f *fieldReader) int(key string) int64 {
	s := f.str(key)
	if s == "" || f.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// exports sometimes write counts as 12.0
		fv, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || fv != float64(int64(fv)) {
			f.err = fmt.Errorf("invalid %s %q", key, s)
			return 0
		}
		v = int64(fv)
	}
	return v
}

func (f *fieldReader) float(key string) float64 {
	s := f.str(key)
	if s == "" || f.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		f.err = fmt.Errorf("invalid %s %q", key, s)
		return 0
	}
	return v
}

func (f *fieldReader) date(key string) time.Time {
	t, err := time.Parse(DateLayout, f.str(key))
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseRow(record []string, index map[string]int) (domain.PerformanceRow, error) {
	f := &fieldReader{record: record, index: index}
	row := domain.PerformanceRow{
		AdID:               f.str("ad_id"),
		CampaignID:         f.str("campaign_id"),
		FBCampaignID:       f.str("fb_campaign_id"),
		ReportingStart:     f.date("reporting_start"),
		ReportingEnd:       f.date("reporting_end"),
		Age:                f.str("age"),
		Gender:             f.str("gender"),
		Interest1:          f.int("interest1"),
		Interest2:          f.int("interest2"),
		Interest3:          f.int("interest3"),
		Impressions:        f.int("impressions"),
		Clicks:             f.int("clicks"),
		Spent:              f.float("spent"),
		TotalConversion:    f.float("total_conversion"),
		ApprovedConversion: f.float("approved_conversion"),
	}
	if f.err != nil {
		return domain.PerformanceRow{}, f.err
	}
	if row.CampaignID == "" {
		return domain.PerformanceRow{}, errors.New("missing campaign_id")
	}
	return row, nil
}
