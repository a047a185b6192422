package backend

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"git.sr.ht/~whereswaldon/scrollchart/chart"
)

// ErrNoData is returned when a source holds no parseable points.
var ErrNoData = errors.New("no data points found")

var errNotFinite = errors.New("value is not finite")

// ReadSeries parses CSV data of "x, y" rows into a series. A first row that does not
// parse is treated as a heading. Later rows that do not parse are logged and skipped,
// as are columns beyond the second. Lines starting with '#' are comments.
func ReadSeries(r io.Reader) (chart.Series, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1
	csvReader.Comment = '#'
	var series chart.Series
	first := true
	for {
		rec, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.Printf("skipping malformed CSV line: %v", err)
				first = false
				continue
			}
			return nil, fmt.Errorf("failed reading CSV data: %w", err)
		}
		p, err := parsePoint(rec)
		if err != nil {
			if !first {
				line, _ := csvReader.FieldPos(0)
				log.Printf("skipping line %d: %v", line, err)
			}
			first = false
			continue
		}
		first = false
		series = append(series, p)
	}
	if len(series) == 0 {
		return nil, ErrNoData
	}
	return series, nil
}

func parsePoint(rec []string) (chart.Point, error) {
	if len(rec) < 2 {
		return chart.Point{}, fmt.Errorf("expected at least 2 fields, got %d", len(rec))
	}
	x, err := parseValue(rec[0])
	if err != nil {
		return chart.Point{}, fmt.Errorf("failed parsing x=%q: %w", rec[0], err)
	}
	y, err := parseValue(rec[1])
	if err != nil {
		return chart.Point{}, fmt.Errorf("failed parsing y=%q: %w", rec[1], err)
	}
	return chart.Point{X: x, Y: y}, nil
}

func parseValue(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

// WriteSeries writes series as CSV in the format accepted by ReadSeries, heading
// included.
func WriteSeries(w io.Writer, series chart.Series) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write([]string{"x", "y"}); err != nil {
		return fmt.Errorf("failed writing headings: %w", err)
	}
	for _, p := range series {
		record := []string{
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed writing point: %w", err)
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
