package climate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column positions of the actual-data file.
const (
	actualYearCol = 2
	actualTempCol = 4
)

// Column positions of the predicted-data file, indexed by Scenario.
var predictedCols = [scenarioCount]int{
	ScenarioLow:    2,
	ScenarioMedian: 5,
	ScenarioHigh:   8,
}

// ReadActual reads a monthly actual-temperature CSV file into yearly means.
func ReadActual(path string) (YearlySeries, error) {
	f, err := openDataset(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	series, err := ParseActual(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}

// ParseActual parses a header row followed by monthly rows.
func ParseActual(r io.Reader) (YearlySeries, error) {
	rows := newRowReader(r)
	if err := rows.skipHeader(); err != nil {
		return nil, err
	}

	var readings []MonthlyReading
	for {
		row, err := rows.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		year, err := rows.intField(row, actualYearCol)
		if err != nil {
			return nil, err
		}
		temp, err := rows.floatField(row, actualTempCol)
		if err != nil {
			return nil, err
		}
		readings = append(readings, MonthlyReading{Year: year, TemperatureC: temp})
	}

	if len(readings) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrDataFormat)
	}
	return AggregateMonthly(readings)
}

// ReadPredicted reads a projected-temperature CSV file, aligned to the
// years of actual.
func ReadPredicted(path string, actual YearlySeries) (PredictedSeries, error) {
	f, err := openDataset(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	series, err := ParsePredicted(f, actual)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}

// ParsePredicted parses a header row followed by one row per calendar year
// starting at 2000. Leading rows before the first year of actual are
// skipped, then exactly actual.Len() rows are read; later rows are ignored.
func ParsePredicted(r io.Reader, actual YearlySeries) (PredictedSeries, error) {
	if actual.Len() == 0 {
		return nil, fmt.Errorf("%w: empty actual series", ErrDataFormat)
	}
	skip := actual[0].Year - predictedBaseYear
	if skip < 0 {
		return nil, fmt.Errorf("%w: actual series starts in %d, before %d", ErrDataFormat, actual[0].Year, predictedBaseYear)
	}

	rows := newRowReader(r)
	if err := rows.skipHeader(); err != nil {
		return nil, err
	}
	for i := 0; i < skip; i++ {
		if _, err := rows.next(); err != nil {
			return nil, rows.short(err, actual[0].Year)
		}
	}

	series := make(PredictedSeries, 0, actual.Len())
	for _, yv := range actual {
		row, err := rows.next()
		if err != nil {
			return nil, rows.short(err, yv.Year)
		}

		p := ProjectedYear{Year: yv.Year}
		for _, sc := range Scenarios() {
			v, err := rows.floatField(row, predictedCols[sc])
			if err != nil {
				return nil, err
			}
			p.Temps[sc] = v
		}
		series = append(series, p)
	}
	return series, nil
}

func openDataset(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	return f, nil
}

// rowReader wraps csv.Reader and tracks the current line for error messages.
type rowReader struct {
	csv  *csv.Reader
	line int
}

func newRowReader(r io.Reader) *rowReader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &rowReader{csv: cr}
}

func (r *rowReader) next() ([]string, error) {
	row, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: line %d: %v", ErrDataFormat, r.line+1, err)
	}
	r.line++
	return row, nil
}

func (r *rowReader) skipHeader() error {
	if _, err := r.next(); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: missing header row", ErrDataFormat)
		}
		return err
	}
	return nil
}

// short converts an unexpected end of input into an ErrDataFormat naming
// the year that had no row.
func (r *rowReader) short(err error, year int) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: no row for year %d after line %d", ErrDataFormat, year, r.line)
	}
	return err
}

func (r *rowReader) field(row []string, col int) (string, error) {
	if col >= len(row) {
		return "", fmt.Errorf("%w: line %d: has %d columns, need column %d", ErrDataFormat, r.line, len(row), col)
	}
	return strings.TrimSpace(row[col]), nil
}

func (r *rowReader) intField(row []string, col int) (int, error) {
	s, err := r.field(row, col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: column %d: %v", ErrDataFormat, r.line, col, err)
	}
	return v, nil
}

func (r *rowReader) floatField(row []string, col int) (float64, error) {
	s, err := r.field(row, col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: column %d: %v", ErrDataFormat, r.line, col, err)
	}
	return v, nil
}
