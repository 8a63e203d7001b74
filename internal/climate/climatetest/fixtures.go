// Package climatetest writes synthetic city datasets for tests.
package climatetest

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/erenfn/climate-compare/internal/climate"
)

// Bases are the yearly mean temperatures of each city in its first year.
var Bases = map[string]float64{
	"toronto":  9.0,
	"quebec":   5.0,
	"halifax":  7.0,
	"winnipeg": 3.0,
}

// Scenario offsets added to the yearly mean in the predicted files.
const (
	LowOffset    = 0.2
	MedianOffset = 0.4
	HighOffset   = 0.8
)

// monthOffsets sum to zero so that the monthly readings of a year average
// to its yearly mean.
var monthOffsets = [12]float64{-6, -5, -4, -3, -2, -1, 1, 2, 3, 4, 5, 6}

// YearlyMean returns the mean written for year by ActualCSV(base, first, ...).
func YearlyMean(base float64, first, year int) float64 {
	return base + 0.1*float64(year-first)
}

// ActualCSV returns a monthly actual-data file covering [first, last].
func ActualCSV(base float64, first, last int) string {
	var b strings.Builder
	b.WriteString("station,name,year,month,mean_temp\n")
	for y := first; y <= last; y++ {
		mean := YearlyMean(base, first, y)
		for m, off := range monthOffsets {
			fmt.Fprintf(&b, "ST%d,station,%d,%d,%.2f\n", y, y, m+1, mean+off)
		}
	}
	return b.String()
}

// PredictedCSV returns a predicted-data file with one row per year from
// 2000 to last. Rows before first repeat the first year's values.
func PredictedCSV(base float64, first, last int) string {
	var b strings.Builder
	b.WriteString("year,period,low,low_min,low_max,median,median_min,median_max,high,high_min,high_max\n")
	for y := 2000; y <= last; y++ {
		mean := YearlyMean(base, first, max(y, first))
		fmt.Fprintf(&b, "%d,annual,%.2f,0,0,%.2f,0,0,%.2f,0,0\n",
			y, mean+LowOffset, mean+MedianOffset, mean+HighOffset)
	}
	return b.String()
}

// WriteCities writes actual data covering [first, last] and predicted data
// up to 2025 for all four cities into dir and returns their descriptors.
func WriteCities(tb testing.TB, dir string, first, last int) []climate.City {
	tb.Helper()
	cities := climate.Cities(dir)
	for _, c := range cities {
		base := Bases[c.Key()]
		WriteFile(tb, c.ActualPath, ActualCSV(base, first, last))
		WriteFile(tb, c.PredictedPath, PredictedCSV(base, first, 2025))
	}
	return cities
}

// WriteFile writes content to path or fails the test.
func WriteFile(tb testing.TB, path, content string) {
	tb.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
}
