package report_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/erenfn/climate-compare/internal/climate"
	"github.com/erenfn/climate-compare/internal/report"
)

func testReport(t *testing.T) *climate.Report {
	t.Helper()
	city, err := climate.LookupCity(climate.Cities("data"), "toronto")
	if err != nil {
		t.Fatalf("LookupCity: %v", err)
	}
	actual := climate.YearlySeries{{Year: 2003, Value: 8}, {Year: 2004, Value: 9}}
	predicted := climate.PredictedSeries{
		{Year: 2003, Temps: [3]float64{8.8, 9.2, 10}},
		{Year: 2004, Temps: [3]float64{9.9, 9.45, 9.9}},
	}
	comparisons, err := climate.Compare(actual, predicted)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	return &climate.Report{
		RunID:       "run-1",
		City:        city,
		Year:        2004,
		Actual:      actual,
		Comparisons: comparisons,
		GeneratedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestComparisonRows(t *testing.T) {
	got := report.ComparisonRows(testReport(t))
	want := [][]any{
		{2003, 8.0, 8.8, 10.0, 9.2, 15.0, 10.0, 25.0},
		{2004, 9.0, 9.9, 10.0, 9.45, 5.0, 9.9, 10.0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComparisonRows mismatch (-want +got):\n%s", diff)
	}
}

func TestComparisonTable(t *testing.T) {
	r := testReport(t)

	ascii := report.ComparisonTable(r, report.ASCII)
	for _, s := range []string{"Actual vs Predicted Temperature of Toronto", "RCP 2.6", "RCP 8.5", "2004", "9.45"} {
		if !strings.Contains(ascii, s) {
			t.Errorf("ASCII table missing %q:\n%s", s, ascii)
		}
	}

	md := report.ComparisonTable(r, report.Markdown)
	if !strings.Contains(md, "| 2003 |") {
		t.Errorf("expected a markdown row for 2003:\n%s", md)
	}
}

func TestTablePresenter(t *testing.T) {
	var b strings.Builder
	p := report.NewTablePresenter(&b, report.ASCII)
	if err := p.Present(testReport(t)); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if !strings.Contains(b.String(), "% Difference of RCP 4.5 and Actual Temp") {
		t.Errorf("unexpected output:\n%s", b.String())
	}
}

func TestParseMode(t *testing.T) {
	if m, err := report.ParseMode("Markdown"); err != nil || m != report.Markdown {
		t.Errorf("ParseMode(Markdown) = %v, %v", m, err)
	}
	if m, err := report.ParseMode(""); err != nil || m != report.ASCII {
		t.Errorf("ParseMode(\"\") = %v, %v", m, err)
	}
	if _, err := report.ParseMode("html"); err == nil {
		t.Error("expected an error for html")
	}
}

func TestChartPresenter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	p := report.NewChartPresenter(dir)
	r := testReport(t)

	if err := p.Present(r); err != nil {
		t.Fatalf("Present: %v", err)
	}
	info, err := os.Stat(p.Path(r))
	if err != nil {
		t.Fatalf("stat chart: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected a non-empty PNG")
	}
}

func TestWorkbookPresenter(t *testing.T) {
	dir := t.TempDir()
	p := report.NewWorkbookPresenter(dir)
	r := testReport(t)

	if err := p.Present(r); err != nil {
		t.Fatalf("Present: %v", err)
	}

	f, err := excelize.OpenFile(p.Path(r))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Toronto", "B1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if header != "Actual Temperature" {
		t.Errorf("B1 = %q, want Actual Temperature", header)
	}
	year, err := f.GetCellValue("Toronto", "A3")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if year != "2004" {
		t.Errorf("A3 = %q, want 2004", year)
	}
}

func fullSnapshots(cities []climate.City, year int, temps ...float64) climate.Snapshots {
	snaps := climate.Snapshots{}
	for i, c := range cities {
		t := temps[i]
		snaps[c.Key()] = climate.Snapshot{Year: year, Actual: t, Projected: [3]float64{t + 1, t + 2, t + 30}}
	}
	return snaps
}

func TestBuildMap(t *testing.T) {
	cities := climate.Cities("data")
	snaps := fullSnapshots(cities, 2010, 10, 4, 0, -5)

	view, err := report.BuildMap(cities, snaps, climate.ScenarioHigh)
	if err != nil {
		t.Fatalf("BuildMap: %v", err)
	}
	if view.Year != 2010 || view.Label != "RCP 8.5" {
		t.Errorf("unexpected view header %d %q", view.Year, view.Label)
	}
	if len(view.Entries) != len(cities) {
		t.Fatalf("expected %d entries, got %d", len(cities), len(view.Entries))
	}

	toronto := view.Entries[0]
	if toronto.City != "Toronto" || toronto.Anchor != cities[0].Anchor {
		t.Errorf("unexpected entry %+v", toronto)
	}
	if toronto.ActualColor != climate.TempToRGB(10) {
		t.Errorf("actual color = %v, want %v", toronto.ActualColor, climate.TempToRGB(10))
	}
	if toronto.ProjectedTemp != 40 || toronto.ProjectedColor != (climate.RGB{}) {
		t.Errorf("projected = %v %v, want 40 and black", toronto.ProjectedTemp, toronto.ProjectedColor)
	}

	out := report.MapTable(view, report.ASCII)
	if !strings.Contains(out, "Winnipeg") || !strings.Contains(out, "#fafafa") {
		t.Errorf("unexpected map table:\n%s", out)
	}
}

func TestBuildMap_Incomplete(t *testing.T) {
	cities := climate.Cities("data")
	snaps := fullSnapshots(cities, 2010, 1, 2, 3, 4)
	delete(snaps, "halifax")

	_, err := report.BuildMap(cities, snaps, climate.ScenarioLow)
	if !errors.Is(err, climate.ErrIncompleteSnapshots) {
		t.Fatalf("expected ErrIncompleteSnapshots, got %v", err)
	}
}

func TestBuildMap_MixedYears(t *testing.T) {
	cities := climate.Cities("data")
	snaps := fullSnapshots(cities, 2010, 1, 2, 3, 4)
	s := snaps["quebec"]
	s.Year = 2011
	snaps["quebec"] = s

	_, err := report.BuildMap(cities, snaps, climate.ScenarioLow)
	if !errors.Is(err, climate.ErrIncompleteSnapshots) {
		t.Fatalf("expected ErrIncompleteSnapshots, got %v", err)
	}
}
