package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erenfn/climate-compare/internal/climate"
	"github.com/erenfn/climate-compare/internal/report"
)

var reportFlags struct {
	city     string
	year     int
	scenario string
	format   string
	chart    bool
	xlsx     bool
	outDir   string
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compare one city's projections and show the map colors for a year",
	RunE:  runReport,
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportFlags.city, "city", "", "City to tabulate: toronto, quebec, halifax or winnipeg (required)")
	f.IntVar(&reportFlags.year, "year", 0, "Map year in [2003, 2019] (default DEFAULT_YEAR)")
	f.StringVar(&reportFlags.scenario, "scenario", "median", "Scenario shown on the predicted map: low, median or high")
	f.StringVar(&reportFlags.format, "format", "", "Table format: ascii or markdown (default TABLE_FORMAT)")
	f.BoolVar(&reportFlags.chart, "chart", false, "Save a PNG line chart")
	f.BoolVar(&reportFlags.xlsx, "xlsx", false, "Save an .xlsx workbook")
	f.StringVar(&reportFlags.outDir, "out", "", "Output directory for charts and workbooks (default OUTPUT_DIR)")

	_ = reportCmd.MarkFlagRequired("city")
}

func runReport(cmd *cobra.Command, _ []string) error {
	year := reportFlags.year
	if year == 0 {
		year = cfg.DefaultYear
	}
	if err := climate.ValidateYear(year); err != nil {
		return err
	}
	sc, err := climate.ParseScenario(reportFlags.scenario)
	if err != nil {
		return err
	}
	mode, err := report.ParseMode(firstNonEmpty(reportFlags.format, cfg.TableFormat))
	if err != nil {
		return err
	}

	cities := climate.Cities(cfg.DatasetDir)
	if _, err := climate.LookupCity(cities, reportFlags.city); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	outDir := firstNonEmpty(reportFlags.outDir, cfg.OutputDir)
	presenters := []climate.Presenter{report.NewTablePresenter(out, mode)}
	if reportFlags.chart {
		presenters = append(presenters, report.NewChartPresenter(outDir))
	}
	if reportFlags.xlsx {
		presenters = append(presenters, report.NewWorkbookPresenter(outDir))
	}

	svc := climate.NewService(presenters...)
	snaps, _, err := svc.RunAll(cities, year, reportFlags.city, nil)
	if err != nil {
		return err
	}

	view, err := report.BuildMap(cities, snaps, sc)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, report.MapTable(view, mode))
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
