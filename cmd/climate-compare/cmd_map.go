package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erenfn/climate-compare/internal/climate"
	"github.com/erenfn/climate-compare/internal/report"
)

var mapFlags struct {
	year     int
	scenario string
	format   string
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Show actual and predicted map fill colors of every city for a year",
	RunE:  runMap,
}

func init() {
	f := mapCmd.Flags()
	f.IntVar(&mapFlags.year, "year", 0, "Year in [2003, 2019] (default DEFAULT_YEAR)")
	f.StringVar(&mapFlags.scenario, "scenario", "median", "Scenario shown on the predicted map: low, median or high")
	f.StringVar(&mapFlags.format, "format", "", "Table format: ascii or markdown (default TABLE_FORMAT)")
}

func runMap(cmd *cobra.Command, _ []string) error {
	year := mapFlags.year
	if year == 0 {
		year = cfg.DefaultYear
	}
	if err := climate.ValidateYear(year); err != nil {
		return err
	}
	sc, err := climate.ParseScenario(mapFlags.scenario)
	if err != nil {
		return err
	}
	mode, err := report.ParseMode(firstNonEmpty(mapFlags.format, cfg.TableFormat))
	if err != nil {
		return err
	}

	cities := climate.Cities(cfg.DatasetDir)
	snaps, _, err := climate.NewService().RunAll(cities, year, "", nil)
	if err != nil {
		return err
	}
	view, err := report.BuildMap(cities, snaps, sc)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.MapTable(view, mode))
	return nil
}
