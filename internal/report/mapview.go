package report

import (
	"fmt"
	"image"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/erenfn/climate-compare/internal/climate"
)

// MapEntry is what the map renderer needs to fill one city's region on
// both the actual and the projected map.
type MapEntry struct {
	City           string      `json:"city"`
	Anchor         image.Point `json:"anchor"`
	ActualTemp     float64     `json:"actualTemp"`
	ActualColor    climate.RGB `json:"actualColor"`
	ProjectedTemp  float64     `json:"projectedTemp"`
	ProjectedColor climate.RGB `json:"projectedColor"`
}

// MapView is the pair of maps for one year and scenario.
type MapView struct {
	Year     int              `json:"year"`
	Scenario climate.Scenario `json:"scenario"`
	Label    string           `json:"label"`
	Entries  []MapEntry       `json:"entries"`
}

// BuildMap colors every city from its snapshot. Every city must have a
// snapshot, and all snapshots must be for the same year.
func BuildMap(cities []climate.City, snaps climate.Snapshots, sc climate.Scenario) (MapView, error) {
	if !sc.Valid() {
		return MapView{}, fmt.Errorf("invalid scenario %d", int(sc))
	}
	if err := snaps.Complete(cities); err != nil {
		return MapView{}, err
	}

	view := MapView{Scenario: sc, Label: sc.Label()}
	for i, c := range cities {
		snap := snaps[c.Key()]
		if i == 0 {
			view.Year = snap.Year
		} else if snap.Year != view.Year {
			return MapView{}, fmt.Errorf("%w: %s snapshot is for %d, want %d",
				climate.ErrIncompleteSnapshots, c.Name, snap.Year, view.Year)
		}
		projected := snap.Temp(sc)
		view.Entries = append(view.Entries, MapEntry{
			City:           c.Name,
			Anchor:         c.Anchor,
			ActualTemp:     snap.Actual,
			ActualColor:    climate.TempToRGB(snap.Actual),
			ProjectedTemp:  projected,
			ProjectedColor: climate.TempToRGB(projected),
		})
	}
	return view, nil
}

// MapTable renders the map view as a table of temperatures and fill colors.
func MapTable(v MapView, m Mode) string {
	w := newWriter(m)
	w.SetTitle("Actual vs Predicted (%s) Temperatures (%d)", v.Label, v.Year)
	w.AppendHeader(table.Row{"City", "Anchor", "Actual", "Actual Fill", "Predicted", "Predicted Fill"})
	for _, e := range v.Entries {
		w.AppendRow(table.Row{
			e.City,
			e.Anchor.String(),
			e.ActualTemp,
			e.ActualColor.Hex(),
			e.ProjectedTemp,
			e.ProjectedColor.Hex(),
		})
	}
	return render(w, m)
}
