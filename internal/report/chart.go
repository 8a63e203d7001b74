package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/erenfn/climate-compare/internal/climate"
)

// ChartPresenter saves a line chart of actual and projected temperatures as PNG.
type ChartPresenter struct {
	dir string
}

// NewChartPresenter creates a ChartPresenter writing into dir.
func NewChartPresenter(dir string) *ChartPresenter {
	return &ChartPresenter{dir: dir}
}

func (p *ChartPresenter) Name() string {
	return "chart"
}

// Path returns the file the chart of r is written to.
func (p *ChartPresenter) Path(r *climate.Report) string {
	return filepath.Join(p.dir, r.City.Key()+"_temperatures.png")
}

func (p *ChartPresenter) Present(r *climate.Report) error {
	pl, err := Chart(r)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create chart dir: %w", err)
	}
	path := p.Path(r)
	if err := pl.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

// Chart builds the plot of r: one line per scenario plus the actual series.
func Chart(r *climate.Report) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = Title(r)
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Years"
	p.Y.Label.Text = "Temperature (Celsius)"
	p.Add(plotter.NewGrid())

	for i, sc := range climate.Scenarios() {
		if err := addSeries(p, i, sc.Label()+" Predicted Temperature", r.Comparison(sc).Projected); err != nil {
			return nil, err
		}
	}
	if err := addSeries(p, len(climate.Scenarios()), "Actual Temperature", r.Actual); err != nil {
		return nil, err
	}
	return p, nil
}

func addSeries(p *plot.Plot, idx int, name string, s climate.YearlySeries) error {
	pts := make(plotter.XYs, s.Len())
	for i, yv := range s {
		pts[i].X = float64(yv.Year)
		pts[i].Y = yv.Value
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	line.Color = plotutil.Color(idx)
	line.Width = vg.Points(2)
	points.GlyphStyle.Color = plotutil.Color(idx)
	points.GlyphStyle.Shape = plotutil.Shape(idx)

	p.Add(line, points)
	p.Legend.Add(name, line, points)
	return nil
}
