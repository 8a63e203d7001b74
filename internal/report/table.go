package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/erenfn/climate-compare/internal/climate"
)

// Mode controls the table output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ParseMode accepts "ascii" or "markdown".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ascii":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return ASCII, fmt.Errorf("unknown table format %q (want ascii or markdown)", s)
	}
}

func newWriter(m Mode) table.Writer {
	w := table.NewWriter()
	style := table.StyleDefault
	if m == ASCII {
		style = table.StyleLight
	}
	// Keep headers as written; the default style upper-cases them.
	style.Format.Header = text.FormatDefault
	w.SetStyle(style)
	return w
}

func render(w table.Writer, m Mode) string {
	if m == Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}

// ComparisonHeader returns the column headers of the comparison table.
func ComparisonHeader() []string {
	cols := []string{"Year", "Actual Temperature"}
	for _, sc := range climate.Scenarios() {
		cols = append(cols, sc.Label(), fmt.Sprintf("%% Difference of %s and Actual Temp", sc.Label()))
	}
	return cols
}

// ComparisonRows returns one row per year: year, actual, then projected
// value and deviation for each scenario.
func ComparisonRows(r *climate.Report) [][]any {
	rows := make([][]any, 0, r.Actual.Len())
	for i, yv := range r.Actual {
		row := []any{yv.Year, yv.Value}
		for _, sc := range climate.Scenarios() {
			c := r.Comparison(sc)
			row = append(row, c.Projected[i].Value, c.Deviation[i].Value)
		}
		rows = append(rows, row)
	}
	return rows
}

// Title returns the heading shared by the table and the chart.
func Title(r *climate.Report) string {
	return "Actual vs Predicted Temperature of " + r.City.Name
}

// ComparisonTable renders the report as a table.
func ComparisonTable(r *climate.Report, m Mode) string {
	w := newWriter(m)
	w.SetTitle("%s", Title(r))

	header := table.Row{}
	for _, h := range ComparisonHeader() {
		header = append(header, h)
	}
	w.AppendHeader(header)

	for _, row := range ComparisonRows(r) {
		w.AppendRow(table.Row(row))
	}

	cfgs := make([]table.ColumnConfig, 0, len(header))
	for i := 2; i <= len(header); i++ {
		cfgs = append(cfgs, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}
	w.SetColumnConfigs(cfgs)

	return render(w, m)
}

// TablePresenter writes the comparison table of every report it receives.
type TablePresenter struct {
	out  io.Writer
	mode Mode
}

// NewTablePresenter creates a TablePresenter writing to out.
func NewTablePresenter(out io.Writer, mode Mode) *TablePresenter {
	return &TablePresenter{out: out, mode: mode}
}

func (p *TablePresenter) Name() string {
	return "table"
}

func (p *TablePresenter) Present(r *climate.Report) error {
	_, err := fmt.Fprintln(p.out, ComparisonTable(r, p.mode))
	return err
}
