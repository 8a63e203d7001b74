package climate

// Presenter consumes a finished Report: a chart, a table, a workbook.
type Presenter interface {
	Name() string
	Present(r *Report) error
}
