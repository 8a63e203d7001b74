package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/erenfn/climate-compare/internal/climate"
)

// WorkbookPresenter saves the comparison table as an .xlsx workbook.
type WorkbookPresenter struct {
	dir string
}

// NewWorkbookPresenter creates a WorkbookPresenter writing into dir.
func NewWorkbookPresenter(dir string) *WorkbookPresenter {
	return &WorkbookPresenter{dir: dir}
}

func (p *WorkbookPresenter) Name() string {
	return "workbook"
}

// Path returns the file the workbook of r is written to.
func (p *WorkbookPresenter) Path(r *climate.Report) string {
	return filepath.Join(p.dir, r.City.Key()+"_comparison.xlsx")
}

func (p *WorkbookPresenter) Present(r *climate.Report) error {
	f, err := Workbook(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create workbook dir: %w", err)
	}
	if err := f.SaveAs(p.Path(r)); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// Workbook builds a single-sheet workbook holding the comparison table of r.
func Workbook(r *climate.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := r.City.Name
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	header := make([]any, 0, len(ComparisonHeader()))
	for _, h := range ComparisonHeader() {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	for i, row := range ComparisonRows(r) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
