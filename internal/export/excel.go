package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"jobsreport/internal/report"
)

// excelHeaders matches the column order of ExportRow.
var excelHeaders = []string{
	"Date", "Project", "Client", "Activity", "Worker", "Hours",
	"Purchase (€/h)", "Extra (€)", "Extra Notes", "Selling (€/h)",
	"Margin (€)", "Paid",
}

// WriteExcel renders the export rows as a single-sheet workbook.
func WriteExcel(w io.Writer, rows []report.ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Work Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, r := range rows {
		values := []interface{}{
			r.Date,
			r.ProjectName,
			r.ClientName,
			r.Description,
			r.WorkerName,
			r.Hours,
			r.PurchasePrice.InexactFloat64(),
			r.Extra.InexactFloat64(),
			r.ExtraDescription,
			r.SellingPrice.InexactFloat64(),
			r.Margin.InexactFloat64(),
			r.Paid,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
