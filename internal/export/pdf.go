package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"jobsreport/internal/report"
)

var pdfHeaders = []string{
	"Date", "Project", "Client", "Activity", "Worker", "Hours",
	"Purchase", "Extra", "Extra Notes", "Selling", "Margin", "Paid",
}

// Column widths in mm over a landscape A4 page (277mm usable).
var pdfColWidths = []float64{18, 32, 30, 35, 28, 14, 20, 18, 26, 20, 20, 16}

// WritePDF renders the export rows as a landscape A4 table with a
// title header naming the operator and generation time.
func WritePDF(w io.Writer, rows []report.ExportRow, operatorName string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 64, 175)
	pdf.Text(14, 20, "Work Summary")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(14, 28, fmt.Sprintf("Operator: %s", operatorName))
	pdf.Text(14, 33, fmt.Sprintf("Generated on: %s", time.Now().Format("2006-01-02 15:04")))

	pdf.SetY(40)
	pdf.SetX(10)

	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(30, 64, 175)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range pdfHeaders {
		pdf.CellFormat(pdfColWidths[i], 6, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(255, 255, 255)
	for _, r := range rows {
		pdf.SetX(10)
		cells := []string{
			r.Date,
			r.ProjectName,
			r.ClientName,
			r.Description,
			r.WorkerName,
			fmt.Sprintf("%.2f", r.Hours),
			"EUR " + r.PurchasePrice.StringFixed(2),
			"EUR " + r.Extra.StringFixed(2),
			r.ExtraDescription,
			"EUR " + r.SellingPrice.StringFixed(2),
			"EUR " + r.Margin.StringFixed(2),
			r.Paid,
		}
		for i, cell := range cells {
			pdf.CellFormat(pdfColWidths[i], 5, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
