package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"jobsreport/internal/report"
)

func TestWriteExcel(t *testing.T) {
	rows := []report.ExportRow{
		{
			Date:          "2025-03-10",
			ProjectName:   "Cantiere Nord",
			ClientName:    "Impresa Gamma Srl",
			Description:   "Posa impianti",
			WorkerName:    "Mario Rossi",
			Hours:         8,
			PurchasePrice: decimal.NewFromInt(20),
			Extra:         decimal.NewFromInt(15),
			SellingPrice:  decimal.NewFromInt(50),
			Margin:        decimal.NewFromInt(240),
			Paid:          "No",
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteExcel(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer f.Close()

	const sheet = "Work Summary"
	header, err := f.GetCellValue(sheet, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Date", header)

	project, err := f.GetCellValue(sheet, "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Cantiere Nord", project)

	margin, err := f.GetCellValue(sheet, "K2")
	assert.NoError(t, err)
	assert.Equal(t, "240", margin)
}

func TestWriteExcel_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteExcel(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Work Summary")
	assert.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
