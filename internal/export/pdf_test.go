package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"jobsreport/internal/report"
)

func TestWritePDF(t *testing.T) {
	rows := []report.ExportRow{
		{
			Date:          "2025-03-10",
			ProjectName:   "Cantiere Nord",
			ClientName:    "Impresa Gamma Srl",
			WorkerName:    "Mario Rossi",
			Hours:         8,
			PurchasePrice: decimal.NewFromInt(20),
			SellingPrice:  decimal.NewFromInt(50),
			Margin:        decimal.NewFromInt(240),
			Paid:          "No",
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, WritePDF(&buf, rows, "Mario Rossi"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWritePDF_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WritePDF(&buf, nil, "Mario Rossi"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
