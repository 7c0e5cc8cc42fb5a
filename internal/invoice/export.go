package invoice

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vectralogic/invoice-extractor/internal/vision"
)

const exportSheet = "Invoice"

// ExportXLSX renders one extraction record as a single-sheet workbook and
// returns the download filename with the bytes. Null fields become empty
// cells.
func ExportXLSX(record vision.Record, baseName string) (string, []byte, error) {
	if baseName == "" {
		baseName = "invoice"
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return "", nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", nil, fmt.Errorf("removing default sheet: %w", err)
	}

	headers := []string{"Vendor", "Date", "Amount", "Currency"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, h)
	}

	values := []*string{record.Vendor, record.Date, record.Amount, record.Currency}
	for i, v := range values {
		if v == nil {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(exportSheet, cell, *v)
	}

	_ = f.SetColWidth(exportSheet, "A", "A", 32) // vendor
	_ = f.SetColWidth(exportSheet, "B", "D", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("xlsx write: %w", err)
	}

	return baseName + ".xlsx", buf.Bytes(), nil
}
