// Package excel renders export tables as .xlsx workbooks using excelize.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/application/export"
)

var _ export.TableRenderer = (*ExcelizeReportGenerator)(nil)

// ExcelizeReportGenerator implements the export Excel renderer.
type ExcelizeReportGenerator struct{}

// NewExcelizeReportGenerator builds the generator.
func NewExcelizeReportGenerator() *ExcelizeReportGenerator { return &ExcelizeReportGenerator{} }

// Render produces the workbook bytes for a table: a title row, a styled
// header row and one row per record on a single sheet.
func (g *ExcelizeReportGenerator) Render(_ context.Context, table dto.ExportTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Records"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel: new sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for i := range table.Headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, col, col, 22)
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#105E4A"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	_ = f.SetCellValue(sheet, "A1", table.Title)
	_ = f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	_ = f.SetCellValue(sheet, "A2", table.Subtitle)

	headerRow := 4
	for i, h := range table.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		_ = f.SetCellValue(sheet, cell, h)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for r, rowCells := range table.Rows {
		for c, val := range rowCells {
			cell, _ := excelize.CoordinatesToCellName(c+1, headerRow+1+r)
			_ = f.SetCellValue(sheet, cell, val)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
