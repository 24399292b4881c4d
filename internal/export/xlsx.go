package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/logging"
)

// SheetName is the worksheet written by RenderXLSX
const SheetName = "Scan Results"

// RenderXLSX renders the same table as RenderCSV into a workbook with a
// bold header row and an autofilter
func RenderXLSX(session domain.Session, cfg Config) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logging.Logger.Warn("Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header, rows := Table(session, cfg)
	if len(header) == 0 {
		return writeWorkbook(f)
	}

	for i, h := range header {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cellName, h); err != nil {
			return nil, err
		}
	}
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellStr(SheetName, cellName, value); err != nil {
				return nil, err
			}
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, bold); err != nil {
		return nil, err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetColWidth(SheetName, "A", lastCol, 20); err != nil {
		return nil, err
	}

	endCell, _ := excelize.CoordinatesToCellName(len(header), len(rows)+1)
	if err := f.AutoFilter(SheetName, "A1:"+endCell, []excelize.AutoFilterOptions{}); err != nil {
		return nil, fmt.Errorf("failed to add autofilter: %w", err)
	}

	return writeWorkbook(f)
}

// RenderXLSXFromTemplate fills an uploaded workbook. mappings maps a column
// name (model_id, serial_number, ...) to the spreadsheet column letter it
// is written to; rows start below the template's header row. Unmapped
// columns are skipped.
func RenderXLSXFromTemplate(session domain.Session, cfg Config, base io.Reader, mappings map[string]string) ([]byte, error) {
	f, err := excelize.OpenReader(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel template: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Logger.Warn("Failed to close workbook", "error", err)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("excel template has no sheets")
	}

	results := SortResults(session.ScanResults, cfg.SortBy)
	for _, col := range cfg.SelectedColumns() {
		letter := strings.ToUpper(strings.TrimSpace(mappings[string(col)]))
		if letter == "" {
			continue
		}
		colNum, err := excelize.ColumnNameToNumber(letter)
		if err != nil {
			return nil, fmt.Errorf("invalid column %q for %s: %w", letter, col, err)
		}
		for i, r := range results {
			cellName, _ := excelize.CoordinatesToCellName(colNum, i+2)
			if err := f.SetCellStr(sheet, cellName, cell(session, r, col, cfg.DateFormat)); err != nil {
				return nil, err
			}
		}
	}

	return writeWorkbook(f)
}

func writeWorkbook(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
