package xlsx

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ErrFileNotFound indicates the input file does not exist or is unreadable.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrFileAccess indicates the output file could not be created or written.
var ErrFileAccess = errors.New("file access error")

// Load opens a workbook file and returns its full sheet/row/column
// structure. Every sheet grid is normalized to a rectangle so that cell
// positions are stable between load and write.
func Load(path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, sheetName := range f.GetSheetList() {
		sheet, err := loadSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", ErrInvalidFormat, sheetName, err)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

func loadSheet(f *excelize.File, sheetName string) (Sheet, error) {
	rawRows, err := f.GetRows(sheetName)
	if err != nil {
		return Sheet{}, err
	}

	// Rows come back ragged; pad to the widest row.
	maxCols := 0
	for _, row := range rawRows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	sheet := Sheet{Name: sheetName}
	for rowIdx, rawRow := range rawRows {
		row := make([]Cell, maxCols)
		for colIdx := 0; colIdx < maxCols; colIdx++ {
			raw := ""
			if colIdx < len(rawRow) {
				raw = rawRow[colIdx]
			}
			row[colIdx] = parseCell(f, sheetName, colIdx, rowIdx, raw)
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

// parseCell converts a raw cell value into the tagged variant. The stored
// cell type decides number vs text, so numeric-looking text stays text.
func parseCell(f *excelize.File, sheetName string, colIdx, rowIdx int, raw string) Cell {
	if raw == "" {
		return EmptyCell()
	}

	axis, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return TextCell(raw)
	}

	cellType, err := f.GetCellType(sheetName, axis)
	if err == nil {
		switch cellType {
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
			return TextCell(raw)
		}
	}

	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return NumberCell(n)
	}
	return TextCell(raw)
}
