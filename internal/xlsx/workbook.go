package xlsx

import (
	"path/filepath"
	"strconv"
	"strings"
)

// CellKind tags the variant type of a cell value.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindNumber
	KindText
)

func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Cell is a single spreadsheet value. Exactly one of Number or Text is
// meaningful, selected by Kind.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// EmptyCell returns an empty cell value.
func EmptyCell() Cell {
	return Cell{Kind: KindEmpty}
}

// NumberCell returns a numeric cell value.
func NumberCell(v float64) Cell {
	return Cell{Kind: KindNumber, Number: v}
}

// TextCell returns a text cell value.
func TextCell(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// Value returns the cell value as an untyped Go value.
func (c Cell) Value() any {
	switch c.Kind {
	case KindNumber:
		return c.Number
	case KindText:
		return c.Text
	default:
		return nil
	}
}

// String renders the cell the way it would appear in a sheet.
func (c Cell) String() string {
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindText:
		return c.Text
	default:
		return ""
	}
}

// Sheet is a named rectangular grid of cells. Rows and columns are
// zero-based and stable across load and write.
type Sheet struct {
	Name string
	Rows [][]Cell
}

// CellCount returns the number of cells in the sheet grid.
func (s *Sheet) CellCount() int {
	n := 0
	for _, row := range s.Rows {
		n += len(row)
	}
	return n
}

// Workbook is an ordered collection of sheets loaded from one file.
type Workbook struct {
	Sheets []Sheet
}

// CellCount returns the total number of cells across all sheets.
func (wb *Workbook) CellCount() int {
	n := 0
	for i := range wb.Sheets {
		n += wb.Sheets[i].CellCount()
	}
	return n
}

// DefaultOutputPath derives the output file name for an input workbook,
// e.g. "report.xlsx" becomes "report_translated.xlsx".
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	if ext == "" {
		ext = ".xlsx"
	}
	return base + "_translated" + ext
}
