package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Write saves a workbook to path, creating or overwriting the file. Sheet
// names and cell positions match the grid exactly. Text cells are written
// with SetCellStr so a translated value is never reinterpreted as a number.
func Write(wb *Workbook, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		if i == 0 {
			// Rename the default sheet instead of adding a new one.
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrFileAccess, path, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrFileAccess, path, err)
			}
		}
		if err := writeSheet(f, sheet); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFileAccess, path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileAccess, path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet *Sheet) error {
	for rowIdx, row := range sheet.Rows {
		for colIdx, cell := range row {
			if cell.Kind == KindEmpty {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			switch cell.Kind {
			case KindNumber:
				if err := f.SetCellValue(sheet.Name, axis, cell.Number); err != nil {
					return err
				}
			case KindText:
				if err := f.SetCellStr(sheet.Name, axis, cell.Text); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
