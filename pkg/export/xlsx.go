package export

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the only sheet of an export
	SheetName = "Sheet1"
	// ContentType is the MIME type of an xlsx workbook
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// WriteXLSX writes a single unstyled sheet: one header row followed by rows.
// A nil cell is left empty.
func WriteXLSX(w io.Writer, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, name := range header {
		if err := setCell(f, col, 1, name); err != nil {
			return err
		}
	}
	for i, row := range rows {
		for col, v := range row {
			if v == nil {
				continue
			}
			if err := setCell(f, col, i+2, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(SheetName, cell, v)
}
