package xlsexport

import "github.com/xuri/excelize/v2"

const fontFamily = "Times New Roman"

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

// writeRow значения пишутся подряд начиная с первой колонки
func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for idx, value := range values {
		if value == nil {
			continue
		}
		if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
			return err
		}
	}
	return nil
}

func styleRange(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int, style *excelize.Style) error {
	styleID, err := f.NewStyle(style)
	if err != nil {
		return err
	}
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, styleID)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	err := styleRange(f, sheet, 1, row, len(headers), row, &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return row, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, 25); err != nil {
		return row, err
	}
	values := make([]interface{}, 0, len(headers))
	for _, header := range headers {
		values = append(values, header)
	}
	if err = writeRow(f, sheet, row, values...); err != nil {
		return row, err
	}
	// шапка остается видимой при прокрутке
	err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      row,
		TopLeftCell: "A" + itoa(row+1),
		ActivePane:  "bottomLeft",
	})
	return row, err
}

func applyDataCellStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int) error {
	if rowTo < rowFrom {
		return nil
	}
	return styleRange(f, sheet, colFrom, rowFrom, colTo, rowTo, &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Font:      &excelize.Font{Family: fontFamily, Size: 11},
	})
}
