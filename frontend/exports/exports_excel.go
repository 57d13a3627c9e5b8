package exports

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"herbadmin/frontend/collective"
)

// writeCollectiveXLSX writes the collective order as a single-sheet
// workbook.
func writeCollectiveXLSX(w io.Writer, batchName string, rows []collective.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Sammelbestellung"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(sheetName, "A1", batchName); err != nil {
		return err
	}
	for i, header := range []string{"Kräuter", "Anzahl"} {
		cell := fmt.Sprintf("%s2", string(rune('A'+i)))
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for rowIdx, row := range rows {
		line := strconv.Itoa(rowIdx + 3)
		if err := f.SetCellValue(sheetName, "A"+line, row.HerbName); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, "B"+line, row.Quantity); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 40); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "B", "B", 12); err != nil {
		return err
	}

	f.DeleteSheet("Sheet1")

	return f.Write(w)
}
