package parser

import (
	"bytes"

	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
	"github.com/xuri/excelize/v2"
)

// LoadSpreadsheet parses an xlsx workbook. The first sheet holding data
// becomes the dataset; every sheet with data is counted so the format
// check can flag workbooks carrying more than one.
func LoadSpreadsheet(data []byte) *models.Dataset {
	src := models.Source{
		Format:    models.FormatSpreadsheet,
		ValidUTF8: true,
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		src.LoadError = NewLoadError(models.FormatSpreadsheet, "open", err).Error()
		return &models.Dataset{Source: src}
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	src.Sheets = len(sheetList)

	var table [][]string
	for _, sheetName := range sheetList {
		rows, err := ExtractRows(f, sheetName)
		if err != nil || !hasData(rows) {
			// Unreadable sheets are treated as empty
			continue
		}
		src.DataSheets++
		if table == nil {
			table = cropToBounds(rows)
		}
	}

	return build(table, src)
}

// ExtractRows returns the formatted cell text of a sheet, row by row.
func ExtractRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, NewLoadError(models.FormatSpreadsheet, "sheet", err)
	}
	return rows, nil
}
