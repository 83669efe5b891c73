package checks

import (
	"fmt"
	"strings"

	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
)

// Format checks how the file was encoded and structured: whether it could be
// read, whether delimited text is UTF-8, whether any column lacks a name and
// whether a workbook carries more than one sheet with data.
func Format(ds *models.Dataset) []string {
	if ds == nil {
		return []string{models.NoFormatObservations}
	}

	var obs []string
	src := ds.Source

	if src.LoadError != "" {
		obs = append(obs, fmt.Sprintf("No fue posible leer el archivo: %s", src.LoadError))
	}

	if src.Format == models.FormatDelimited && !src.ValidUTF8 {
		obs = append(obs, "La codificación no es la correcta, debe ser 'UTF-8'.")
	}

	if !ds.IsEmpty() {
		if n := countBlankNames(ds.Columns); n > 0 {
			obs = append(obs, fmt.Sprintf("Se encuentran %d variables sin nombre. Revisar el contenido de estas variables.", n))
		}
	}

	if src.Format == models.FormatSpreadsheet && src.DataSheets > 1 {
		obs = append(obs, fmt.Sprintf("El archivo contiene %d hojas con datos; debe contener una sola hoja.", src.DataSheets))
	}

	return orSentinel(obs, models.NoFormatObservations)
}

// countBlankNames counts columns whose header is missing or only whitespace.
// A name with surrounding spaces but other content is not blank.
func countBlankNames(cols []models.Column) int {
	n := 0
	for _, c := range cols {
		if c.Null || strings.TrimSpace(c.Name) == "" {
			n++
		}
	}
	return n
}
