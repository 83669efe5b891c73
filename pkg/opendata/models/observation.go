package models

import "encoding/json"

// Category identifies one of the four validation dimensions.
type Category string

const (
	CategoryFormat   Category = "format"
	CategoryFilename Category = "filename"
	CategoryColumns  Category = "columns"
	CategoryData     Category = "data"
)

// Categories lists every category in report order.
var Categories = []Category{CategoryFormat, CategoryFilename, CategoryColumns, CategoryData}

// Sentinel messages standing in for "nothing to report" in each category.
const (
	NoFormatObservations   = "No se encontraron observaciones de formato."
	NoFilenameObservations = "No se encontraron observaciones con el nombre del archivo."
	NoColumnObservations   = "No se encontraron observaciones de los nombres de las columnas."
	NoDataObservations     = "No se encontraron observaciones sobre los datos."
)

// Sentinel returns the "no observations" message for a category.
func (c Category) Sentinel() string {
	switch c {
	case CategoryFormat:
		return NoFormatObservations
	case CategoryFilename:
		return NoFilenameObservations
	case CategoryColumns:
		return NoColumnObservations
	case CategoryData:
		return NoDataObservations
	}
	return ""
}

// ObservationSet holds the findings of one validation run, per category.
type ObservationSet struct {
	Format   []string `json:"format"`
	Filename []string `json:"filename"`
	Columns  []string `json:"columns"`
	Data     []string `json:"data"`
}

// Get returns the observations of a category.
func (o ObservationSet) Get(c Category) []string {
	switch c {
	case CategoryFormat:
		return o.Format
	case CategoryFilename:
		return o.Filename
	case CategoryColumns:
		return o.Columns
	case CategoryData:
		return o.Data
	}
	return nil
}

// CategoryHasFindings reports whether a category carries substantive findings:
// more than one entry, or a single entry that is not the sentinel.
func (o ObservationSet) CategoryHasFindings(c Category) bool {
	obs := o.Get(c)
	switch len(obs) {
	case 0:
		return false
	case 1:
		return obs[0] != c.Sentinel()
	default:
		return true
	}
}

// HasFindings reports whether any category carries substantive findings.
func (o ObservationSet) HasFindings() bool {
	for _, c := range Categories {
		if o.CategoryHasFindings(c) {
			return true
		}
	}
	return false
}

// Count returns the number of substantive findings across all categories.
func (o ObservationSet) Count() int {
	n := 0
	for _, c := range Categories {
		if o.CategoryHasFindings(c) {
			n += len(o.Get(c))
		}
	}
	return n
}

// UnmarshalJSON accepts both the current keys and the legacy Spanish ones
// (formato, archivo, columnas, datos).
func (o *ObservationSet) UnmarshalJSON(data []byte) error {
	var raw struct {
		Format   []string `json:"format"`
		Filename []string `json:"filename"`
		Columns  []string `json:"columns"`
		Data     []string `json:"data"`
		Formato  []string `json:"formato"`
		Archivo  []string `json:"archivo"`
		Columnas []string `json:"columnas"`
		Datos    []string `json:"datos"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*o = ObservationSet{
		Format:   firstNonNil(raw.Format, raw.Formato),
		Filename: firstNonNil(raw.Filename, raw.Archivo),
		Columns:  firstNonNil(raw.Columns, raw.Columnas),
		Data:     firstNonNil(raw.Data, raw.Datos),
	}
	return nil
}

func firstNonNil(a, b []string) []string {
	if a != nil {
		return a
	}
	return b
}
