package checks

import (
	"strings"

	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
)

// MaxColumnWords is the largest number of underscore-separated words a column name may have.
const MaxColumnWords = 5

// columnRule flags a single column name. Rules run in declaration order and
// each yields at most one aggregated finding.
type columnRule struct {
	prefix string
	match  func(name string) bool
}

var columnRules = []columnRule{
	{
		prefix: "Nombre de columnas con caracteres especiales: ",
		match:  hasDiacritics,
	},
	{
		prefix: "Nombre de columnas con más de 5 palabras: ",
		match:  func(name string) bool { return len(underscoreTokens(name)) > MaxColumnWords },
	},
	{
		prefix: "Nombre de columnas no permitido, 'id' no es descriptivo: ",
		match:  func(name string) bool { return strings.EqualFold(strings.TrimSpace(name), "id") },
	},
	{
		prefix: "Nombre de columnas con sufijo numérico de un dígito, usar dos dígitos (01, 02, ...): ",
		match:  hasSingleDigitSuffix,
	},
	{
		prefix: "Nombre de columnas con preposiciones o artículos: ",
		match:  func(name string) bool { return len(reservedIn(wordTokens(name))) > 0 },
	},
	{
		prefix: "Nombre de columnas con espacios o saltos de línea: ",
		match:  func(name string) bool { return strings.ContainsAny(name, " \n\r") },
	},
}

// Columns checks the column names of the dataset. Columns without a header
// cell are skipped; they are reported by the format check instead.
func Columns(ds *models.Dataset) []string {
	if ds.IsEmpty() {
		return []string{models.NoColumnObservations}
	}

	var obs []string
	for _, rule := range columnRules {
		var offending []string
		for _, c := range ds.Columns {
			if c.Null {
				continue
			}
			if rule.match(c.Name) {
				offending = append(offending, c.Name)
			}
		}
		if len(offending) > 0 {
			obs = append(obs, rule.prefix+joinNames(offending))
		}
	}

	return orSentinel(obs, models.NoColumnObservations)
}

// hasSingleDigitSuffix reports whether name ends in exactly one digit.
// "monto_1" and "monto1" match, "monto_01" and "monto10" do not.
func hasSingleDigitSuffix(name string) bool {
	n := len(name)
	if n == 0 || !isASCIIDigit(name[n-1]) {
		return false
	}
	if n == 1 {
		return false
	}
	return !isASCIIDigit(name[n-2])
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
