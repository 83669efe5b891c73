package checks

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ISODateTimeLayout is the only accepted form for values in date columns.
const ISODateTimeLayout = "2006-01-02T15:04:05"

var isoDateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`)

// thousandsPattern matches digits grouped in threes by commas, e.g. "1,500.25".
var thousandsPattern = regexp.MustCompile(`^[-+]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// dataRule evaluates one column and returns a finding, or "" when the column passes.
type dataRule struct {
	name    string
	applies func(c models.Column, opts Options) bool
	eval    func(c models.Column, opts Options) string
}

var dataRules = []dataRule{
	{name: "whitespace", applies: isText, eval: checkSurroundingSpace},
	{name: "date", applies: isDateColumn, eval: checkISODates},
	{name: "numeric", applies: isNumeric, eval: checkNumberNotation},
	{name: "decimal comma", applies: isNumeric, eval: checkDecimalComma},
	{name: "categories", applies: isText, eval: checkCaseDuplicates},
}

// Data checks cell content. Rules run in order and, within a rule, columns
// are visited left to right. A column whose evaluation fails is skipped.
func Data(ds *models.Dataset, opts Options) []string {
	if ds.IsEmpty() {
		return []string{models.NoDataObservations}
	}

	log := opts.logger()
	var obs []string
	for _, rule := range dataRules {
		for _, col := range ds.Columns {
			if finding := evalColumn(log, rule, col, opts); finding != "" {
				obs = append(obs, finding)
			}
		}
	}

	return orSentinel(obs, models.NoDataObservations)
}

// evalColumn runs a rule against a column, recovering from any failure.
func evalColumn(log *zap.Logger, rule dataRule, col models.Column, opts Options) (finding string) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug("skipping column",
				zap.String("rule", rule.name),
				zap.String("column", col.Name),
				zap.Any("panic", r))
			finding = ""
		}
	}()

	if !rule.applies(col, opts) {
		return ""
	}
	return rule.eval(col, opts)
}

func isText(c models.Column, _ Options) bool {
	return c.Kind == models.KindText
}

func isNumeric(c models.Column, _ Options) bool {
	return c.Kind.IsNumeric()
}

func isDateColumn(c models.Column, opts Options) bool {
	name := strings.ToLower(c.Name)
	for _, tok := range opts.DateColumnTokens {
		if tok != "" && strings.Contains(name, strings.ToLower(tok)) {
			return true
		}
	}
	return false
}

func checkSurroundingSpace(c models.Column, _ Options) string {
	for _, v := range c.Values() {
		if hasSurroundingSpace(v) {
			return fmt.Sprintf("La columna %s tiene valores con espacios al inicio o final.", c.Name)
		}
	}
	return ""
}

func checkISODates(c models.Column, opts Options) string {
	var bad []string
	for _, v := range c.Values() {
		if strings.TrimSpace(v) == "" || IsISODateTime(v) {
			continue
		}
		bad = append(bad, v)
	}
	if len(bad) == 0 {
		return ""
	}
	return fmt.Sprintf("La columna %s tiene fechas que no cumplen el formato ISO 8601 (AAAA-MM-DDTHH:MM:SS): %s",
		c.Name, joinNames(examples(bad, opts.maxExamples())))
}

func checkNumberNotation(c models.Column, opts Options) string {
	var bad []string
	for _, v := range c.Values() {
		if hasNumberDecoration(v) {
			bad = append(bad, v)
		}
	}
	if len(bad) == 0 {
		return ""
	}
	return fmt.Sprintf("La columna %s tiene valores numéricos con separadores de miles, símbolos de moneda o espacios: %s",
		c.Name, joinNames(examples(bad, opts.maxExamples())))
}

func checkDecimalComma(c models.Column, opts Options) string {
	var bad []string
	for _, v := range c.Values() {
		if hasDecimalComma(v) {
			bad = append(bad, v)
		}
	}
	if len(bad) == 0 {
		return ""
	}
	return fmt.Sprintf("La columna %s tiene valores numéricos con coma decimal; usar punto decimal: %s",
		c.Name, joinNames(examples(bad, opts.maxExamples())))
}

// checkCaseDuplicates compares the number of distinct values with the number
// of distinct lower-cased values; when they differ, the variant groups are listed.
func checkCaseDuplicates(c models.Column, opts Options) string {
	lower := cases.Lower(language.Spanish)

	var order []string
	variants := make(map[string][]string)
	seen := make(map[string]bool)
	for _, v := range c.Values() {
		if seen[v] {
			continue
		}
		seen[v] = true
		key := lower.String(v)
		if _, ok := variants[key]; !ok {
			order = append(order, key)
		}
		variants[key] = append(variants[key], v)
	}
	if len(variants) == len(seen) {
		return ""
	}

	var groups []string
	for _, key := range order {
		if vs := variants[key]; len(vs) > 1 {
			groups = append(groups, strings.Join(vs, " / "))
		}
	}
	return fmt.Sprintf("La columna %s tiene categorías que solo difieren en mayúsculas y minúsculas: %s",
		c.Name, joinNames(examples(groups, opts.maxExamples())))
}

// IsISODateTime reports whether v is a valid YYYY-MM-DDTHH:MM:SS timestamp.
func IsISODateTime(v string) bool {
	if !isoDateTimePattern.MatchString(v) {
		return false
	}
	_, err := time.Parse(ISODateTimeLayout, v)
	return err == nil
}

func hasSurroundingSpace(v string) bool {
	if v == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(v)
	last, _ := utf8.DecodeLastRuneInString(v)
	return unicode.IsSpace(first) || unicode.IsSpace(last)
}

// hasNumberDecoration reports currency symbols, inner spaces or comma
// thousands grouping. A decimal comma is reported by hasDecimalComma instead.
func hasNumberDecoration(v string) bool {
	if strings.IndexFunc(v, func(r rune) bool {
		return unicode.Is(unicode.Sc, r) || unicode.IsSpace(r)
	}) >= 0 {
		return true
	}
	return thousandsPattern.MatchString(v)
}

// hasDecimalComma reports a comma that is not thousands grouping, e.g. "3,5".
func hasDecimalComma(v string) bool {
	if !strings.Contains(v, ",") {
		return false
	}
	return !thousandsPattern.MatchString(stripNumberDecoration(v))
}

// stripNumberDecoration drops currency symbols and spaces.
func stripNumberDecoration(v string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Sc, r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, v)
}

func examples(values []string, max int) []string {
	if len(values) <= max {
		return values
	}
	out := append([]string(nil), values[:max]...)
	return append(out, fmt.Sprintf("(%d más)", len(values)-max))
}
