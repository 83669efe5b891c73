package parser

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
)

// dateLayouts are the forms recognised as date-typed cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// build turns a header row plus data rows into a dataset. Short rows are
// padded with null cells so every column has the same length.
func build(records [][]string, src models.Source) *models.Dataset {
	ds := &models.Dataset{Source: src}
	if len(records) == 0 {
		return ds
	}

	header, rows := records[0], records[1:]
	width := len(header)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	ds.Columns = make([]models.Column, width)
	for colIdx := 0; colIdx < width; colIdx++ {
		col := models.Column{Cells: make([]models.Cell, len(rows))}
		if colIdx < len(header) {
			col.Name = header[colIdx]
		} else {
			col.Null = true
		}

		for rowIdx, row := range rows {
			if colIdx < len(row) && row[colIdx] != "" {
				col.Cells[rowIdx] = models.Cell{Raw: row[colIdx]}
			} else {
				col.Cells[rowIdx] = models.Cell{Null: true}
			}
		}
		col.Kind = inferKind(col.Values())
		ds.Columns[colIdx] = col
	}

	return ds
}

// inferKind returns the narrowest kind that accepts every value.
// Numbers written with separators, currency symbols or inner spaces still
// count as numeric so the data check can flag how they are written.
func inferKind(values []string) models.Kind {
	if len(values) == 0 {
		return models.KindText
	}

	allInt, allNumber, allDate := true, true, true
	for _, v := range values {
		switch parseValue(v).(type) {
		case int64:
		case float64:
			allInt = false
		default:
			allInt = false
			if _, ok := parseLooseNumber(v); !ok {
				allNumber = false
			}
		}
		if allDate && !isDate(v) {
			allDate = false
		}
		if !allInt && !allNumber && !allDate {
			return models.KindText
		}
	}

	switch {
	case allInt:
		return models.KindInt
	case allNumber:
		return models.KindFloat
	case allDate:
		return models.KindDate
	}
	return models.KindText
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if !hasDigit(s) {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// parseLooseNumber parses a number after removing currency symbols,
// inner whitespace and thousands separators. Values with leading or
// trailing whitespace are not numbers, so the column stays text.
func parseLooseNumber(s string) (float64, bool) {
	if !hasDigit(s) || strings.TrimSpace(s) != s {
		return 0, false
	}
	cleaned := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Sc, r) || unicode.IsSpace(r) || r == ',' {
			return -1
		}
		return r
	}, s)
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func isDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
