package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// delimiterCandidates are tried in order; ties keep the earlier one.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// LoadDelimited parses delimited text. Input that is not valid UTF-8 is
// flagged and decoded as Windows-1252 so parsing can continue.
func LoadDelimited(data []byte) *models.Dataset {
	src := models.Source{
		Format:    models.FormatDelimited,
		ValidUTF8: utf8.Valid(data),
		Encoding:  "UTF-8",
	}

	text := data
	if !src.ValidUTF8 {
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err == nil {
			text = decoded
			src.Encoding = "windows-1252"
		}
	}
	text = bytes.TrimPrefix(text, utf8BOM)

	src.Delimiter = detectDelimiter(text)
	records, err := readRecords(text, src.Delimiter)
	if err != nil && len(records) == 0 {
		src.LoadError = NewLoadError(models.FormatDelimited, "read", err).Error()
		return &models.Dataset{Source: src}
	}

	return build(records, src)
}

// readRecords reads every record it can. Malformed lines are skipped; the
// first error is returned alongside whatever was read.
func readRecords(text []byte, delimiter rune) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(text))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var records [][]string
	var firstErr error
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			break
		}
		records = append(records, rec)
	}
	return records, firstErr
}

// detectDelimiter picks the candidate that occurs most often on the first
// line, ignoring quoted sections. Defaults to comma.
func detectDelimiter(text []byte) rune {
	line := text
	if idx := bytes.IndexByte(text, '\n'); idx >= 0 {
		line = text[:idx]
	}

	counts := make(map[rune]int, len(delimiterCandidates))
	inQuotes := false
	for _, r := range string(line) {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			counts[r]++
		}
	}

	best, bestCount := ',', 0
	for _, c := range delimiterCandidates {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return best
}
