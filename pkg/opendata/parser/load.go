// Package parser turns raw delimited-text or spreadsheet bytes into a models.Dataset.
package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
)

// Extensions maps accepted file extensions to their container format.
var Extensions = map[string]models.SourceFormat{
	"csv":  models.FormatDelimited,
	"txt":  models.FormatDelimited,
	"tsv":  models.FormatDelimited,
	"xlsx": models.FormatSpreadsheet,
	"xlsm": models.FormatSpreadsheet,
}

// Ext returns the lower-cased extension of name without the dot.
func Ext(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// FormatFor returns the container format for a filename.
func FormatFor(name string) (models.SourceFormat, error) {
	ext := Ext(name)
	format, ok := Extensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return format, nil
}

// Load parses data according to the extension of name.
// Content problems never fail the load: they are recorded in the returned
// dataset's Source so that the format check can report them, empty content
// included. Only an unsupported extension returns an error.
func Load(name string, data []byte) (*models.Dataset, error) {
	format, err := FormatFor(name)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &models.Dataset{Source: models.Source{
			Format:    format,
			ValidUTF8: true,
			LoadError: NewLoadError(format, "read", ErrEmptyInput).Error(),
		}}, nil
	}

	switch format {
	case models.FormatSpreadsheet:
		return LoadSpreadsheet(data), nil
	default:
		return LoadDelimited(data), nil
	}
}
