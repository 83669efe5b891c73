package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
)

// ErrUnsupportedFormat indicates the file extension is not a readable tabular format.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrEmptyInput indicates the file has no content at all.
var ErrEmptyInput = errors.New("empty file")

// LoadError represents a failure to parse the container.
type LoadError struct {
	Format models.SourceFormat
	Stage  string // "open", "decode", "read", "sheet"
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Format, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(format models.SourceFormat, stage string, err error) *LoadError {
	return &LoadError{
		Format: format,
		Stage:  stage,
		Err:    err,
	}
}
