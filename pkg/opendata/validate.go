package opendata

import (
	"github.com/ukaji3/opendata-check-go/pkg/opendata/checks"
	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
	"github.com/ukaji3/opendata-check-go/pkg/opendata/parser"
	"go.uber.org/zap"
)

// Validate runs the four checks against a loaded dataset. Each check runs
// to completion regardless of what the others find.
func Validate(ds *models.Dataset, filename string, opts Options) models.ObservationSet {
	obs := models.ObservationSet{
		Format:   checks.Format(ds),
		Filename: checks.Filename(filename),
		Columns:  checks.Columns(ds),
		Data:     checks.Data(ds, opts.checkOptions()),
	}

	opts.logger().Debug("validation finished",
		zap.String("file", filename),
		zap.Int("rows", ds.RowCount()),
		zap.Int("columns", len(ds.Names())),
		zap.Int("findings", obs.Count()))

	return obs
}

// ValidateFile loads raw file content and validates it. Content that is
// empty or cannot be decoded or parsed is reported as a format finding;
// only an unsupported extension returns an error.
func ValidateFile(filename string, data []byte, opts Options) (models.ObservationSet, error) {
	ds, err := parser.Load(filename, data)
	if err != nil {
		return models.ObservationSet{}, err
	}

	if ds.Source.LoadError != "" {
		opts.logger().Warn("file could not be parsed",
			zap.String("file", filename),
			zap.String("error", ds.Source.LoadError))
	}

	return Validate(ds, filename, opts), nil
}
