package opendata

import "github.com/ukaji3/opendata-check-go/pkg/opendata/parser"

// ErrUnsupportedFormat indicates the file extension is not csv, txt, tsv or xlsx.
var ErrUnsupportedFormat = parser.ErrUnsupportedFormat
