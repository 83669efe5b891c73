package report

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
	"go.uber.org/zap"
)

// Metadata carries the per-document values printed in the report.
type Metadata struct {
	// ValidatedAt is the validation time, already formatted by the caller.
	ValidatedAt string
	// DateLine is the place-and-date line of the letterhead,
	// e.g. "Ciudad de México, a 18 de octubre de 2026".
	DateLine string
	// SequenceID is the optional document number, "<prefix>.-NNNN-YYYY".
	SequenceID string
	// Generated is stored as the PDF creation date. It does not affect layout.
	// If zero, the Unix epoch is used so output stays reproducible.
	Generated time.Time
}

// Options configures the report texts and assets.
type Options struct {
	// Assets holds the header and footer images. Missing files are skipped.
	Assets fs.FS
	// Letterhead lines are printed right-aligned above the date line.
	Letterhead []string
	// Signature lines are printed centered at the end of the document.
	Signature []string
	// Title is the centered document title.
	Title string
	// Description is the italic line below the title.
	Description string
	// Geometry overrides the page layout. If zero, LetterGeometry is used.
	Geometry Geometry
	// Logger receives debug output. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns the institutional texts of the published report.
func DefaultOptions() Options {
	return Options{
		Letterhead: []string{
			"Unidad de Innovación de la Gestión Pública",
			"Dirección General de Datos y Transparencia Proactiva",
		},
		Signature: []string{
			"Atentamente",
			"Datos Abiertos",
			"Dirección de Innovación y Análisis de Datos",
		},
		Title:       "ATENTA NOTA",
		Description: "El siguiente documento se genera automáticamente con el sistema API-Validador-Formatos-Datos-Abiertos.",
	}
}

// SuccessChecklist is printed instead of the detailed blocks when no
// category has findings.
var SuccessChecklist = [4]string{
	"• Formato y codificación del archivo: correcto.",
	"• Nombre del archivo: correcto.",
	"• Nombres de las columnas: correcto.",
	"• Contenido de los datos: correcto.",
}

// blockTitles are the headings of the detailed blocks, one per category.
var blockTitles = map[models.Category]string{
	models.CategoryFormat:   "Observaciones de Formato",
	models.CategoryFilename: "Observaciones del Nombre del Archivo",
	models.CategoryColumns:  "Observaciones de Nombres de Columnas",
	models.CategoryData:     "Observaciones de Filas/Datos",
}

const (
	successHeading  = "Resultado de la validación"
	successSentence = "El archivo cumple con los criterios revisados para su publicación como datos abiertos."
	noObservations  = "Sin observaciones."
)

// Render builds the PDF document for one validation result.
func Render(obs models.ObservationSet, filename string, meta Metadata, opts Options) ([]byte, error) {
	c := newPDFCanvas(opts.geometry(), opts.Assets, meta.created())
	compose(c, obs, filename, meta, opts)
	if err := c.takeError(); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	data, err := c.bytes()
	if err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return data, nil
}

// Pages returns how many pages Render would produce for the same input.
func Pages(obs models.ObservationSet, filename string, meta Metadata, opts Options) int {
	c := newPDFCanvas(opts.geometry(), nil, meta.created())
	compose(c, obs, filename, meta, opts)
	return c.pageCount()
}

// compose lays the whole document out on c and returns the page count.
func compose(c Canvas, obs models.ObservationSet, filename string, meta Metadata, opts Options) int {
	l := newLayout(c, opts.geometry(), opts.logger())
	l.startPage()

	drawLetterhead(l, filename, meta, opts)
	if obs.HasFindings() {
		for _, cat := range models.Categories {
			drawBlock(l, blockTitles[cat], obs, cat)
			l.advance(CM(0.3))
		}
	} else {
		drawSuccess(l)
	}
	drawSignature(l, opts.Signature)

	return l.page
}

func drawLetterhead(l *layout, filename string, meta Metadata, opts Options) {
	l.setFont(fontBody)
	lines := append([]string(nil), opts.Letterhead...)
	if meta.DateLine != "" {
		lines = append(lines, meta.DateLine)
	}
	if meta.SequenceID != "" {
		lines = append(lines, "Folio: "+meta.SequenceID)
	}
	for _, line := range lines {
		l.textRight(line)
		l.advance(CM(0.6))
	}

	l.advance(CM(0.4))
	if opts.Title != "" {
		l.setFont(fontTitle)
		l.textCentered(opts.Title)
		l.advance(CM(0.8))
	}
	if opts.Description != "" {
		l.setFont(fontNote)
		l.paragraph(opts.Description, l.textCentered)
		l.advance(CM(0.3))
	}

	l.setFont(fontBody)
	l.paragraph("Nombre del Archivo: "+filename, l.textLeft)
	l.paragraph("Fecha de Validación: "+meta.ValidatedAt, l.textLeft)
	l.advance(CM(0.3))
}

// titleAdvance is the space between a block title and its first line.
var titleAdvance = CM(0.7)

// drawBlock renders one category as a titled block of numbered observations.
// The title only stays on the page if the first observation fits below it.
func drawBlock(l *layout, title string, obs models.ObservationSet, cat models.Category) {
	l.ensure(titleAdvance + l.geom.BlockBuffer)
	l.setFont(fontHeading)
	l.textLeft(title)
	l.advance(titleAdvance)

	if !obs.CategoryHasFindings(cat) {
		l.ensure(l.geom.LineBuffer)
		l.setFont(fontBody)
		l.textLeft(noObservations)
		l.advance(CM(0.7))
		return
	}

	for i, o := range obs.Get(cat) {
		l.ensure(l.geom.BlockBuffer)
		l.setFont(fontBodyBold)
		l.textLeft(fmt.Sprintf("Observación %d:", i+1))
		l.advance(l.geom.LineHeight)

		l.setFont(fontBody)
		l.paragraph(o, l.textLeft)
		l.advance(CM(0.3))
	}
}

func drawSuccess(l *layout) {
	l.ensure(l.geom.BlockBuffer)
	l.setFont(fontHeading)
	l.textLeft(successHeading)
	l.advance(CM(0.7))

	l.setFont(fontBody)
	l.paragraph(successSentence, l.textLeft)
	l.advance(CM(0.2))

	for _, row := range SuccessChecklist {
		l.ensure(l.geom.SummaryBuffer)
		l.textLeft(row)
		l.advance(CM(0.6))
	}
}

func drawSignature(l *layout, lines []string) {
	if len(lines) == 0 {
		return
	}
	l.advance(CM(1.0))
	l.ensure(l.geom.SignatureBuffer)
	l.setFont(fontSignature)
	for _, line := range lines {
		l.textCentered(line)
		l.advance(CM(0.7))
	}
}

func (o Options) geometry() Geometry {
	if o.Geometry == (Geometry{}) {
		return LetterGeometry()
	}
	return o.Geometry
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (m Metadata) created() time.Time {
	if m.Generated.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return m.Generated
}
