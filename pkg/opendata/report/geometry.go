package report

// Geometry holds page size, margins and spacing, in points.
type Geometry struct {
	PageWidth  float64
	PageHeight float64

	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	// LineHeight is the advance after a wrapped body line.
	LineHeight float64

	// Safety buffers checked against the bottom margin before drawing.
	LineBuffer      float64
	BlockBuffer     float64
	SummaryBuffer   float64
	SignatureBuffer float64
}

// LetterGeometry returns the layout used for every report: US Letter
// with room at the top and bottom for the letterhead images.
func LetterGeometry() Geometry {
	return Geometry{
		PageWidth:       612,
		PageHeight:      792,
		MarginLeft:      CM(2.2),
		MarginRight:     CM(2.2),
		MarginTop:       CM(4.5),
		MarginBottom:    CM(3.5),
		LineHeight:      CM(0.5),
		LineBuffer:      CM(1.5),
		BlockBuffer:     CM(3.0),
		SummaryBuffer:   CM(1.5),
		SignatureBuffer: CM(3.0),
	}
}

// ContentWidth is the usable width between the side margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}

// Bottom is the lowest baseline any content may use.
func (g Geometry) Bottom() float64 {
	return g.PageHeight - g.MarginBottom
}
