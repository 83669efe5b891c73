package report

// Font selects a face from the core Helvetica family.
type Font struct {
	Family string
	Style  string // "", "B", "I"
	Size   float64
}

var (
	fontBody      = Font{Family: "Helvetica", Size: 10.5}
	fontBodyBold  = Font{Family: "Helvetica", Style: "B", Size: 10.5}
	fontHeading   = Font{Family: "Helvetica", Style: "B", Size: 12}
	fontTitle     = Font{Family: "Helvetica", Style: "B", Size: 14}
	fontNote      = Font{Family: "Helvetica", Style: "I", Size: 10}
	fontSignature = Font{Family: "Helvetica", Style: "B", Size: 11}
)

// Canvas is the drawing surface the layout writes to. Coordinates are in
// points with the origin at the top-left corner; y is the text baseline.
type Canvas interface {
	// AddPage finalizes the current page, if any, and starts a new one.
	AddPage()
	SetFont(f Font)
	// StringWidth measures s in the current font.
	StringWidth(s string) float64
	Text(x, y float64, s string)
	// Image draws a named asset fitted inside the box, keeping its aspect ratio.
	Image(name string, x, y, w, h float64) error
}
