package report

import "go.uber.org/zap"

// Asset names looked up in Options.Assets.
const (
	HeaderLeftImage  = "header-left.png"
	HeaderRightImage = "header-right.png"
	FooterImage      = "footer.png"
)

// layout is the per-render cursor state. Each render owns exactly one.
type layout struct {
	canvas Canvas
	geom   Geometry
	log    *zap.Logger

	y    float64
	page int
	font Font
}

func newLayout(c Canvas, g Geometry, log *zap.Logger) *layout {
	return &layout{canvas: c, geom: g, log: log}
}

// startPage finalizes the current page and starts a new one with its
// header and footer, the body font and the cursor at the top margin.
func (l *layout) startPage() {
	l.canvas.AddPage()
	l.page++
	l.drawHeaderFooter()
	l.setFont(fontBody)
	l.y = l.geom.MarginTop
}

func (l *layout) drawHeaderFooter() {
	g := l.geom
	l.image(HeaderLeftImage, g.MarginLeft, CM(1.0), CM(7.0), CM(2.0))
	l.image(HeaderRightImage, g.PageWidth-CM(7.5), CM(1.0), CM(7.0), CM(2.0))
	l.image(FooterImage, 0, g.PageHeight-CM(3.0), g.PageWidth, CM(2.5))
}

// image draws an asset and ignores any failure; images are decoration.
func (l *layout) image(name string, x, y, w, h float64) {
	if err := l.canvas.Image(name, x, y, w, h); err != nil {
		l.log.Debug("skipping image", zap.String("image", name), zap.Error(err))
	}
}

func (l *layout) setFont(f Font) {
	l.font = f
	l.canvas.SetFont(f)
}

// ensure starts a new page unless buffer points remain above the bottom margin.
// The active font survives the page break.
func (l *layout) ensure(buffer float64) {
	if l.y <= l.geom.Bottom()-buffer {
		return
	}
	font := l.font
	l.startPage()
	l.setFont(font)
}

func (l *layout) advance(dy float64) {
	l.y += dy
}

func (l *layout) textLeft(s string) {
	l.canvas.Text(l.geom.MarginLeft, l.y, s)
}

func (l *layout) textRight(s string) {
	l.canvas.Text(l.geom.PageWidth-l.geom.MarginRight-l.canvas.StringWidth(s), l.y, s)
}

func (l *layout) textCentered(s string) {
	l.canvas.Text((l.geom.PageWidth-l.canvas.StringWidth(s))/2, l.y, s)
}

// paragraph wraps s to the content width and draws it line by line, each
// line checked against the line buffer first.
func (l *layout) paragraph(s string, draw func(string)) {
	for _, line := range wrapText(s, l.geom.ContentWidth(), l.canvas.StringWidth) {
		l.ensure(l.geom.LineBuffer)
		draw(line)
		l.advance(l.geom.LineHeight)
	}
}
