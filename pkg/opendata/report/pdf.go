package report

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// pdfCanvas draws onto an fpdf document using the core Helvetica fonts.
// Text is translated to cp1252 so Spanish letters render with the core fonts.
type pdfCanvas struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	assets    fs.FS
	images    map[string]*fpdf.ImageInfoType
	failed    map[string]error
}

func newPDFCanvas(g Geometry, assets fs.FS, created time.Time) *pdfCanvas {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(g.MarginLeft, g.MarginTop, g.MarginRight)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)

	return &pdfCanvas{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		assets:    assets,
		images:    make(map[string]*fpdf.ImageInfoType),
		failed:    make(map[string]error),
	}
}

func (c *pdfCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *pdfCanvas) SetFont(f Font) {
	c.pdf.SetFont(f.Family, f.Style, f.Size)
}

func (c *pdfCanvas) StringWidth(s string) float64 {
	return c.pdf.GetStringWidth(c.translate(s))
}

func (c *pdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, c.translate(s))
}

// Image only clears errors it caused itself; an error already pending on
// the document is returned untouched so Render still reports it.
func (c *pdfCanvas) Image(name string, x, y, w, h float64) error {
	if err := c.pdf.Error(); err != nil {
		return fmt.Errorf("document already failed: %w", err)
	}

	info, err := c.register(name)
	if err != nil {
		return err
	}

	iw, ih := info.Width(), info.Height()
	if iw <= 0 || ih <= 0 {
		return fmt.Errorf("image %s has no size", name)
	}
	scale := w / iw
	if s := h / ih; s < scale {
		scale = s
	}
	dw, dh := iw*scale, ih*scale
	c.pdf.ImageOptions(name, x+(w-dw)/2, y+(h-dh)/2, dw, dh, false, fpdf.ImageOptions{}, 0, "")
	return c.takeError()
}

// register loads an asset once. Failures are remembered so a broken image
// is not retried on every page.
func (c *pdfCanvas) register(name string) (*fpdf.ImageInfoType, error) {
	if info, ok := c.images[name]; ok {
		return info, nil
	}
	if err, ok := c.failed[name]; ok {
		return nil, err
	}

	info, err := c.load(name)
	if err != nil {
		c.failed[name] = err
		return nil, err
	}
	c.images[name] = info
	return info, nil
}

func (c *pdfCanvas) load(name string) (*fpdf.ImageInfoType, error) {
	if c.assets == nil {
		return nil, fs.ErrNotExist
	}
	data, err := fs.ReadFile(c.assets, name)
	if err != nil {
		return nil, err
	}

	opts := fpdf.ImageOptions{ImageType: imageType(name)}
	info := c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if err := c.takeError(); err != nil {
		return nil, err
	}
	if info == nil {
		return nil, errors.New("image not registered")
	}
	return info, nil
}

// takeError returns and clears the document's sticky error state.
func (c *pdfCanvas) takeError() error {
	if c.pdf.Ok() {
		return nil
	}
	err := c.pdf.Error()
	c.pdf.ClearError()
	return err
}

func (c *pdfCanvas) pageCount() int {
	return c.pdf.PageCount()
}

func (c *pdfCanvas) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func imageType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg":
		return "JPG"
	case ".gif":
		return "GIF"
	default:
		return "PNG"
	}
}
