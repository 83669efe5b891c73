package report

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFCanvas_ImageKeepsPendingError(t *testing.T) {
	assets := fstest.MapFS{
		HeaderLeftImage: &fstest.MapFile{Data: pngBytes(t, 70, 20)},
		FooterImage:     &fstest.MapFile{Data: []byte("not an image")},
	}
	c := newPDFCanvas(LetterGeometry(), assets, time.Unix(0, 0).UTC())
	c.AddPage()

	fontErr := errors.New("font not available")
	c.pdf.SetError(fontErr)

	assert.Error(t, c.Image(HeaderLeftImage, 0, 0, CM(7), CM(2)))
	assert.Error(t, c.Image(FooterImage, 0, 0, CM(7), CM(2)))

	err := c.takeError()
	require.Error(t, err)
	assert.ErrorIs(t, err, fontErr)
}

func TestPDFCanvas_ImageClearsOwnError(t *testing.T) {
	assets := fstest.MapFS{
		FooterImage: &fstest.MapFile{Data: []byte("not an image")},
	}
	c := newPDFCanvas(LetterGeometry(), assets, time.Unix(0, 0).UTC())
	c.AddPage()

	assert.Error(t, c.Image(FooterImage, 0, 0, CM(7), CM(2)))
	assert.NoError(t, c.takeError())

	assert.Error(t, c.Image(FooterImage, 0, 0, CM(7), CM(2)), "broken asset stays broken")
	assert.True(t, c.pdf.Ok())
}
