package badge

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"io"
	"testing"
	"time"

	"github.com/digitorus/pdf"
	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/koa-member-api/internal/pdfstamp"
)

func templateBytes(t *testing.T, w, h float64) []byte {
	t.Helper()
	doc := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: gofpdf.SizeType{Wd: w, Ht: h}})
	doc.SetCreationDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 14)
	doc.Text(30, 30, "KERALA ORTHOPAEDIC ASSOCIATION")
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func loadedTemplate(t *testing.T, w, h float64) *pdfstamp.Template {
	t.Helper()
	tpl, err := pdfstamp.Load(templateBytes(t, w, h))
	require.NoError(t, err)
	return tpl
}

type staticSource struct {
	template *pdfstamp.Template
	err      error
}

func (s staticSource) Template(context.Context) (*pdfstamp.Template, error) {
	return s.template, s.err
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func solidPhoto(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

// pageContents returns the decoded content streams of the single page of doc,
// joined in paint order.
func pageContents(t *testing.T, doc []byte) string {
	t.Helper()
	reader, err := pdf.NewReader(bytes.NewReader(doc), int64(len(doc)))
	require.NoError(t, err)
	require.Equal(t, 1, reader.NumPage())

	contents := reader.Page(1).V.Key("Contents")
	var out bytes.Buffer
	for i := 0; i < contents.Len(); i++ {
		data, err := io.ReadAll(contents.Index(i).Reader())
		require.NoError(t, err)
		out.Write(data)
	}
	return out.String()
}
