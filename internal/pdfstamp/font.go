package pdfstamp

import (
	"fmt"
	"sync"

	"github.com/jung-kurt/gofpdf"
)

// Font is one of the standard Type1 fonts every PDF reader ships with.
// Text is encoded with WinAnsiEncoding, so no font program is embedded.
type Font int

const (
	Helvetica Font = iota
	HelveticaBold
)

func (f Font) valid() bool {
	return f == Helvetica || f == HelveticaBold
}

// BaseFont returns the PostScript name written into the font dictionary.
func (f Font) BaseFont() string {
	if f == HelveticaBold {
		return "Helvetica-Bold"
	}
	return "Helvetica"
}

func (f Font) String() string {
	return f.BaseFont()
}

func (f Font) style() string {
	if f == HelveticaBold {
		return "B"
	}
	return ""
}

// gofpdf carries the core font metrics and the cp1252 code page. Neither the
// Fpdf instance nor its translator closure is safe for concurrent use.
var metrics struct {
	sync.Mutex
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

func withMetrics(fn func(pdf *gofpdf.Fpdf, translate func(string) string) error) error {
	metrics.Lock()
	defer metrics.Unlock()

	if metrics.pdf == nil {
		pdf := gofpdf.New("P", "pt", "A4", "")
		translate := pdf.UnicodeTranslatorFromDescriptor("")
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("load font metrics: %w", err)
		}
		metrics.pdf = pdf
		metrics.translate = translate
	}

	if err := fn(metrics.pdf, metrics.translate); err != nil {
		metrics.pdf = nil
		metrics.translate = nil
		return err
	}
	return nil
}

// TextWidth returns the advance width of text in points.
func TextWidth(text string, font Font, size float64) (float64, error) {
	if !font.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedFont, font)
	}

	var width float64
	err := withMetrics(func(pdf *gofpdf.Fpdf, translate func(string) string) error {
		pdf.SetFont("Helvetica", font.style(), size)
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedFont, err)
		}
		width = pdf.GetStringWidth(translate(text))
		return nil
	})
	return width, err
}

// encodeText maps text onto WinAnsi bytes. Runes outside the code page
// become '.'.
func encodeText(text string) ([]byte, error) {
	var out []byte
	err := withMetrics(func(_ *gofpdf.Fpdf, translate func(string) string) error {
		out = []byte(translate(text))
		return nil
	})
	return out, err
}
