package pdfstamp

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

type ElementKind int

const (
	ImageElement ElementKind = iota
	TextElement
)

func (k ElementKind) String() string {
	if k == TextElement {
		return "text"
	}
	return "image"
}

// Element describes one thing drawn on a Page. For text, Width is the
// advance width of the string and Y is the baseline.
type Element struct {
	Kind   ElementKind
	X      float64
	Y      float64
	Width  float64
	Height float64
	Text   string
	Font   Font
	Size   float64
	Color  color.Color
}

// Page is an overlay page in PDF user space: origin at the bottom-left corner
// of the page box, y growing upward.
type Page struct {
	Width  float64
	Height float64

	elements []Element
	images   map[int]*encodedImage
	texts    map[int][]byte
}

func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		images: map[int]*encodedImage{},
		texts:  map[int][]byte{},
	}
}

// Elements returns the drawn elements in paint order.
func (p *Page) Elements() []Element {
	out := make([]Element, len(p.elements))
	copy(out, p.elements)
	return out
}

// DrawImage places img with its lower-left corner at (x, y), scaled to w×h.
func (p *Page) DrawImage(img image.Image, x, y, w, h float64) error {
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("%w: empty image", ErrInvalidElement)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: image size %gx%g", ErrInvalidElement, w, h)
	}

	p.images[len(p.elements)] = encodeImage(img)
	p.elements = append(p.elements, Element{
		Kind:   ImageElement,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	})
	return nil
}

// DrawText places text with its baseline starting at (x, y).
func (p *Page) DrawText(text string, font Font, size float64, c color.Color, x, y float64) error {
	if text == "" {
		return fmt.Errorf("%w: empty text", ErrInvalidElement)
	}
	if size <= 0 {
		return fmt.Errorf("%w: font size %g", ErrInvalidElement, size)
	}
	if c == nil {
		c = color.Black
	}

	width, err := TextWidth(text, font, size)
	if err != nil {
		return err
	}
	encoded, err := encodeText(text)
	if err != nil {
		return err
	}

	p.texts[len(p.elements)] = encoded
	p.elements = append(p.elements, Element{
		Kind:  TextElement,
		X:     x,
		Y:     y,
		Width: width,
		Text:  text,
		Font:  font,
		Size:  size,
		Color: c,
	})
	return nil
}

// encodedImage is an image split into the two samples a PDF image XObject
// needs: 8-bit RGB and, when anything is translucent, an 8-bit soft mask.
type encodedImage struct {
	width  int
	height int
	rgb    []byte
	alpha  []byte
}

func encodeImage(img image.Image) *encodedImage {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	enc := &encodedImage{
		width:  w,
		height: h,
		rgb:    make([]byte, 0, w*h*3),
	}
	alpha := make([]byte, 0, w*h)
	opaque := true
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			enc.rgb = append(enc.rgb, row[i], row[i+1], row[i+2])
			alpha = append(alpha, row[i+3])
			if row[i+3] != 0xff {
				opaque = false
			}
		}
	}
	if !opaque {
		enc.alpha = alpha
	}
	return enc
}

// content writes the page's drawing operators. Resource names come from
// fontNames and imageNames, keyed by font and by element index.
func (p *Page) content(b *bytes.Buffer, fontNames map[Font]string, imageNames map[int]string) {
	for i, el := range p.elements {
		switch el.Kind {
		case ImageElement:
			fmt.Fprintf(b, "q %s 0 0 %s %s %s cm /%s Do Q\n",
				formatNumber(el.Width), formatNumber(el.Height),
				formatNumber(el.X), formatNumber(el.Y), imageNames[i])
		case TextElement:
			r, g, bl := colorComponents(el.Color)
			fmt.Fprintf(b, "BT /%s %s Tf %s %s %s rg %s %s Td <%X> Tj ET\n",
				fontNames[el.Font], formatNumber(el.Size),
				r, g, bl,
				formatNumber(el.X), formatNumber(el.Y), p.texts[i])
		}
	}
}

func colorComponents(c color.Color) (string, string, string) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return formatNumber(float64(nc.R) / 255), formatNumber(float64(nc.G) / 255), formatNumber(float64(nc.B) / 255)
}

// formatNumber prints v the way PDF wants numbers: no exponent, at most four
// decimals, no trailing zeros.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
