package badge

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Compositor turns a member photo into the bordered, rounded portrait that
// sits on the badge.
type Compositor struct {
	layout Layout
}

func NewCompositor(layout Layout) *Compositor {
	return &Compositor{layout: layout}
}

// Compose returns a PortraitWidth×PortraitHeight image whatever the size or
// aspect ratio of the photo. Pixels outside the outer rounded rectangle are
// fully transparent.
func (c *Compositor) Compose(photo []byte) (*image.NRGBA, error) {
	if len(photo) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrDecode)
	}
	src, err := imaging.Decode(bytes.NewReader(photo))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return c.ComposeImage(src), nil
}

// ComposeImage runs the composition on an already decoded image.
func (c *Compositor) ComposeImage(src image.Image) *image.NRGBA {
	l := c.layout
	innerW, innerH := l.innerSize()

	scaled := imaging.Fit(src, innerW, innerH, imaging.Lanczos)
	sw, sh := scaled.Bounds().Dx(), scaled.Bounds().Dy()

	inner := imaging.New(innerW, innerH, color.White)
	inner = imaging.Overlay(inner, scaled, image.Pt((innerW-sw)/2, (innerH-sh)/2), 1.0)
	applyMask(inner, roundedMask(innerW, innerH, l.InnerRadius))

	plate := imaging.New(l.PortraitWidth, l.PortraitHeight, color.White)
	applyMask(plate, roundedMask(l.PortraitWidth, l.PortraitHeight, l.OuterRadius()))

	out := imaging.Overlay(plate, inner, image.Pt(l.Border, l.Border), 1.0)
	clearTransparent(out)
	return out
}

// roundedMask returns a binary mask: 255 inside a w×h rounded rectangle of
// radius r, 0 outside.
func roundedMask(w, h int, r float64) *image.Alpha {
	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), r)
	dc.SetColor(color.White)
	dc.Fill()

	mask := dc.AsMask()
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
	return mask
}

// applyMask replaces the alpha channel of an opaque image with mask.
func applyMask(img *image.NRGBA, mask *image.Alpha) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			img.Pix[y*img.Stride+x*4+3] = mask.Pix[y*mask.Stride+x]
		}
	}
}

// clearTransparent zeroes the colour of fully transparent pixels so the
// encoded image does not depend on what was blended underneath them.
func clearTransparent(img *image.NRGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] == 0 {
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 0, 0, 0
		}
	}
}
