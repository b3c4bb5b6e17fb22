package badge

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/sunthewhat/koa-member-api/internal/pdfstamp"
)

// OverlayRenderer lays the per-member content out on a page the size of the
// template.
type OverlayRenderer struct {
	layout Layout
}

func NewOverlayRenderer(layout Layout) *OverlayRenderer {
	return &OverlayRenderer{layout: layout}
}

// OverlayContent is what gets drawn. Portrait, Name and Identifier are
// optional; Scan is not.
type OverlayContent struct {
	Portrait   image.Image
	Scan       image.Image
	Name       string
	Identifier string
}

type drawStep struct {
	name     string
	skip     bool
	required bool
	draw     func(page *pdfstamp.Page) error
}

const (
	ElementPortrait   = "portrait"
	ElementName       = "name"
	ElementIdentifier = "identifier"
	ElementScan       = "scan"
)

// Render draws each element as its own step. An optional element that fails
// is logged, left out and named in dropped; only a failed scan code aborts
// the page.
func (r *OverlayRenderer) Render(width, height float64, content OverlayContent) (page *pdfstamp.Page, dropped []string, err error) {
	l := r.layout
	page = pdfstamp.NewPage(width, height)

	photoX := l.PhotoX
	photoY := height - l.PhotoTopOffset
	nameY := photoY - l.NameGap
	identifierY := nameY - l.IdentifierGap

	steps := []drawStep{
		{
			name: ElementPortrait,
			skip: content.Portrait == nil,
			draw: func(page *pdfstamp.Page) error {
				return page.DrawImage(content.Portrait, photoX, photoY, float64(l.PortraitWidth), float64(l.PortraitHeight))
			},
		},
		{
			name: ElementName,
			skip: content.Name == "",
			draw: func(page *pdfstamp.Page) error {
				return r.drawCentered(page, content.Name, pdfstamp.HelveticaBold, l.NameFontSize, color.White, nameY)
			},
		},
		{
			name: ElementIdentifier,
			skip: content.Identifier == "",
			draw: func(page *pdfstamp.Page) error {
				return r.drawCentered(page, l.IdentifierPrefix+content.Identifier, pdfstamp.Helvetica, l.IdentifierFontSize, color.Black, identifierY)
			},
		},
		{
			name:     ElementScan,
			required: true,
			draw: func(page *pdfstamp.Page) error {
				if content.Scan == nil {
					return errors.New("scan code image missing")
				}
				return page.DrawImage(content.Scan, width-l.ScanRightOffset, height-l.ScanTopOffset, l.ScanSize, l.ScanSize)
			},
		},
	}

	for _, step := range steps {
		if step.skip {
			continue
		}
		if stepErr := runStep(page, step); stepErr != nil {
			if step.required {
				return nil, nil, fmt.Errorf("draw %s: %w", step.name, stepErr)
			}
			slog.Warn("Badge overlay element skipped", "element", step.name, "error", stepErr)
			dropped = append(dropped, step.name)
		}
	}

	return page, dropped, nil
}

// drawCentered centres text in the portrait column.
func (r *OverlayRenderer) drawCentered(page *pdfstamp.Page, text string, font pdfstamp.Font, size float64, c color.Color, baseline float64) error {
	width, err := pdfstamp.TextWidth(text, font, size)
	if err != nil {
		return err
	}
	x := r.layout.PhotoX + (float64(r.layout.PortraitWidth)-width)/2
	return page.DrawText(text, font, size, c, x, baseline)
}

func runStep(page *pdfstamp.Page, step drawStep) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return step.draw(page)
}
