package badge

import (
	"fmt"
	"image"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QREncoder renders the public profile URL as a QR code. The version is
// forced: content that does not fit fails instead of growing the symbol.
type QREncoder struct {
	version    int
	moduleSize int
}

func NewQREncoder(layout Layout) *QREncoder {
	return &QREncoder{
		version:    layout.ScanVersion,
		moduleSize: layout.ScanModuleSize,
	}
}

// Encode returns a square black-on-white image with a four-module quiet zone.
func (e *QREncoder) Encode(content string) (image.Image, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: empty content", ErrCapacity)
	}
	q, err := qrcode.NewWithForcedVersion(content, e.version, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapacity, err)
	}
	return q.Image(-e.moduleSize), nil
}

// PublicURL is the profile address encoded into a member's scan code.
func PublicURL(base, identifier string) string {
	return strings.TrimRight(base, "/") + "/" + identifier + "/"
}
