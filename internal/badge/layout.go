package badge

import (
	"fmt"
	"strings"
)

// Layout holds every presentation constant of the badge. Offsets are in PDF
// points with the origin at the bottom-left of the template page.
type Layout struct {
	PortraitWidth  int
	PortraitHeight int
	Border         int
	InnerRadius    float64

	PhotoX         float64
	PhotoTopOffset float64

	NameGap      float64
	NameFontSize float64

	IdentifierGap      float64
	IdentifierFontSize float64
	IdentifierPrefix   string

	ScanSize        float64
	ScanRightOffset float64
	ScanTopOffset   float64
	ScanVersion     int
	ScanModuleSize  int

	FilenamePrefix string
}

// DefaultLayout matches the printed KOA membership card template.
func DefaultLayout() Layout {
	return Layout{
		PortraitWidth:  120,
		PortraitHeight: 130,
		Border:         5,
		InnerRadius:    10,

		PhotoX:         20,
		PhotoTopOffset: 330,

		NameGap:      25,
		NameFontSize: 16,

		IdentifierGap:      22,
		IdentifierFontSize: 12,
		IdentifierPrefix:   "LA NO: ",

		ScanSize:        75,
		ScanRightOffset: 100,
		ScanTopOffset:   350,
		ScanVersion:     4,
		ScanModuleSize:  10,

		FilenamePrefix: "KOA_Badge_",
	}
}

// OuterRadius is the corner radius of the bordered silhouette.
func (l Layout) OuterRadius() float64 {
	return l.InnerRadius + float64(l.Border)
}

func (l Layout) innerSize() (int, int) {
	return l.PortraitWidth - 2*l.Border, l.PortraitHeight - 2*l.Border
}

func (l Layout) Validate() error {
	var problems []string
	if l.Border < 0 {
		problems = append(problems, "border must not be negative")
	}
	if w, h := l.innerSize(); w <= 0 || h <= 0 {
		problems = append(problems, "portrait must be larger than twice the border")
	}
	if l.InnerRadius < 0 {
		problems = append(problems, "inner radius must not be negative")
	}
	if l.NameFontSize <= 0 || l.IdentifierFontSize <= 0 {
		problems = append(problems, "font sizes must be positive")
	}
	if l.ScanSize <= 0 {
		problems = append(problems, "scan size must be positive")
	}
	if l.ScanVersion < 1 || l.ScanVersion > 40 {
		problems = append(problems, "scan version must be between 1 and 40")
	}
	if l.ScanModuleSize < 1 {
		problems = append(problems, "scan module size must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid badge layout: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Filename is the suggested download name for a member's badge.
func (l Layout) Filename(identifier string) string {
	return l.FilenamePrefix + identifier + ".pdf"
}
