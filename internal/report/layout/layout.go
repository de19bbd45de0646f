// Package layout computes the positioned page content of a validation
// report. It is a single forward pass over the snapshot with no
// backtracking: a vertical cursor walks down fixed-size pages, committing
// to page breaks as it goes, and a final chrome pass stamps the header and
// page-numbered footer once the page count is known.
//
// The pass is pure. Identical snapshots always produce identical pages;
// timestamps appear in the output as data but never influence positions.
package layout

// Page metrics in PostScript points for an A4 page.
const (
	PageWidth  = 595.28
	PageHeight = 841.89

	marginX      = 40.0
	topOffset    = 60.0
	bottomMargin = 60.0

	headerBaseline = 20.0
	footerBaseline = PageHeight - 20
)

// RGB is an 8-bit-per-channel colour.
type RGB struct {
	R, G, B int
}

var (
	colorBlack     = RGB{0, 0, 0}
	colorMuted     = RGB{100, 100, 100}
	colorCardLabel = RGB{80, 80, 80}
	colorHeadText  = RGB{36, 41, 47}
	colorWarnText  = RGB{117, 65, 16}
	colorGreen     = RGB{45, 164, 78}
	colorAmber     = RGB{251, 133, 0}
	colorRed       = RGB{218, 54, 51}
	colorBlue      = RGB{9, 105, 218}
	colorBorder    = RGB{220, 220, 220}

	fillCardGray  = RGB{246, 248, 250}
	fillCardBlue  = RGB{240, 249, 255}
	fillWarnHead  = RGB{255, 245, 245}
	fillMandatory = RGB{240, 255, 244}
)

// Align is the horizontal alignment of a text element within its box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text is a positioned run of text. Y is the baseline. For AlignLeft the
// anchor X is the left edge; for AlignCenter the text centres within
// [X, X+W]; for AlignRight the text ends at X.
type Text struct {
	X, Y  float64
	W     float64
	Align Align
	Size  float64
	Bold  bool
	Color RGB
	Value string
}

// Rect is a positioned rectangle. A nil Fill or Stroke suppresses that
// operation.
type Rect struct {
	X, Y, W, H float64
	Radius     float64
	Fill       *RGB
	Stroke     *RGB
}

// Element is one positioned drawing operation. Elements paint in slice
// order, so a row's background rectangle precedes its text.
type Element interface {
	element()
}

func (Text) element() {}
func (Rect) element() {}

// Page is one fixed-size output page.
type Page struct {
	Elements []Element
}

// Document is a fully laid-out report ready for painting.
type Document struct {
	Pages []Page
}

func rgb(c RGB) *RGB { return &c }

// tierColor maps a completion rate onto the shared three-tier palette.
func tierColor(completionRate float64) RGB {
	switch {
	case completionRate >= 70:
		return colorGreen
	case completionRate >= 40:
		return colorAmber
	default:
		return colorRed
	}
}
