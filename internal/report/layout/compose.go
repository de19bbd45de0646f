package layout

import (
	"fmt"
	"strconv"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// Compose runs the content pass followed by the chrome pass and returns the
// finished document.
func Compose(snapshot *domain.Snapshot) *Document {
	doc := ComposeContent(snapshot)
	StampChrome(doc, snapshot.FileName)
	return doc
}

// ComposeContent lays out the report body onto pages. Headers and footers
// are absent at this stage; the page count is not yet final.
func ComposeContent(snapshot *domain.Snapshot) *Document {
	c := newComposer()

	c.title(snapshot)
	c.summaryCards(snapshot)
	c.extractedFields(snapshot)
	c.missingFields(snapshot)
	c.complianceStatus(snapshot)

	return c.doc
}

// StampChrome adds the file-name header and right-aligned page-number
// footer to every page. It must run after the content pass, once the total
// page count is final.
func StampChrome(doc *Document, fileName string) {
	for i := range doc.Pages {
		doc.Pages[i].Elements = append(doc.Pages[i].Elements,
			Text{
				X: marginX, Y: headerBaseline,
				Size: 9, Color: colorMuted,
				Value: fileName,
			},
			Text{
				X: PageWidth - marginX, Y: footerBaseline,
				Align: AlignRight,
				Size:  9, Color: colorMuted,
				Value: fmt.Sprintf("Page %d", i+1),
			},
		)
	}
}

// composer carries the shared vertical cursor and page state. Sections and
// the table sub-routine both break pages through it, so there is a single
// source of truth for "where are we on which page".
type composer struct {
	doc *Document
	y   float64
}

func newComposer() *composer {
	return &composer{
		doc: &Document{Pages: []Page{{}}},
		y:   topOffset,
	}
}

func (c *composer) add(elements ...Element) {
	page := &c.doc.Pages[len(c.doc.Pages)-1]
	page.Elements = append(page.Elements, elements...)
}

// breakIf starts a new page when the required space would cross into the
// footer margin. required is a conservative estimate, not an exact height.
func (c *composer) breakIf(required float64) {
	if c.y+required > PageHeight-bottomMargin {
		c.newPage()
	}
}

func (c *composer) newPage() {
	c.doc.Pages = append(c.doc.Pages, Page{})
	c.y = topOffset
}

func (c *composer) title(snapshot *domain.Snapshot) {
	c.add(Text{
		X: marginX, Y: c.y,
		Size: 16, Bold: true, Color: colorBlack,
		Value: "E-Invoice Validation Report",
	})
	c.y += 30

	c.add(
		Text{
			X: marginX, Y: c.y,
			Size: 10, Color: colorBlack,
			Value: fmt.Sprintf("File: %s", snapshot.FileName),
		},
		Text{
			X: marginX, Y: c.y + 16,
			Size: 10, Color: colorBlack,
			Value: fmt.Sprintf("Generated: %s", snapshot.Timestamp),
		},
	)
	c.y += 40
}

func (c *composer) summaryCards(snapshot *domain.Snapshot) {
	c.breakIf(100)

	cardY := c.y
	cardH := 70.0
	gap := 12.0
	colW := (PageWidth - 2*marginX - gap) / 2

	c.add(
		Rect{
			X: marginX, Y: cardY, W: colW, H: cardH,
			Radius: 6, Fill: rgb(fillCardGray), Stroke: rgb(colorBorder),
		},
		Text{
			X: marginX + 15, Y: cardY + 22,
			Size: 10, Color: colorCardLabel,
			Value: "Mandatory fields identified",
		},
		Text{
			X: marginX + 15, Y: cardY + 50,
			Size: 24, Bold: true, Color: colorBlack,
			Value: fmt.Sprintf("%d/%d", snapshot.FieldsIdentified, domain.ChecklistSize),
		},
	)

	rightX := marginX + colW + gap
	c.add(
		Rect{
			X: rightX, Y: cardY, W: colW, H: cardH,
			Radius: 6, Fill: rgb(fillCardBlue), Stroke: rgb(colorBorder),
		},
		Text{
			X: rightX + 15, Y: cardY + 22,
			Size: 10, Color: colorCardLabel,
			Value: "Completion rate",
		},
		Text{
			X: rightX + 15, Y: cardY + 50,
			Size: 28, Bold: true, Color: tierColor(snapshot.CompletionRate),
			Value: formatRate(snapshot.CompletionRate) + "%",
		},
	)

	c.y = cardY + cardH + 40
}

func (c *composer) extractedFields(snapshot *domain.Snapshot) {
	c.breakIf(80)

	c.add(Text{
		X: marginX, Y: c.y,
		Size: 14, Bold: true, Color: colorBlack,
		Value: "Extracted Fields",
	})
	c.y += 20

	if len(snapshot.ExtractedFields) == 0 {
		c.add(Text{
			X: marginX, Y: c.y,
			Size: 10, Color: colorMuted,
			Value: "No fields were extracted from this document.",
		})
		c.y += 30
		return
	}

	spec := tableSpec{
		columns: []tableColumn{
			{width: 30, align: AlignCenter},
			{width: 150},
			{}, // value column takes the remaining width
			{width: 100, align: AlignCenter},
		},
		header:   []string{"#", "Field Name", "Value", "Type"},
		headFill: fillCardGray,
		headText: colorHeadText,
	}
	for i, field := range snapshot.ExtractedFields {
		tag := tableCell{text: "ADDITIONAL", color: colorBlue}
		var fill *RGB
		if field.IsMandatory {
			tag = tableCell{text: "MANDATORY", color: colorGreen, bold: true}
			fill = rgb(fillMandatory)
		}
		spec.rows = append(spec.rows, []tableCell{
			{text: strconv.Itoa(i + 1), color: colorBlack},
			{text: field.Name, color: colorBlack},
			{text: field.Value, color: colorBlack},
			tag,
		})
		spec.rowFills = append(spec.rowFills, fill)
	}

	c.table(spec)
	c.y += 30
}

func (c *composer) missingFields(snapshot *domain.Snapshot) {
	c.breakIf(80)

	missingCount := domain.ChecklistSize - snapshot.FieldsIdentified
	if missingCount < 0 {
		missingCount = 0
	}
	c.add(Text{
		X: marginX, Y: c.y,
		Size: 14, Bold: true, Color: colorBlack,
		Value: fmt.Sprintf("Missing Mandatory Fields (%d)", missingCount),
	})
	c.y += 20

	if len(snapshot.MissingFields) == 0 {
		c.add(Text{
			X: marginX, Y: c.y,
			Size: 11, Color: colorGreen,
			Value: "All mandatory fields are present!",
		})
		c.y += 30
		return
	}

	spec := tableSpec{
		columns: []tableColumn{
			{width: 30, align: AlignCenter},
			{},
		},
		header:   []string{"#", "Field Name"},
		headFill: fillWarnHead,
		headText: colorWarnText,
	}
	for i, name := range snapshot.MissingFields {
		spec.rows = append(spec.rows, []tableCell{
			{text: strconv.Itoa(i + 1), color: colorBlack},
			{text: name, color: colorBlack},
		})
		spec.rowFills = append(spec.rowFills, nil)
	}

	c.table(spec)
	c.y += 30
}

func (c *composer) complianceStatus(snapshot *domain.Snapshot) {
	c.breakIf(60)

	c.add(Text{
		X: marginX, Y: c.y,
		Size: 14, Bold: true, Color: colorBlack,
		Value: "Compliance Status",
	})
	c.y += 20

	tier := domain.TierFor(snapshot.CompletionRate)
	c.add(Text{
		X: marginX, Y: c.y,
		Size: 12, Bold: true, Color: tierColor(snapshot.CompletionRate),
		Value: tier.StatusText(),
	})
}

// formatRate prints a completion rate without trailing zeros, so 85 reads
// "85" and 52.9 reads "52.9".
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
