package layout

import "strings"

// Table metrics. Cell text is 9pt with the header at 10pt bold; heights are
// derived from a fixed line height rather than font metrics so layout stays
// independent of the painter.
const (
	cellPadding    = 6.0
	cellFontSize   = 9.0
	headFontSize   = 10.0
	cellLineHeight = 11.0
	headRowHeight  = headFontSize + 2*cellPadding

	// approxCharWidth estimates Helvetica at 9pt for wrapping decisions.
	// An estimate keeps the pass deterministic and painter-independent;
	// slightly conservative is fine, overflow is not.
	approxCharWidth = 0.5 * cellFontSize
)

type tableColumn struct {
	// width in points; 0 means take an equal share of the remaining width.
	width float64
	align Align
}

type tableCell struct {
	text  string
	bold  bool
	color RGB
}

type tableSpec struct {
	columns  []tableColumn
	header   []string
	headFill RGB
	headText RGB
	rows     [][]tableCell
	// rowFills tints individual rows; nil entries stay unfilled.
	rowFills []*RGB
}

// table lays out a bordered table through the composer's shared cursor.
// When a row does not fit the remaining page height the table breaks the
// page itself and repeats the header row on the continuation page; every
// data row lands exactly once.
func (c *composer) table(spec tableSpec) {
	widths := resolveWidths(spec.columns)

	// Never start a table so low that the header would sit alone above
	// the footer margin.
	firstRowH := headRowHeight
	if len(spec.rows) > 0 {
		firstRowH += rowHeight(spec.rows[0], widths)
	}
	c.breakIf(firstRowH)

	c.emitHeaderRow(spec, widths)
	for i, row := range spec.rows {
		h := rowHeight(row, widths)
		if c.y+h > PageHeight-bottomMargin {
			c.newPage()
			c.emitHeaderRow(spec, widths)
		}
		c.emitRow(row, spec.rowFills[i], spec.columns, widths, h)
	}
}

func (c *composer) emitHeaderRow(spec tableSpec, widths []float64) {
	x := marginX
	for i, title := range spec.header {
		c.add(Rect{
			X: x, Y: c.y, W: widths[i], H: headRowHeight,
			Fill: rgb(spec.headFill), Stroke: rgb(colorBorder),
		})
		c.add(cellText(title, x, c.y, widths[i], spec.columns[i].align, headFontSize, true, spec.headText)...)
		x += widths[i]
	}
	c.y += headRowHeight
}

func (c *composer) emitRow(row []tableCell, fill *RGB, columns []tableColumn, widths []float64, h float64) {
	x := marginX
	for i, cell := range row {
		c.add(Rect{
			X: x, Y: c.y, W: widths[i], H: h,
			Fill: fill, Stroke: rgb(colorBorder),
		})
		c.add(cellText(cell.text, x, c.y, widths[i], columns[i].align, cellFontSize, cell.bold, cell.color)...)
		x += widths[i]
	}
	c.y += h
}

// cellText wraps a cell's text to its column width and emits one Text per
// line, baselines spaced by the fixed line height.
func cellText(value string, x, y, width float64, align Align, size float64, bold bool, color RGB) []Element {
	lines := wrapText(value, maxChars(width))
	elements := make([]Element, 0, len(lines))
	for i, line := range lines {
		elements = append(elements, Text{
			X:     x + cellPadding,
			Y:     y + cellPadding + size*0.8 + float64(i)*cellLineHeight,
			W:     width - 2*cellPadding,
			Align: align,
			Size:  size,
			Bold:  bold,
			Color: color,
			Value: line,
		})
	}
	return elements
}

// rowHeight is the tallest wrapped cell plus vertical padding.
func rowHeight(row []tableCell, widths []float64) float64 {
	maxLines := 1
	for i, cell := range row {
		if n := len(wrapText(cell.text, maxChars(widths[i]))); n > maxLines {
			maxLines = n
		}
	}
	return float64(maxLines)*cellLineHeight + 2*cellPadding
}

// resolveWidths fills in auto columns with an equal share of the width left
// over after the fixed columns.
func resolveWidths(columns []tableColumn) []float64 {
	available := PageWidth - 2*marginX
	autoCount := 0
	for _, col := range columns {
		if col.width == 0 {
			autoCount++
			continue
		}
		available -= col.width
	}

	widths := make([]float64, len(columns))
	for i, col := range columns {
		if col.width == 0 {
			widths[i] = available / float64(autoCount)
			continue
		}
		widths[i] = col.width
	}
	return widths
}

func maxChars(width float64) int {
	n := int((width - 2*cellPadding) / approxCharWidth)
	if n < 1 {
		n = 1
	}
	return n
}

// wrapText greedily wraps on spaces, hard-splitting words longer than a
// whole line. Always returns at least one line so empty cells still occupy
// a row.
func wrapText(text string, limit int) []string {
	if text == "" {
		return []string{""}
	}

	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		for len(word) > limit {
			if current.Len() > 0 {
				lines = append(lines, current.String())
				current.Reset()
			}
			lines = append(lines, word[:limit])
			word = word[limit:]
		}
		switch {
		case current.Len() == 0:
			current.WriteString(word)
		case current.Len()+1+len(word) <= limit:
			current.WriteByte(' ')
			current.WriteString(word)
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
