// Package pdf paints laid-out report pages to PDF bytes with go-pdf/fpdf.
// All positioning decisions are made by the layout package; this painter
// only translates elements into drawing calls.
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driven"
	"github.com/veridoc-labs/veridoc-cli/internal/report/layout"
)

// Ensure Renderer implements the interface.
var _ driven.ReportRenderer = (*Renderer)(nil)

// Renderer renders validation snapshots to PDF reports.
type Renderer struct{}

// NewRenderer creates a new PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays out the snapshot and paints the result to PDF bytes.
func (r *Renderer) Render(_ context.Context, snapshot *domain.Snapshot) ([]byte, error) {
	doc := layout.Compose(snapshot)

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineWidth(0.5)

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, element := range page.Elements {
			switch e := element.(type) {
			case layout.Rect:
				paintRect(pdf, e)
			case layout.Text:
				paintText(pdf, e)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func paintRect(pdf *fpdf.Fpdf, r layout.Rect) {
	style := ""
	if r.Fill != nil {
		pdf.SetFillColor(r.Fill.R, r.Fill.G, r.Fill.B)
		style += "F"
	}
	if r.Stroke != nil {
		pdf.SetDrawColor(r.Stroke.R, r.Stroke.G, r.Stroke.B)
		style += "D"
	}
	if style == "" {
		return
	}
	if r.Radius > 0 {
		pdf.RoundedRect(r.X, r.Y, r.W, r.H, r.Radius, "1234", style)
		return
	}
	pdf.Rect(r.X, r.Y, r.W, r.H, style)
}

func paintText(pdf *fpdf.Fpdf, t layout.Text) {
	fontStyle := ""
	if t.Bold {
		fontStyle = "B"
	}
	pdf.SetFont("Helvetica", fontStyle, t.Size)
	pdf.SetTextColor(t.Color.R, t.Color.G, t.Color.B)

	x := t.X
	switch t.Align {
	case layout.AlignCenter:
		x = t.X + (t.W-pdf.GetStringWidth(t.Value))/2
	case layout.AlignRight:
		x = t.X - pdf.GetStringWidth(t.Value)
	}
	pdf.Text(x, t.Y, t.Value)
}
