package renderer

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/linestyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/ashramseva/donation-api/pkg/receiptdoc"
)

// devanagariFamily is the custom font family registered for Devanagari and
// mixed-script runs. The underlying fpdf engine does simple glyph
// placement without complex-script shaping, so Devanagari conjuncts render
// decomposed; the browser backend shapes them correctly.
const devanagariFamily = "devanagari"

// MarotoRenderer is the vector PDF backend built on maroto v2. It embeds
// the bundled Devanagari font from the resource provider; when the font is
// unavailable the layout degrades to the built-in Latin family instead of
// failing.
type MarotoRenderer struct {
	res receiptdoc.Provider
}

// NewMarotoRenderer creates the vector PDF backend.
func NewMarotoRenderer(res receiptdoc.Provider) *MarotoRenderer {
	return &MarotoRenderer{res: res}
}

func (r *MarotoRenderer) Name() string        { return NamePDF }
func (r *MarotoRenderer) ContentType() string { return "application/pdf" }

// Render implements Renderer.
func (r *MarotoRenderer) Render(ctx context.Context, doc *receiptdoc.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	customFonts, hasDevanagari := r.loadFonts()

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: fontfamily.Helvetica, Size: 10}).
		WithTitle(doc.Title, true)
	if len(customFonts) > 0 {
		builder = builder.WithCustomFonts(customFonts)
	}

	m := maroto.New(builder.Build())

	for _, sec := range doc.Sections {
		style := sectionStyle(sec.Box)
		for _, rw := range sec.Rows {
			m.AddRows(buildRow(rw, style, hasDevanagari))
		}
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("renderer: maroto generate: %w", err)
	}
	b := out.GetBytes()
	if len(b) == 0 {
		return nil, fmt.Errorf("renderer: maroto produced an empty document")
	}
	return b, nil
}

// loadFonts registers the Devanagari family from provider bytes. Both
// weights are registered; bold degrades to regular inside the provider.
func (r *MarotoRenderer) loadFonts() ([]*entity.CustomFont, bool) {
	if r.res == nil {
		return nil, false
	}
	regular, err := r.res.Font(receiptdoc.FontRegular)
	if err != nil {
		return nil, false
	}
	bold, err := r.res.Font(receiptdoc.FontBold)
	if err != nil {
		bold = regular
	}

	fonts, err := repository.New().
		AddUTF8FontFromBytes(devanagariFamily, fontstyle.Normal, regular).
		AddUTF8FontFromBytes(devanagariFamily, fontstyle.Bold, bold).
		AddUTF8FontFromBytes(devanagariFamily, fontstyle.Italic, regular).
		AddUTF8FontFromBytes(devanagariFamily, fontstyle.BoldItalic, bold).
		Load()
	if err != nil {
		return nil, false
	}
	return fonts, true
}

func sectionStyle(box receiptdoc.BoxStyle) *props.Cell {
	if !box.Border && box.Fill == nil {
		return nil
	}
	cell := &props.Cell{}
	if box.Border {
		cell.BorderType = border.Full
		cell.BorderThickness = 0.3
		cell.BorderColor = &props.Color{Red: 120, Green: 120, Blue: 120}
		if box.Dashed {
			cell.LineStyle = linestyle.Dashed
		}
	}
	if box.Fill != nil {
		cell.BackgroundColor = &props.Color{Red: int(box.Fill.R), Green: int(box.Fill.G), Blue: int(box.Fill.B)}
	}
	return cell
}

func buildRow(r receiptdoc.Row, style *props.Cell, hasDevanagari bool) core.Row {
	cols := make([]core.Col, 0, len(r.Cells))
	for _, cell := range r.Cells {
		cols = append(cols, buildCol(cell, hasDevanagari))
	}
	built := row.New(r.Height).Add(cols...)
	if style != nil {
		built.WithStyle(style)
	}
	return built
}

func buildCol(cell receiptdoc.Cell, hasDevanagari bool) core.Col {
	c := col.New(cell.Span)
	if cell.Image != nil {
		c.Add(image.NewFromBytes(cell.Image.Bytes, extension.Type(cell.Image.Ext), props.Rect{
			Center:  cell.Align == receiptdoc.AlignCenter,
			Percent: 85,
		}))
		if cell.Image.Caption != "" {
			c.Add(text.New(cell.Image.Caption, props.Text{
				Top:    15,
				Size:   6,
				Align:  align.Center,
				Family: family(receiptdoc.TextStyle{Script: receiptdoc.ScriptMixed}, hasDevanagari),
			}))
		}
	}
	for _, line := range cell.Lines {
		c.Add(text.New(line.Text, textProps(line, cell.Align, hasDevanagari)))
	}
	return c
}

func textProps(line receiptdoc.TextLine, cellAlign receiptdoc.Align, hasDevanagari bool) props.Text {
	p := props.Text{
		Top:    line.Top,
		Size:   line.Style.SizePt,
		Align:  alignOf(cellAlign),
		Family: family(line.Style, hasDevanagari),
		Style:  styleOf(line.Style),
	}
	if line.Style.Color != nil {
		p.Color = &props.Color{
			Red:   int(line.Style.Color.R),
			Green: int(line.Style.Color.G),
			Blue:  int(line.Style.Color.B),
		}
	}
	return p
}

// family picks the font per script. Mixed-script lines cannot assume the
// Latin family covers Devanagari, so they use the Devanagari family, which
// bundles Latin coverage.
func family(s receiptdoc.TextStyle, hasDevanagari bool) string {
	switch s.Script {
	case receiptdoc.ScriptDevanagari, receiptdoc.ScriptMixed:
		if hasDevanagari {
			return devanagariFamily
		}
		return fontfamily.Helvetica
	default:
		if s.Mono {
			return fontfamily.Courier
		}
		return fontfamily.Helvetica
	}
}

func styleOf(s receiptdoc.TextStyle) fontstyle.Type {
	switch {
	case s.Bold && s.Italic:
		return fontstyle.BoldItalic
	case s.Bold:
		return fontstyle.Bold
	case s.Italic:
		return fontstyle.Italic
	default:
		return fontstyle.Normal
	}
}

func alignOf(a receiptdoc.Align) align.Type {
	switch a {
	case receiptdoc.AlignCenter:
		return align.Center
	case receiptdoc.AlignRight:
		return align.Right
	default:
		return align.Left
	}
}
