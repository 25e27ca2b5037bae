package receiptdoc

import "strings"

// A4 page dimensions in millimetres. The layout is single-page and
// append-only top to bottom; there is no page-break handling, so overlong
// content can overflow the page. That is the documented visual contract.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// Section names, stable across render backends. Tests and callers inspect
// the tree by these names.
const (
	SectionRegistration    = "registration"
	SectionHeader          = "header"
	SectionReceiptCallout  = "receipt-callout"
	SectionInfoCards       = "info-cards"
	SectionDonationDetails = "donation-details"
	SectionNotes           = "notes"
	SectionAmountInWords   = "amount-in-words"
	SectionSignature       = "signature"
)

// Align positions content within a cell.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Script tells the renderer which font family a text run needs. Latin runs
// may use a Latin-only family; Devanagari and mixed-script runs must use a
// family proven to cover Devanagari.
type Script int

const (
	ScriptLatin Script = iota
	ScriptDevanagari
	ScriptMixed
)

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// Accent is the organization accent color used for the receipt number,
// email address, and amount emphasis.
var (
	Accent    = Color{R: 183, G: 28, B: 28}
	InkGray   = Color{R: 95, G: 99, B: 104}
	PanelTint = Color{R: 251, G: 247, B: 240}
)

// TextStyle describes how a text line is painted.
type TextStyle struct {
	SizePt float64
	Bold   bool
	Italic bool
	Mono   bool
	Color  *Color // nil means default ink
	Script Script
}

// TextLine is one line of text inside a cell. Top is the vertical offset
// from the cell top in millimetres.
type TextLine struct {
	Text  string
	Top   float64
	Style TextStyle
}

// Image is an embedded raster image (logo). Ext is the format without the
// dot, e.g. "png".
type Image struct {
	Bytes   []byte
	Ext     string
	Caption string
}

// Cell occupies Span of the 12-column grid.
type Cell struct {
	Span  int
	Align Align
	Lines []TextLine
	Image *Image
}

// Row is a horizontal band of cells with a fixed height in millimetres.
type Row struct {
	Height float64
	Cells  []Cell
}

// BoxStyle draws an optional border/fill around a whole section.
type BoxStyle struct {
	Border  bool
	Dashed  bool
	Rounded bool
	Fill    *Color
}

// Section is a named region of the receipt. Optional regions (notes, donor
// ID line) are structurally absent when their data is absent, never
// rendered as empty boxes.
type Section struct {
	Name string
	Box  BoxStyle
	Rows []Row
}

// Document is the backend-agnostic draw program for a single A4 receipt
// page, an ordered list of sections consumed by every render backend.
type Document struct {
	Title    string
	Sections []Section
}

// Section returns the named section, or nil when it is absent.
func (d *Document) Section(name string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Name == name {
			return &d.Sections[i]
		}
	}
	return nil
}

// ContainsText reports whether any text line in the document contains s.
func (d *Document) ContainsText(s string) bool {
	for _, sec := range d.Sections {
		for _, row := range sec.Rows {
			for _, cell := range row.Cells {
				for _, line := range cell.Lines {
					if strings.Contains(line.Text, s) {
						return true
					}
				}
			}
		}
	}
	return false
}

// Texts returns every text line in document order, useful for asserting on
// rendered content without a pixel comparison.
func (d *Document) Texts() []string {
	var out []string
	for _, sec := range d.Sections {
		for _, row := range sec.Rows {
			for _, cell := range row.Cells {
				for _, line := range cell.Lines {
					out = append(out, line.Text)
				}
			}
		}
	}
	return out
}
