package model

import "github.com/goliatone/go-formdoc/pkg/formdoc"

// Block is one unit of the render-ready document model. Renderers consume
// blocks in slice order; the order is deterministic for identical input.
type Block interface {
	blockMarker()
}

// TitleBlock renders a section heading. PageBreakBefore forces the external
// renderer to start a fresh page before the heading.
type TitleBlock struct {
	Text            string
	PageBreakBefore bool
}

func (TitleBlock) blockMarker() {}

// CellKind discriminates table cell payloads.
type CellKind string

const (
	CellText  CellKind = "text"
	CellImage CellKind = "image"
	CellEmpty CellKind = "empty"
)

// CellStyle carries the visual register a cell was authored with. Styling
// itself (fonts, colors) belongs to the renderer; the model only names the
// role so renderers can map it onto their own theme.
type CellStyle string

const (
	StyleColumnHeader CellStyle = "columnHeader"
	StyleItemText     CellStyle = "itemText"
	StyleItemLabel    CellStyle = "itemLabel"
)

// Cell is a single slot of a table block. Exactly one of Text or Image is
// meaningful depending on Kind; empty cells keep paired columns rectangular.
type Cell struct {
	Kind  CellKind
	Text  string
	Style CellStyle
	Image *ImageData
	// Link is the original media source when the caller asked for images to
	// link back to their source.
	Link string
}

// EmptyCell is the filler slot used to pad short columns.
func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

// TextCell builds a text cell with the given style.
func TextCell(text string, style CellStyle) Cell {
	return Cell{Kind: CellText, Text: text, Style: style}
}

// ImageData is a resolved, size-bounded image payload encoded as a data URI.
type ImageData struct {
	DataURI string
	// Width and Height are the display bounds the layout reserves for the
	// image, in points. Renderers fit the image inside them.
	Width  float64
	Height float64
}

// TableBlock is a rectangular grid produced by pairing two columns. Widths
// follows the "*" stretch convention of the downstream layout engine.
type TableBlock struct {
	Widths []string
	Rows   [][]Cell
}

func (TableBlock) blockMarker() {}

// ImageBlock is a standalone image outside any table.
type ImageBlock struct {
	Image ImageData
}

func (ImageBlock) blockMarker() {}

// PageBreak forces a page boundary between blocks.
type PageBreak struct{}

func (PageBreak) blockMarker() {}

// AppendixEntry is one regulation disclosure.
type AppendixEntry struct {
	Label string
	Text  string
}

// AppendixBlock closes the document with the accumulated regulation
// disclosures. Entries appear once per triggering item occurrence.
type AppendixBlock struct {
	Title   string
	Entries []AppendixEntry
}

func (AppendixBlock) blockMarker() {}

// HeaderContent is what the page header shows on pages where it is enabled.
type HeaderContent struct {
	LogoDataURI string
	TitleLines  []string
}

// HeaderFunc produces the header for a page, or nil to omit it.
type HeaderFunc func(page int) *HeaderContent

// FooterFunc produces the footer text for a page given the total page count.
type FooterFunc func(page, total int) string

// Document is the finished model handed to a renderer: the ordered block
// sequence plus the page decoration generators the renderer invokes per page.
type Document struct {
	Blocks   []Block
	Header   HeaderFunc
	Footer   FooterFunc
	Language formdoc.Language
}
