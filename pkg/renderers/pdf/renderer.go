package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/goliatone/go-formdoc/pkg/model"
	"github.com/goliatone/go-formdoc/pkg/render"
)

// Page geometry in points, matching the layout the document model was
// designed against: wide top margin to fit the header stack, room at the
// bottom for the footer.
const (
	marginLeft   = 20.0
	marginTop    = 100.0
	marginRight  = 20.0
	marginBottom = 60.0

	lineHeight   = 14.0
	titleHeight  = 18.0
	cellPadding  = 4.0
	logoWidth    = 120.0
	imagePadding = 4.0
)

// totalPagesSentinel marks where the page total belongs in footer text; it
// is swapped for the gofpdf page-count alias before printing, since the
// real total is only known after layout.
const totalPagesSentinel = 987654321

type Option func(*Renderer)

// Renderer lays the block sequence out as a paginated PDF using the gofpdf
// engine: core fonts, manual two-column grids, header/footer hooks driven
// by the document's decoration generators.
type Renderer struct{}

// New constructs the PDF renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "pdf"
}

func (r *Renderer) ContentType() string {
	return "application/pdf"
}

func (r *Renderer) Render(ctx context.Context, doc model.Document, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pageSize := "Letter"
	if options.PageSize == render.PageSizeA4 {
		pageSize = "A4"
	}

	engine := gofpdf.New("P", "pt", pageSize, "")
	engine.SetMargins(marginLeft, marginTop, marginRight)
	engine.SetAutoPageBreak(true, marginBottom)
	engine.AliasNbPages("")
	translate := engine.UnicodeTranslatorFromDescriptor("")

	state := &renderState{
		engine:    engine,
		translate: translate,
		doc:       doc,
		options:   options,
	}
	engine.SetHeaderFunc(state.pageHeader)
	engine.SetFooterFunc(state.pageFooter)
	engine.AddPage()

	for _, block := range doc.Blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := state.renderBlock(block); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := engine.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf renderer: emit document: %w", err)
	}
	return buf.Bytes(), nil
}

type renderState struct {
	engine    *gofpdf.Fpdf
	translate func(string) string
	doc       model.Document
	options   render.Options

	imageSeq int
}

func (s *renderState) pageHeader() {
	if s.doc.Header == nil {
		return
	}
	if s.engine.PageNo() > 1 && !s.options.ShowHeaderOnAllPages {
		return
	}
	content := s.doc.Header(s.engine.PageNo())
	if content == nil {
		return
	}

	pageWidth, _ := s.engine.GetPageSize()
	y := 20.0
	if content.LogoDataURI != "" {
		if name, ok := s.registerImage(content.LogoDataURI); ok {
			s.engine.ImageOptions(name, (pageWidth-logoWidth)/2, y, logoWidth, 0, false, s.imageOptions(content.LogoDataURI), 0, "")
		}
		y += 50
	}

	s.engine.SetFont("Helvetica", "", 10)
	s.engine.SetTextColor(0, 0, 0)
	for _, line := range content.TitleLines {
		s.engine.SetXY(marginLeft, y)
		s.engine.CellFormat(pageWidth-marginLeft-marginRight, lineHeight, s.translate(line), "", 1, "C", false, 0, "")
		y += lineHeight
	}
}

func (s *renderState) pageFooter() {
	if s.doc.Footer == nil {
		return
	}
	if s.engine.PageNo() > 1 && !s.options.ShowFooterOnAllPages {
		return
	}

	pageWidth, pageHeight := s.engine.GetPageSize()
	y := pageHeight - marginBottom + 10

	s.engine.SetFont("Helvetica", "", 8)
	s.engine.SetTextColor(80, 80, 80)
	for _, line := range s.options.FooterTextLines {
		s.engine.SetXY(marginLeft, y)
		s.engine.CellFormat(pageWidth-marginLeft-marginRight, 10, s.translate(line), "", 1, "C", false, 0, "")
		y += 10
	}

	text := s.doc.Footer(s.engine.PageNo(), totalPagesSentinel)
	text = strings.ReplaceAll(text, strconv.Itoa(totalPagesSentinel), "{nb}")
	s.engine.SetXY(marginLeft, y)
	s.engine.CellFormat(pageWidth-marginLeft-marginRight, 10, s.translate(text), "", 0, "C", false, 0, "")
}

func (s *renderState) renderBlock(block model.Block) error {
	switch b := block.(type) {
	case model.TitleBlock:
		if b.PageBreakBefore {
			s.engine.AddPage()
		}
		s.engine.SetFont("Helvetica", "BU", 12)
		s.engine.SetTextColor(0, 0, 0)
		s.engine.CellFormat(0, titleHeight, s.translate(b.Text), "", 1, "L", false, 0, "")
		return nil

	case model.TableBlock:
		return s.renderTable(b)

	case model.ImageBlock:
		if name, ok := s.registerImage(b.Image.DataURI); ok {
			s.engine.ImageOptions(name, marginLeft, s.engine.GetY(), b.Image.Width, 0, true, s.imageOptions(b.Image.DataURI), 0, "")
		}
		return nil

	case model.PageBreak:
		s.engine.AddPage()
		return nil

	case model.AppendixBlock:
		s.engine.SetFont("Helvetica", "BU", 12)
		s.engine.SetTextColor(0, 0, 0)
		s.engine.CellFormat(0, titleHeight, s.translate(b.Title), "", 1, "L", false, 0, "")
		for _, entry := range b.Entries {
			s.engine.SetFont("Helvetica", "B", 10)
			s.engine.MultiCell(0, lineHeight, s.translate(entry.Label), "", "L", false)
			s.engine.SetFont("Helvetica", "", 10)
			s.engine.MultiCell(0, lineHeight, s.translate(entry.Text), "", "L", false)
			s.engine.Ln(6)
		}
		return nil

	default:
		return fmt.Errorf("pdf renderer: unsupported block %T", block)
	}
}

func (s *renderState) renderTable(table model.TableBlock) error {
	if len(table.Rows) == 0 {
		return nil
	}

	pageWidth, pageHeight := s.engine.GetPageSize()
	contentWidth := pageWidth - marginLeft - marginRight
	columns := len(table.Rows[0])
	if columns == 0 {
		return nil
	}
	colWidth := contentWidth / float64(columns)
	breakAt := pageHeight - marginBottom

	for rowIndex, row := range table.Rows {
		rowHeight := s.rowHeight(row, colWidth)

		if s.engine.GetY()+rowHeight > breakAt {
			s.engine.AddPage()
		}

		y := s.engine.GetY()
		headerRow := rowIndex == 0

		for colIndex, cell := range row {
			x := marginLeft + float64(colIndex)*colWidth
			s.renderCell(cell, x, y, colWidth, rowHeight, headerRow)
		}
		s.engine.SetXY(marginLeft, y+rowHeight)
	}

	s.engine.Ln(12)
	return nil
}

func (s *renderState) renderCell(cell model.Cell, x, y, width, height float64, header bool) {
	s.engine.SetDrawColor(120, 120, 120)
	s.engine.SetLineWidth(0.8)

	if header {
		s.engine.SetFillColor(74, 74, 74)
		s.engine.Rect(x, y, width, height, "FD")
	} else {
		s.engine.Rect(x, y, width, height, "D")
	}

	switch cell.Kind {
	case model.CellText:
		s.applyStyle(cell.Style, header)
		s.engine.SetXY(x+cellPadding, y+cellPadding/2)
		align := "L"
		if header || cell.Style == model.StyleItemLabel {
			align = "C"
		}
		s.engine.MultiCell(width-2*cellPadding, lineHeight, s.translate(cell.Text), "", align, false)

	case model.CellImage:
		if cell.Image == nil {
			return
		}
		if name, ok := s.registerImage(cell.Image.DataURI); ok {
			displayWidth := min(cell.Image.Width, width-2*imagePadding)
			s.engine.ImageOptions(name, x+(width-displayWidth)/2, y+imagePadding, displayWidth, 0, false, s.imageOptions(cell.Image.DataURI), 0, cell.Link)
		}

	case model.CellEmpty:
		// Border only; the slot pads a shorter column.
	}
}

func (s *renderState) applyStyle(style model.CellStyle, header bool) {
	switch {
	case header:
		s.engine.SetFont("Helvetica", "B", 10)
		s.engine.SetTextColor(255, 255, 255)
	case style == model.StyleItemLabel:
		s.engine.SetFont("Helvetica", "B", 10)
		s.engine.SetTextColor(60, 60, 60)
	default:
		s.engine.SetFont("Helvetica", "", 10)
		s.engine.SetTextColor(0, 0, 0)
	}
}

// rowHeight sizes a row to its tallest cell: wrapped text lines for text
// cells, the reserved image box for image cells.
func (s *renderState) rowHeight(row []model.Cell, colWidth float64) float64 {
	height := lineHeight + cellPadding
	for _, cell := range row {
		switch cell.Kind {
		case model.CellText:
			s.engine.SetFont("Helvetica", "", 10)
			lines := s.engine.SplitLines([]byte(s.translate(cell.Text)), colWidth-2*cellPadding)
			cellHeight := float64(len(lines))*lineHeight + cellPadding
			if cellHeight > height {
				height = cellHeight
			}
		case model.CellImage:
			if cell.Image != nil {
				cellHeight := cell.Image.Height + 2*imagePadding
				if cellHeight > height {
					height = cellHeight
				}
			}
		}
	}
	return height
}

// registerImage decodes a data URI and registers it with the engine once,
// returning the registration name. Invalid payloads are skipped so a bad
// image never aborts the render.
func (s *renderState) registerImage(dataURI string) (string, bool) {
	mime, payload, err := decodeDataURI(dataURI)
	if err != nil {
		return "", false
	}

	s.imageSeq++
	name := fmt.Sprintf("doc-image-%d", s.imageSeq)
	options := gofpdf.ImageOptions{ImageType: imageTypeFor(mime)}
	s.engine.RegisterImageOptionsReader(name, options, bytes.NewReader(payload))
	if s.engine.Err() {
		// Reset so one undecodable image does not poison the document.
		s.engine.ClearError()
		return "", false
	}
	return name, true
}

func (s *renderState) imageOptions(dataURI string) gofpdf.ImageOptions {
	mime, _, _ := decodeDataURI(dataURI)
	return gofpdf.ImageOptions{ImageType: imageTypeFor(mime)}
}

func imageTypeFor(mime string) string {
	switch mime {
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	default:
		return "JPEG"
	}
}

func decodeDataURI(uri string) (mime string, payload []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("pdf renderer: not a data uri")
	}
	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("pdf renderer: malformed data uri")
	}
	mime = strings.TrimSuffix(meta, ";base64")

	payload, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("pdf renderer: decode data uri: %w", err)
	}
	return mime, payload, nil
}
