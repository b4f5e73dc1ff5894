package termpanel

import (
	"encoding/base64"
	"fmt"
	"image/color"
)

// ExportDetail specifies the level of detail in an export.
type ExportDetail string

const (
	// ExportDetailText returns plain text only.
	ExportDetailText ExportDetail = "text"
	// ExportDetailStyled returns text with style segments per line.
	ExportDetailStyled ExportDetail = "styled"
	// ExportDetailFull returns full cell-by-cell data.
	ExportDetailFull ExportDetail = "full"
)

// Export represents a complete screen capture in a serializable form.
type Export struct {
	Size   ExportSize    `json:"size"`
	Cursor ExportCursor  `json:"cursor"`
	Lines  []ExportLine  `json:"lines"`
	Images []ExportImage `json:"images,omitempty"`
}

// ExportSize holds screen dimensions.
type ExportSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// ExportCursor holds cursor state.
type ExportCursor struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Visible bool   `json:"visible"`
	Style   string `json:"style"`
}

// ExportLine represents a single line in the export.
type ExportLine struct {
	Text     string          `json:"text"`
	Segments []ExportSegment `json:"segments,omitempty"`
	Cells    []ExportCell    `json:"cells,omitempty"`
}

// ExportSegment represents a styled text segment within a line.
type ExportSegment struct {
	Text       string      `json:"text"`
	Fg         string      `json:"fg,omitempty"`
	Bg         string      `json:"bg,omitempty"`
	Attributes ExportAttrs `json:"attrs,omitempty"`
	Hyperlink  *ExportLink `json:"hyperlink,omitempty"`
}

// ExportCell represents a single cell with full attributes.
type ExportCell struct {
	Char           string      `json:"char"`
	Fg             string      `json:"fg"`
	Bg             string      `json:"bg"`
	UnderlineColor string      `json:"underline_color,omitempty"`
	Attributes     ExportAttrs `json:"attrs,omitempty"`
	Hyperlink      *ExportLink `json:"hyperlink,omitempty"`
	Wide           bool        `json:"wide,omitempty"`
	WideSpacer     bool        `json:"wide_spacer,omitempty"`
}

// ExportAttrs holds text formatting attributes. Underline is one of
// "single", "double", "curly", "dotted" or "dashed"; Blink is "slow"
// or "fast". Both are empty when the attribute is off.
type ExportAttrs struct {
	Bold          bool   `json:"bold,omitempty"`
	Dim           bool   `json:"dim,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Underline     string `json:"underline,omitempty"`
	Blink         string `json:"blink,omitempty"`
	Reverse       bool   `json:"reverse,omitempty"`
	Hidden        bool   `json:"hidden,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
}

// ExportLink holds hyperlink information.
type ExportLink struct {
	ID  string `json:"id,omitempty"`
	URI string `json:"uri"`
}

// ExportImage holds image placement metadata (without pixel data).
type ExportImage struct {
	ID          uint32 `json:"id"`           // Unique image ID
	PlacementID uint32 `json:"placement_id"` // Unique placement ID
	Row         int    `json:"row"`          // Position row (cells)
	Col         int    `json:"col"`          // Position column (cells)
	Rows        int    `json:"rows"`         // Size in rows (cells)
	Cols        int    `json:"cols"`         // Size in columns (cells)
	PixelWidth  uint32 `json:"pixel_width"`  // Original image width (pixels)
	PixelHeight uint32 `json:"pixel_height"` // Original image height (pixels)
	ZIndex      int32  `json:"z_index"`      // Z-index for layering
}

// ImageExport holds complete image data for retrieval.
type ImageExport struct {
	ID     uint32 `json:"id"`
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
	Format string `json:"format"` // "rgba" (raw RGBA pixels, base64 encoded)
	Data   string `json:"data"`   // Base64 encoded image data
}

// GetImageData returns the image data for the given ID, or nil if not found.
func (t *Terminal) GetImageData(id uint32) *ImageExport {
	img := t.images.Image(id)
	if img == nil {
		return nil
	}

	return &ImageExport{
		ID:     img.ID,
		Width:  img.Width,
		Height: img.Height,
		Format: "rgba",
		Data:   base64.StdEncoding.EncodeToString(img.Data),
	}
}

// Export captures the current screen state. Lines are produced from a
// panel snapshot; the detail parameter controls how much information
// is included per line.
func (t *Terminal) Export(detail ExportDetail) *Export {
	panel := t.Panel()

	exp := &Export{
		Size: ExportSize{
			Rows: panel.Height(),
			Cols: panel.Width(),
		},
		Cursor: ExportCursor{
			Row:     t.cursor.Row,
			Col:     t.cursor.Col,
			Visible: t.cursor.Visible,
			Style:   cursorStyleToString(t.cursor.Style),
		},
		Lines: make([]ExportLine, panel.Height()),
	}

	for row := 0; row < panel.Height(); row++ {
		exp.Lines[row] = exportLine(panel, row, detail)
	}

	// Include image placements
	exp.Images = t.exportImages()

	return exp
}

// exportImages returns all image placements with metadata.
func (t *Terminal) exportImages() []ExportImage {
	placements := t.images.Placements()
	if len(placements) == 0 {
		return nil
	}

	images := make([]ExportImage, 0, len(placements))
	for _, p := range placements {
		img := t.images.Image(p.ImageID)
		if img == nil {
			continue
		}

		images = append(images, ExportImage{
			ID:          p.ImageID,
			PlacementID: p.ID,
			Row:         p.Row,
			Col:         p.Col,
			Rows:        p.Rows,
			Cols:        p.Cols,
			PixelWidth:  img.Width,
			PixelHeight: img.Height,
			ZIndex:      p.ZIndex,
		})
	}

	return images
}

// exportLine captures a single panel row.
func exportLine(p *Panel, row int, detail ExportDetail) ExportLine {
	line := ExportLine{
		Text: p.Line(row),
	}

	switch detail {
	case ExportDetailText:
		// Just text, already set

	case ExportDetailStyled:
		line.Segments = lineToSegments(p, row)

	case ExportDetailFull:
		line.Cells = lineToCells(p, row)
	}

	return line
}

// lineToSegments converts a panel row to styled segments (runs of same style).
func lineToSegments(p *Panel, row int) []ExportSegment {
	var segments []ExportSegment
	var current *ExportSegment
	var currentChars []rune

	for col := 0; col < p.Width(); col++ {
		cell := p.Cell(row, col)
		if cell.IsWideSpacer() {
			continue
		}

		fg := colorToHex(cell.Fg)
		bg := colorToHex(cell.Bg)
		attrs := cellAttrsToExport(&cell)
		link := cellHyperlinkToExport(&cell)

		// Check if we need to start a new segment
		if current == nil || !segmentMatches(current, fg, bg, attrs, link) {
			// Save current segment if exists
			if current != nil && len(currentChars) > 0 {
				current.Text = string(currentChars)
				segments = append(segments, *current)
			}

			// Start new segment
			current = &ExportSegment{
				Fg:         fg,
				Bg:         bg,
				Attributes: attrs,
				Hyperlink:  link,
			}
			currentChars = nil
		}

		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}
		currentChars = append(currentChars, ch)
	}

	// Don't forget the last segment
	if current != nil && len(currentChars) > 0 {
		current.Text = string(currentChars)
		segments = append(segments, *current)
	}

	return segments
}

// lineToCells converts a panel row to full cell data.
func lineToCells(p *Panel, row int) []ExportCell {
	cells := make([]ExportCell, 0, p.Width())

	for col := 0; col < p.Width(); col++ {
		cell := p.Cell(row, col)

		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}

		ec := ExportCell{
			Char:           string(ch),
			Fg:             colorToHex(cell.Fg),
			Bg:             colorToHex(cell.Bg),
			UnderlineColor: colorToHex(cell.UnderlineColor),
			Attributes:     cellAttrsToExport(&cell),
			Hyperlink:      cellHyperlinkToExport(&cell),
			Wide:           cell.IsWide(),
			WideSpacer:     cell.IsWideSpacer(),
		}

		cells = append(cells, ec)
	}

	return cells
}

// segmentMatches checks if segment matches the given style.
func segmentMatches(seg *ExportSegment, fg, bg string, attrs ExportAttrs, link *ExportLink) bool {
	if seg.Fg != fg || seg.Bg != bg {
		return false
	}
	if seg.Attributes != attrs {
		return false
	}
	// Compare hyperlinks
	if seg.Hyperlink == nil && link == nil {
		return true
	}
	if seg.Hyperlink == nil || link == nil {
		return false
	}
	return seg.Hyperlink.URI == link.URI && seg.Hyperlink.ID == link.ID
}

// colorToHex converts a color to hex string.
func colorToHex(c color.Color) string {
	if c == nil {
		return ""
	}

	rgba := ResolveDefaultColor(c, true)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// cellAttrsToExport extracts cell attributes.
func cellAttrsToExport(cell *Cell) ExportAttrs {
	return ExportAttrs{
		Bold:          cell.HasFlag(CellFlagBold),
		Dim:           cell.HasFlag(CellFlagDim),
		Italic:        cell.HasFlag(CellFlagItalic),
		Underline:     underlineStyleToString(cell),
		Blink:         blinkStyleToString(cell),
		Reverse:       cell.HasFlag(CellFlagReverse),
		Hidden:        cell.HasFlag(CellFlagHidden),
		Strikethrough: cell.HasFlag(CellFlagStrike),
	}
}

// underlineStyleToString names the cell's underline style, or "" when
// the cell is not underlined.
func underlineStyleToString(cell *Cell) string {
	switch {
	case cell.HasFlag(CellFlagDoubleUnderline):
		return "double"
	case cell.HasFlag(CellFlagCurlyUnderline):
		return "curly"
	case cell.HasFlag(CellFlagDottedUnderline):
		return "dotted"
	case cell.HasFlag(CellFlagDashedUnderline):
		return "dashed"
	case cell.HasFlag(CellFlagUnderline):
		return "single"
	}
	return ""
}

// blinkStyleToString names the cell's blink speed, or "" when the cell
// does not blink.
func blinkStyleToString(cell *Cell) string {
	switch {
	case cell.HasFlag(CellFlagBlinkFast):
		return "fast"
	case cell.HasFlag(CellFlagBlinkSlow):
		return "slow"
	}
	return ""
}

// cellHyperlinkToExport extracts hyperlink info.
func cellHyperlinkToExport(cell *Cell) *ExportLink {
	if cell.Hyperlink == nil {
		return nil
	}
	return &ExportLink{
		ID:  cell.Hyperlink.ID,
		URI: cell.Hyperlink.URI,
	}
}

// cursorStyleToString converts cursor style to string.
func cursorStyleToString(style CursorStyle) string {
	switch style {
	case CursorStyleBlinkingBlock, CursorStyleSteadyBlock:
		return "block"
	case CursorStyleBlinkingUnderline, CursorStyleSteadyUnderline:
		return "underline"
	case CursorStyleBlinkingBar, CursorStyleSteadyBar:
		return "bar"
	default:
		return "block"
	}
}
