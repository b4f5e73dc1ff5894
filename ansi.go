package termpanel

import (
	"fmt"
	"image/color"
	"io"
	"unicode/utf8"
)

// DumpCell encodes a single cell as the escape sequence that reproduces it:
// attribute escapes in SGR code order, then the foreground and background
// escapes, then the literal character (control characters included). A
// flag-free default-color cell encodes to exactly the two default-color
// escapes plus its character.
func DumpCell(c Cell) []byte {
	var buf []byte

	if c.HasFlag(CellFlagBold) {
		buf = append(buf, "\x1b[1m"...)
	}
	if c.HasFlag(CellFlagDim) {
		buf = append(buf, "\x1b[2m"...)
	}
	if c.HasFlag(CellFlagItalic) {
		buf = append(buf, "\x1b[3m"...)
	}
	if c.HasFlag(CellFlagUnderline) {
		buf = append(buf, "\x1b[4m"...)
	}
	if c.HasFlag(CellFlagDoubleUnderline) {
		buf = append(buf, "\x1b[21m"...)
	}
	if c.HasFlag(CellFlagCurlyUnderline) {
		buf = append(buf, "\x1b[4:3m"...)
	}
	if c.HasFlag(CellFlagDottedUnderline) {
		buf = append(buf, "\x1b[4:4m"...)
	}
	if c.HasFlag(CellFlagDashedUnderline) {
		buf = append(buf, "\x1b[4:5m"...)
	}
	if c.HasFlag(CellFlagBlinkSlow) {
		buf = append(buf, "\x1b[5m"...)
	}
	if c.HasFlag(CellFlagBlinkFast) {
		buf = append(buf, "\x1b[6m"...)
	}
	if c.HasFlag(CellFlagReverse) {
		buf = append(buf, "\x1b[7m"...)
	}
	if c.HasFlag(CellFlagHidden) {
		buf = append(buf, "\x1b[8m"...)
	}
	if c.HasFlag(CellFlagStrike) {
		buf = append(buf, "\x1b[9m"...)
	}

	buf = appendColor(buf, c.Fg, true)
	buf = appendColor(buf, c.Bg, false)
	buf = appendUnderlineColor(buf, c.UnderlineColor)

	return utf8.AppendRune(buf, c.Char)
}

// appendColor appends the escape selecting c on the given channel. Indexed
// colors use the short standard (0-7) and bright (8-15) forms, the 256-color
// form above that. Named colors map to their palette index when they have
// one, otherwise to the channel default.
func appendColor(buf []byte, c color.Color, fg bool) []byte {
	switch v := c.(type) {
	case nil:
		return appendDefaultColor(buf, fg)

	case *NamedColor:
		if v.Name >= 0 && v.Name < 256 {
			return appendIndexedColor(buf, v.Name, fg)
		}
		return appendDefaultColor(buf, fg)

	case *IndexedColor:
		if v.Index >= 0 && v.Index < 256 {
			return appendIndexedColor(buf, v.Index, fg)
		}
		return appendDefaultColor(buf, fg)

	case color.RGBA:
		if fg {
			return fmt.Appendf(buf, "\x1b[38;2;%d;%d;%dm", v.R, v.G, v.B)
		}
		return fmt.Appendf(buf, "\x1b[48;2;%d;%d;%dm", v.R, v.G, v.B)

	default:
		r, g, b, _ := c.RGBA()
		if fg {
			return fmt.Appendf(buf, "\x1b[38;2;%d;%d;%dm", uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
		return fmt.Appendf(buf, "\x1b[48;2;%d;%d;%dm", uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
}

func appendDefaultColor(buf []byte, fg bool) []byte {
	if fg {
		return append(buf, "\x1b[39m"...)
	}
	return append(buf, "\x1b[49m"...)
}

func appendIndexedColor(buf []byte, n int, fg bool) []byte {
	switch {
	case n < 8:
		if fg {
			return fmt.Appendf(buf, "\x1b[3%dm", n)
		}
		return fmt.Appendf(buf, "\x1b[4%dm", n)
	case n < 16:
		if fg {
			return fmt.Appendf(buf, "\x1b[9%dm", n-8)
		}
		return fmt.Appendf(buf, "\x1b[10%dm", n-8)
	default:
		if fg {
			return fmt.Appendf(buf, "\x1b[38;5;%dm", n)
		}
		return fmt.Appendf(buf, "\x1b[48;5;%dm", n)
	}
}

// appendUnderlineColor appends the SGR 58 escape when a concrete underline
// color is set. Unset and default underline colors follow the foreground,
// which needs no escape.
func appendUnderlineColor(buf []byte, c color.Color) []byte {
	switch v := c.(type) {
	case *IndexedColor:
		if v.Index >= 0 && v.Index < 256 {
			return fmt.Appendf(buf, "\x1b[58;5;%dm", v.Index)
		}
	case color.RGBA:
		return fmt.Appendf(buf, "\x1b[58;2;%d;%d;%dm", v.R, v.G, v.B)
	}
	return buf
}

// Dump encodes the whole panel as a byte stream that repaints it on the
// surface the cursor currently sits on. Each row is bracketed by a cursor
// save and restore, then the cursor steps one line down, so the block lands
// wherever the cursor was without assuming an absolute position. Every cell
// is followed by a full attribute reset; no style state is carried between
// cells, trading stream size for correctness.
func (p *Panel) Dump() []byte {
	var buf []byte

	for row := 0; row < p.height; row++ {
		buf = append(buf, "\x1b[s"...)
		for col := 0; col < p.width; col++ {
			buf = append(buf, DumpCell(p.cells[row][col])...)
			buf = append(buf, "\x1b[0m"...)
		}
		buf = append(buf, "\x1b[u"...)
		buf = append(buf, "\x1b[B"...)
	}

	return buf
}

// WriteTo writes the panel to w as a full-screen repaint: the encoded stream
// prefixed with a cursor-home escape. Implements io.WriterTo.
func (p *Panel) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, 6+p.height*p.width)
	buf = append(buf, "\x1b[1;1H"...)
	buf = append(buf, p.Dump()...)

	n, err := w.Write(buf)
	return int64(n), err
}
