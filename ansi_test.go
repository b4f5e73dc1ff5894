package termpanel

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

func TestDumpCell_Default(t *testing.T) {
	c := NewCell()
	c.Char = 'A'

	got := string(DumpCell(c))
	want := "\x1b[39m\x1b[49mA"

	if got != want {
		t.Errorf("DumpCell = %q, want %q", got, want)
	}
}

func TestDumpCell_NilColors(t *testing.T) {
	c := Cell{Char: 'x'}

	got := string(DumpCell(c))
	want := "\x1b[39m\x1b[49mx"

	if got != want {
		t.Errorf("DumpCell = %q, want %q", got, want)
	}
}

func TestDumpCell_IndexedColors(t *testing.T) {
	tests := []struct {
		name  string
		index int
		fg    bool
		want  string
	}{
		{"standard fg", 3, true, "\x1b[33m"},
		{"bright fg", 10, true, "\x1b[92m"},
		{"256 fg", 200, true, "\x1b[38;5;200m"},
		{"standard bg", 1, false, "\x1b[41m"},
		{"bright bg", 15, false, "\x1b[107m"},
		{"256 bg", 123, false, "\x1b[48;5;123m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCell()
			c.Char = 'x'
			if tt.fg {
				c.Fg = &IndexedColor{Index: tt.index}
			} else {
				c.Bg = &IndexedColor{Index: tt.index}
			}

			got := string(DumpCell(c))
			if !strings.Contains(got, tt.want) {
				t.Errorf("DumpCell = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestDumpCell_TrueColor(t *testing.T) {
	c := NewCell()
	c.Char = ' '
	c.Bg = RGBf(1.0, 0.0, 0.5)

	got := string(DumpCell(c))
	want := "\x1b[39m\x1b[48;2;255;0;127m "

	if got != want {
		t.Errorf("DumpCell = %q, want %q", got, want)
	}
}

func TestDumpCell_TrueColorForeground(t *testing.T) {
	c := NewCell()
	c.Char = 'R'
	c.Fg = color.RGBA{R: 10, G: 20, B: 30, A: 255}

	got := string(DumpCell(c))
	if !strings.Contains(got, "\x1b[38;2;10;20;30m") {
		t.Errorf("DumpCell = %q, want truecolor fg escape", got)
	}
}

func TestDumpCell_Attributes(t *testing.T) {
	c := NewCell()
	c.Char = 'B'
	c.SetFlag(CellFlagBold)
	c.SetFlag(CellFlagUnderline)

	got := string(DumpCell(c))
	want := "\x1b[1m\x1b[4m\x1b[39m\x1b[49mB"

	if got != want {
		t.Errorf("DumpCell = %q, want %q", got, want)
	}
}

func TestDumpCell_AttributeOrder(t *testing.T) {
	c := NewCell()
	c.Char = 'z'
	c.SetFlag(CellFlagStrike)
	c.SetFlag(CellFlagItalic)
	c.SetFlag(CellFlagDim)

	// Attributes come out in SGR code order regardless of set order
	got := string(DumpCell(c))
	want := "\x1b[2m\x1b[3m\x1b[9m\x1b[39m\x1b[49mz"

	if got != want {
		t.Errorf("DumpCell = %q, want %q", got, want)
	}
}

func TestDumpCell_UnderlineColor(t *testing.T) {
	c := NewCell()
	c.Char = 'u'
	c.SetFlag(CellFlagCurlyUnderline)
	c.UnderlineColor = &IndexedColor{Index: 196}

	got := string(DumpCell(c))
	if !strings.Contains(got, "\x1b[4:3m") {
		t.Errorf("DumpCell = %q, want curly underline escape", got)
	}
	if !strings.Contains(got, "\x1b[58;5;196m") {
		t.Errorf("DumpCell = %q, want underline color escape", got)
	}
}

func TestDumpCell_NoUnderlineColorWhenUnset(t *testing.T) {
	c := NewCell()
	c.Char = 'u'
	c.SetFlag(CellFlagUnderline)

	got := string(DumpCell(c))
	if strings.Contains(got, "\x1b[58") {
		t.Errorf("DumpCell = %q, unset underline color should emit no escape", got)
	}
}

func TestDumpCell_WideChar(t *testing.T) {
	c := NewCell()
	c.Char = '日'
	c.SetFlag(CellFlagWideChar)

	got := string(DumpCell(c))
	if !strings.HasSuffix(got, "日") {
		t.Errorf("DumpCell = %q, want trailing wide char", got)
	}
}

func TestPanelDump_Framing(t *testing.T) {
	term := New(WithSize(1, 2))
	term.WriteString("AB")

	got := string(term.Panel().Dump())
	want := "\x1b[s" +
		"\x1b[39m\x1b[49mA\x1b[0m" +
		"\x1b[39m\x1b[49mB\x1b[0m" +
		"\x1b[u\x1b[B"

	if got != want {
		t.Errorf("Dump = %q, want %q", got, want)
	}
}

func TestPanelDump_RowPerLine(t *testing.T) {
	term := New(WithSize(3, 4))
	term.WriteString("one\r\ntwo\r\nthr")

	dump := string(term.Panel().Dump())

	if got := strings.Count(dump, "\x1b[s"); got != 3 {
		t.Errorf("cursor saves = %d, want 3", got)
	}
	if got := strings.Count(dump, "\x1b[u\x1b[B"); got != 3 {
		t.Errorf("restore-and-down pairs = %d, want 3", got)
	}
}

func TestPanelDump_ResetAfterEveryCell(t *testing.T) {
	term := New(WithSize(1, 3))
	term.WriteString("\x1b[1;31mabc")

	dump := string(term.Panel().Dump())

	if got := strings.Count(dump, "\x1b[0m"); got != 3 {
		t.Errorf("resets = %d, want 3", got)
	}
}

func TestPanelWriteTo(t *testing.T) {
	term := New(WithSize(2, 3))
	term.WriteString("hi")
	panel := term.Panel()

	var buf bytes.Buffer
	n, err := panel.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo error: %v", err)
	}

	got := buf.String()
	if !strings.HasPrefix(got, "\x1b[1;1H") {
		t.Errorf("WriteTo output %q, want cursor-home prefix", got)
	}
	if got[6:] != string(panel.Dump()) {
		t.Error("WriteTo body differs from Dump")
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d", n, buf.Len())
	}
}

func TestDumpRoundTrip(t *testing.T) {
	src := New(WithSize(2, 10))
	src.WriteString("\x1b[31mRed\x1b[0m\r\n\x1b[1mBold")
	panel := src.Panel()

	dst := New(WithSize(2, 10))
	dst.Write(panel.Dump())
	replay := dst.Panel()

	if got, want := replay.Text(), panel.Text(); got != want {
		t.Errorf("round trip text = %q, want %q", got, want)
	}

	orig := panel.Cell(0, 0)
	back := replay.Cell(0, 0)
	if !colorsEqual(orig.Fg, back.Fg) {
		t.Errorf("round trip fg = %v, want %v", back.Fg, orig.Fg)
	}
	bold := replay.Cell(1, 0)
	if !bold.HasFlag(CellFlagBold) {
		t.Error("round trip lost bold flag on row 1")
	}
}
