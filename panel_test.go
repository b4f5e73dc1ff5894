package termpanel

import (
	"testing"
)

func TestNewPanel(t *testing.T) {
	p := NewPanel(2, 3)

	if p.Height() != 2 {
		t.Errorf("Height = %d, want 2", p.Height())
	}
	if p.Width() != 3 {
		t.Errorf("Width = %d, want 3", p.Width())
	}

	c := p.Cell(1, 2)
	if c.Char != ' ' {
		t.Errorf("blank cell char = %q, want space", c.Char)
	}
	if c.Flags != 0 {
		t.Errorf("blank cell flags = %v, want 0", c.Flags)
	}
}

func TestNewPanel_NegativeDims(t *testing.T) {
	p := NewPanel(-1, -5)

	if p.Height() != 0 || p.Width() != 0 {
		t.Errorf("size = %dx%d, want 0x0", p.Height(), p.Width())
	}
	if p.Text() != "" {
		t.Errorf("Text = %q, want empty", p.Text())
	}
}

func TestPanel_FromTerminal(t *testing.T) {
	term := New(WithSize(3, 10))
	term.WriteString("Hello\r\nWorld")

	p := term.Panel()

	if p.Height() != 3 || p.Width() != 10 {
		t.Errorf("size = %dx%d, want 3x10", p.Height(), p.Width())
	}
	if got := p.Cell(0, 0).Char; got != 'H' {
		t.Errorf("Cell(0,0) = %q, want 'H'", got)
	}
	if got := p.Cell(1, 4).Char; got != 'd' {
		t.Errorf("Cell(1,4) = %q, want 'd'", got)
	}
}

func TestPanel_Immutable(t *testing.T) {
	term := New(WithSize(2, 10))
	term.WriteString("before")

	p := term.Panel()
	term.WriteString("\x1b[2J\x1b[Hafter")

	if got := p.Line(0); got != "before" {
		t.Errorf("snapshot changed after terminal write: %q", got)
	}
	if got := term.Panel().Line(0); got != "after" {
		t.Errorf("terminal content = %q, want %q", got, "after")
	}
}

func TestPanelRow_ReturnsCopy(t *testing.T) {
	term := New(WithSize(1, 5))
	term.WriteString("abc")

	p := term.Panel()
	row := p.Row(0)
	row[0].Char = 'Z'

	if got := p.Cell(0, 0).Char; got != 'a' {
		t.Errorf("mutating Row copy changed panel: %q", got)
	}
}

func TestPanelResize_SameSizeReturnsReceiver(t *testing.T) {
	p := NewPanel(4, 6)

	if p.Resize(4, 6) != p {
		t.Error("Resize to same size should return the receiver")
	}
}

func TestPanelResize_Grow(t *testing.T) {
	term := New(WithSize(2, 5))
	term.WriteString("Hi\r\nYo")
	p := term.Panel()

	grown := p.Resize(3, 8)

	if grown.Height() != 3 || grown.Width() != 8 {
		t.Fatalf("size = %dx%d, want 3x8", grown.Height(), grown.Width())
	}
	if got := grown.Line(0); got != "Hi" {
		t.Errorf("Line(0) = %q, want %q", got, "Hi")
	}
	if got := grown.Cell(2, 7).Char; got != ' ' {
		t.Errorf("new cell = %q, want blank", got)
	}

	// Original is untouched
	if p.Height() != 2 || p.Width() != 5 {
		t.Errorf("original resized: %dx%d", p.Height(), p.Width())
	}
}

func TestPanelResize_Shrink(t *testing.T) {
	term := New(WithSize(3, 10))
	term.WriteString("Hello\r\nWorld\r\nAgain")
	p := term.Panel()

	small := p.Resize(1, 3)

	if small.Height() != 1 || small.Width() != 3 {
		t.Fatalf("size = %dx%d, want 1x3", small.Height(), small.Width())
	}
	if got := small.Line(0); got != "Hel" {
		t.Errorf("Line(0) = %q, want %q", got, "Hel")
	}
}

func TestPanelResizeWithFill(t *testing.T) {
	term := New(WithSize(1, 3))
	term.WriteString("abc")
	p := term.Panel()

	fill := NewCell()
	fill.Char = '#'
	big := p.ResizeWithFill(2, 5, fill)

	if got := big.Cell(0, 0).Char; got != 'a' {
		t.Errorf("carried cell = %q, want 'a'", got)
	}
	if got := big.Cell(0, 4).Char; got != '#' {
		t.Errorf("fill cell = %q, want '#'", got)
	}
	if got := big.Cell(1, 1).Char; got != '#' {
		t.Errorf("fill row cell = %q, want '#'", got)
	}
}

func TestPanelLine_TrimsTrailingBlanks(t *testing.T) {
	term := New(WithSize(2, 20))
	term.WriteString("hi   ")

	if got := term.Panel().Line(0); got != "hi" {
		t.Errorf("Line(0) = %q, want %q", got, "hi")
	}
}

func TestPanelLine_PreservesInteriorBlanks(t *testing.T) {
	term := New(WithSize(1, 20))
	term.WriteString("a  b")

	if got := term.Panel().Line(0); got != "a  b" {
		t.Errorf("Line(0) = %q, want %q", got, "a  b")
	}
}

func TestPanelLine_OutOfRange(t *testing.T) {
	p := NewPanel(2, 2)

	if got := p.Line(-1); got != "" {
		t.Errorf("Line(-1) = %q, want empty", got)
	}
	if got := p.Line(5); got != "" {
		t.Errorf("Line(5) = %q, want empty", got)
	}
}

func TestPanelLine_WideChar(t *testing.T) {
	term := New(WithSize(1, 10))
	term.WriteString("日x")

	if got := term.Panel().Line(0); got != "日x" {
		t.Errorf("Line(0) = %q, want %q", got, "日x")
	}
}

func TestPanelText(t *testing.T) {
	term := New(WithSize(5, 10))
	term.WriteString("one\r\n\r\nthree")

	got := term.Panel().Text()
	want := "one\n\nthree"

	if got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestPanelText_Empty(t *testing.T) {
	p := NewPanel(3, 3)

	if got := p.Text(); got != "" {
		t.Errorf("Text = %q, want empty", got)
	}
}

func TestPanelString(t *testing.T) {
	term := New(WithSize(2, 10))
	term.WriteString("hello")

	p := term.Panel()
	if p.String() != p.Text() {
		t.Error("String should match Text")
	}
}

func TestPanelSearch(t *testing.T) {
	term := New(WithSize(3, 20))
	term.WriteString("abc abc\r\nxx abc")

	matches := term.Panel().Search("abc")

	want := []Position{{Row: 0, Col: 0}, {Row: 0, Col: 4}, {Row: 1, Col: 3}}
	if len(matches) != len(want) {
		t.Fatalf("matches = %v, want %v", matches, want)
	}
	for i := range want {
		if !matches[i].Equal(want[i]) {
			t.Errorf("matches[%d] = %v, want %v", i, matches[i], want[i])
		}
	}
}

func TestPanelSearch_NoMatch(t *testing.T) {
	term := New(WithSize(2, 10))
	term.WriteString("hello")

	if got := term.Panel().Search("xyz"); got != nil {
		t.Errorf("Search = %v, want nil", got)
	}
}

func TestPanelSearch_EmptyPattern(t *testing.T) {
	term := New(WithSize(2, 10))
	term.WriteString("hello")

	if got := term.Panel().Search(""); got != nil {
		t.Errorf("Search(\"\") = %v, want nil", got)
	}
}

func TestPanelTextBetween_SingleRow(t *testing.T) {
	term := New(WithSize(2, 10))
	term.WriteString("abcdef")

	got := term.Panel().TextBetween(Position{Row: 0, Col: 1}, Position{Row: 0, Col: 3})
	if got != "bcd" {
		t.Errorf("TextBetween = %q, want %q", got, "bcd")
	}
}

func TestPanelTextBetween_MultiRow(t *testing.T) {
	term := New(WithSize(3, 5))
	term.WriteString("Hello\r\nWorld\r\nAgain")

	got := term.Panel().TextBetween(Position{Row: 0, Col: 2}, Position{Row: 2, Col: 2})
	want := "llo\nWorld\nAga"

	if got != want {
		t.Errorf("TextBetween = %q, want %q", got, want)
	}
}

func TestPanelTextBetween_Normalizes(t *testing.T) {
	term := New(WithSize(2, 10))
	term.WriteString("abcdef")

	forward := term.Panel().TextBetween(Position{Row: 0, Col: 1}, Position{Row: 0, Col: 3})
	reverse := term.Panel().TextBetween(Position{Row: 0, Col: 3}, Position{Row: 0, Col: 1})

	if forward != reverse {
		t.Errorf("reversed selection = %q, want %q", reverse, forward)
	}
}

func TestPanelTextBetween_WideChar(t *testing.T) {
	term := New(WithSize(1, 10))
	term.WriteString("日本")

	got := term.Panel().TextBetween(Position{Row: 0, Col: 0}, Position{Row: 0, Col: 3})
	if got != "日本" {
		t.Errorf("TextBetween = %q, want %q", got, "日本")
	}
}

func TestPanelTextBetween_ClampsToGrid(t *testing.T) {
	term := New(WithSize(2, 5))
	term.WriteString("ab")

	got := term.Panel().TextBetween(Position{Row: 0, Col: 0}, Position{Row: 9, Col: 9})
	if got == "" {
		t.Error("TextBetween past the grid edge should still return in-range content")
	}
}
