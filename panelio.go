package termpanel

import "fmt"

// An Emulator is the terminal-emulation backend a PanelIO drives. It is
// treated as a black box: raw bytes go in through Write, rendered cells come
// out through CellAt. Size and CellAt use the backend's native column-first
// axis order; PanelIO translates to row-first at its own boundary and nowhere
// else.
type Emulator interface {
	// Size returns the grid dimensions in columns and rows.
	Size() (cols, rows int)

	// Write feeds raw terminal bytes to the emulator.
	Write(p []byte) (int, error)

	// CellAt returns the rendered cell at the given position, or ok=false
	// when the emulator has not materialized that position.
	CellAt(col, row int) (Cell, bool)
}

var _ Emulator = (*Terminal)(nil)

// A PanelIO connects panels to an emulator backend. Writes are normalized
// terminal input; reads are (row, col) addressed cells, with Snapshot
// capturing the whole grid as a Panel. Like the rest of the package it is
// not safe for concurrent use.
type PanelIO struct {
	backend Emulator
	height  int
	width   int
}

// NewPanelIO creates a PanelIO that owns a fresh Terminal backend of the
// given size. Non-positive dimensions are clamped to 1.
func NewPanelIO(height, width int) *PanelIO {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}
	return NewPanelIOWithBackend(New(WithSize(height, width)))
}

// NewPanelIOWithBackend wraps a caller-supplied backend. The PanelIO takes
// its dimensions from the backend at construction time.
func NewPanelIOWithBackend(backend Emulator) *PanelIO {
	cols, rows := backend.Size()
	return &PanelIO{
		backend: backend,
		height:  rows,
		width:   cols,
	}
}

// Size returns the grid dimensions in rows and columns.
func (p *PanelIO) Size() (height, width int) {
	return p.height, p.width
}

// Backend returns the wrapped emulator.
func (p *PanelIO) Backend() Emulator {
	return p.backend
}

// Get returns the rendered cell at (row, col). In-range positions the
// backend has not rendered yet read as blank cells. It panics if the
// position is out of range.
func (p *PanelIO) Get(row, col int) Cell {
	if row < 0 || row >= p.height || col < 0 || col >= p.width {
		panic(fmt.Sprintf("termpanel: index out of range [%d, %d] with size %dx%d", row, col, p.height, p.width))
	}

	cell, ok := p.backend.CellAt(col, row)
	if !ok {
		return NewCell()
	}
	return cell
}

// Write feeds data to the backend, inserting a CR before every LF so line
// breaks return the cursor to column 0. On success the returned count is
// len(data); backend errors are returned unchanged.
func (p *PanelIO) Write(data []byte) (int, error) {
	buf := make([]byte, 0, len(data))
	for _, b := range data {
		if b == '\n' {
			buf = append(buf, '\r')
		}
		buf = append(buf, b)
	}

	if _, err := p.backend.Write(buf); err != nil {
		return 0, err
	}
	return len(data), nil
}

// WriteString writes s through Write. Implements io.StringWriter.
func (p *PanelIO) WriteString(s string) (int, error) {
	return p.Write([]byte(s))
}

// WriteByte writes a single byte through Write. Implements io.ByteWriter.
func (p *PanelIO) WriteByte(b byte) error {
	_, err := p.Write([]byte{b})
	return err
}

// WritePanel repaints a panel into the backend by encoding it and feeding
// the bytes through the normal Write path, so the backend sees the same
// stream a real terminal would.
func (p *PanelIO) WritePanel(panel *Panel) error {
	_, err := p.Write(panel.Dump())
	return err
}

// Snapshot captures the current grid as an immutable Panel.
func (p *PanelIO) Snapshot() *Panel {
	panel := &Panel{
		height: p.height,
		width:  p.width,
		cells:  make([][]Cell, p.height),
	}

	for row := 0; row < p.height; row++ {
		line := make([]Cell, p.width)
		for col := 0; col < p.width; col++ {
			line[col] = p.Get(row, col)
		}
		panel.cells[row] = line
	}

	return panel
}
