package termpanel

// A Panel is an immutable snapshot of a rectangular cell grid. Rows and
// columns are 0-based, row-major. A Panel owns its cells outright: it never
// aliases live emulator state, so it stays valid however the source keeps
// mutating. The size is fixed at construction; Resize returns a new Panel.
type Panel struct {
	height int
	width  int
	cells  [][]Cell
}

// NewPanel creates a height x width panel of blank cells.
func NewPanel(height, width int) *Panel {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}

	cells := make([][]Cell, height)
	for row := 0; row < height; row++ {
		line := make([]Cell, width)
		for col := 0; col < width; col++ {
			line[col] = NewCell()
		}
		cells[row] = line
	}

	return &Panel{height: height, width: width, cells: cells}
}

// Height returns the number of rows.
func (p *Panel) Height() int {
	return p.height
}

// Width returns the number of columns.
func (p *Panel) Width() int {
	return p.width
}

// Cell returns the cell at (row, col).
// It panics if the position is out of range.
func (p *Panel) Cell(row, col int) Cell {
	return p.cells[row][col]
}

// Row returns a copy of the given row.
// It panics if the row is out of range.
func (p *Panel) Row(row int) []Cell {
	line := make([]Cell, p.width)
	copy(line, p.cells[row])
	return line
}

// Resize returns a panel of the new size with blank cells outside the
// overlapping region. When the size is unchanged the receiver is returned.
func (p *Panel) Resize(height, width int) *Panel {
	return p.ResizeWithFill(height, width, NewCell())
}

// ResizeWithFill returns a panel of the new size. Cells in the overlapping
// region are carried over; cells outside it are set to fill. The receiver is
// never mutated, and is returned as-is when the size is unchanged.
func (p *Panel) ResizeWithFill(height, width int, fill Cell) *Panel {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}

	if height == p.height && width == p.width {
		return p
	}

	cells := make([][]Cell, height)
	for row := 0; row < height; row++ {
		line := make([]Cell, width)
		for col := 0; col < width; col++ {
			if row < p.height && col < p.width {
				line[col] = p.cells[row][col]
			} else {
				line[col] = fill
			}
		}
		cells[row] = line
	}

	return &Panel{height: height, width: width, cells: cells}
}

// Line returns the text content of a row, trimming trailing blanks.
// Returns empty string if the row contains only blanks or is out of bounds.
func (p *Panel) Line(row int) string {
	if row < 0 || row >= p.height {
		return ""
	}

	// Find the last non-space character
	lastNonSpace := -1
	for col := p.width - 1; col >= 0; col-- {
		cell := &p.cells[row][col]
		if cell.Char != ' ' && cell.Char != 0 && !cell.IsWideSpacer() {
			lastNonSpace = col
			break
		}
	}

	if lastNonSpace < 0 {
		return ""
	}

	runes := make([]rune, 0, lastNonSpace+1)
	for col := 0; col <= lastNonSpace; col++ {
		cell := &p.cells[row][col]
		if cell.IsWideSpacer() {
			continue
		}
		if cell.Char == 0 {
			runes = append(runes, ' ')
		} else {
			runes = append(runes, cell.Char)
		}
	}

	return string(runes)
}

// Text returns the panel content as a newline-separated string.
// Trailing empty lines are omitted.
func (p *Panel) Text() string {
	var lines []string
	lastNonEmpty := -1

	for row := 0; row < p.height; row++ {
		line := p.Line(row)
		lines = append(lines, line)
		if line != "" {
			lastNonEmpty = row
		}
	}

	if lastNonEmpty < 0 {
		return ""
	}

	result := ""
	for i, line := range lines[:lastNonEmpty+1] {
		if i > 0 {
			result += "\n"
		}
		result += line
	}

	return result
}

// String implements fmt.Stringer.
func (p *Panel) String() string {
	return p.Text()
}

// Search finds all occurrences of pattern in the panel content.
// Returns positions of the first character of each match.
func (p *Panel) Search(pattern string) []Position {
	if pattern == "" {
		return nil
	}

	var matches []Position
	patternRunes := []rune(pattern)

	for row := 0; row < p.height; row++ {
		lineRunes := []rune(p.Line(row))

		for col := 0; col <= len(lineRunes)-len(patternRunes); col++ {
			found := true
			for i, pr := range patternRunes {
				if lineRunes[col+i] != pr {
					found = false
					break
				}
			}
			if found {
				matches = append(matches, Position{Row: row, Col: col})
			}
		}
	}

	return matches
}

// TextBetween extracts the text content between two positions, inclusive.
// The positions are normalized so the earlier one starts the region. Empty
// cells are converted to spaces, and newlines separate rows.
func (p *Panel) TextBetween(start, end Position) string {
	if end.Before(start) {
		start, end = end, start
	}

	var result []rune

	for row := start.Row; row <= end.Row && row < p.height; row++ {
		if row < 0 {
			continue
		}

		startCol := 0
		endCol := p.width

		if row == start.Row {
			startCol = start.Col
		}
		if row == end.Row {
			endCol = end.Col + 1
		}
		if startCol < 0 {
			startCol = 0
		}

		for col := startCol; col < endCol && col < p.width; col++ {
			cell := &p.cells[row][col]
			if cell.IsWideSpacer() {
				continue
			}
			if cell.Char == 0 {
				result = append(result, ' ')
			} else {
				result = append(result, cell.Char)
			}
		}

		// Add newline between rows (but not after last row)
		if row < end.Row {
			result = append(result, '\n')
		}
	}

	return string(result)
}

// Panel returns an immutable snapshot of the visible screen.
func (t *Terminal) Panel() *Panel {
	p := &Panel{
		height: t.rows,
		width:  t.cols,
		cells:  make([][]Cell, t.rows),
	}

	for row := 0; row < t.rows; row++ {
		line := make([]Cell, t.cols)
		for col := 0; col < t.cols; col++ {
			if cell := t.activeBuffer.Cell(row, col); cell != nil {
				line[col] = cell.Copy()
			} else {
				line[col] = NewCell()
			}
		}
		p.cells[row] = line
	}

	return p
}
