// Package termpanel models a rectangular terminal display panel and converts
// between styled cell grids and raw terminal byte streams, in both
// directions.
//
// Feeding bytes in: a [PanelIO] writes raw output (including ANSI escape
// sequences) into an emulator backend and reads back the grid of styled
// cells the stream produced. Getting bytes out: a [Panel] encodes itself as
// a minimal escape-sequence stream that repaints the same content on a real
// terminal. This makes the package useful for:
//
//   - Capturing and inspecting the rendered output of CLI tools
//   - Restoring a saved screen region onto a live terminal
//   - Building terminal recorders, multiplexers, and web terminals
//   - Automated testing of programs that draw with escape sequences
//
// # Quick Start
//
// Write a styled stream into a PanelIO and read the result:
//
//	pio := termpanel.NewPanelIO(24, 80)
//	pio.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!\n")
//
//	panel := pio.Snapshot()
//	fmt.Println(panel.Text())         // "Hello World!"
//	fmt.Println(panel.Cell(0, 0).Fg)  // red
//
//	os.Stdout.Write(panel.Dump())     // repaint it on this terminal
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [PanelIO]: Feeds bytes to a backend and reads cells back
//   - [Panel]: An immutable snapshot grid that encodes itself to bytes
//   - [Emulator]: The backend contract PanelIO drives
//   - [Terminal]: The production Emulator, a full escape-sequence
//     interpreter, also usable standalone
//   - [Cell]: A single character with colors and attributes
//
// # Panels
//
// A Panel is a fixed-size, fully-owned copy of a grid. It never changes
// after construction; Resize returns a new Panel:
//
//	panel := termpanel.NewPanel(10, 40)
//	bigger := panel.Resize(20, 60)          // blank-filled
//	padded := panel.ResizeWithFill(20, 60, fillCell)
//
// Text helpers operate on the snapshot: [Panel.Text], [Panel.Line],
// [Panel.Search], and [Panel.TextBetween] for region extraction.
//
// # Encoding
//
// [DumpCell] encodes one cell as attribute escapes, color escapes, and the
// literal character. [Panel.Dump] encodes the whole grid row by row,
// bracketing each row with cursor save/restore so the block repaints
// wherever the cursor happens to be. [Panel.WriteTo] prefixes the stream
// with a cursor-home escape for full-screen repaints:
//
//	panel.WriteTo(os.Stdout)
//
// Every cell is followed by a full reset, so the stream is larger than a
// delta encoding but never inherits stale attributes.
//
// # Custom Backends
//
// PanelIO talks to its backend through the [Emulator] interface: Size,
// Write, and CellAt. The built-in Terminal implements it; any other
// emulator can be wrapped instead:
//
//	pio := termpanel.NewPanelIOWithBackend(myEmulator)
//
// Backends report unmaterialized positions with ok=false from CellAt;
// PanelIO turns those into blank cells.
//
// # The Terminal Backend
//
// Terminal is a headless VT220-compatible emulator. It implements
// [io.Writer], so it can consume command output directly:
//
//	term := termpanel.New(
//	    termpanel.WithSize(24, 80),           // 24 rows, 80 columns
//	    termpanel.WithScrollback(storage),    // Enable scrollback
//	    termpanel.WithResponse(ptyWriter),    // Handle terminal responses
//	)
//
//	cmd := exec.Command("ls", "-la", "--color")
//	cmd.Stdout = term
//	cmd.Run()
//
//	fmt.Println(term.String())
//
// Terminal maintains two buffers: the primary buffer with optional
// scrollback, and the alternate buffer used by full-screen applications
// (vim, less, htop). Applications switch via CSI ?1049h/l; check
// IsAlternateScreen to see which is active.
//
// # Cells and Attributes
//
// Each cell stores a character with styling information:
//
//	cell := panel.Cell(row, col)
//	fmt.Printf("Char: %c\n", cell.Char)
//	fmt.Printf("Bold: %v\n", cell.HasFlag(termpanel.CellFlagBold))
//
// Cell flags include: Bold, Dim, Italic, Underline (five styles), Blink,
// Reverse, Hidden, Strike, plus wide-character markers.
//
// # Colors
//
// Colors are carried by Go's [image/color.Color] interface, with exactly
// one variant active per channel:
//
//   - nil or [*NamedColor]: the terminal default (or another semantic name)
//   - [*IndexedColor]: a 256-color palette reference (0-7 standard, 8-15
//     bright, 16-255 extended)
//   - [color.RGBA]: a 24-bit true color
//
// [RGBf] builds a true color from fractional components:
//
//	cell.Bg = termpanel.RGBf(1.0, 0.0, 0.5)
//
// The encoder picks the escape form from the variant, so an indexed color
// survives a round trip as the same palette reference rather than being
// flattened to RGB.
//
// # Providers
//
// Providers handle backend events and queries. All are optional with no-op
// defaults:
//
//   - [ResponseProvider]: Receives reports the terminal sends back (DSR, DA)
//   - [BellProvider]: Handles bell events
//   - [TitleProvider]: Handles window title changes (OSC 0/1/2)
//   - [ClipboardProvider]: Handles clipboard operations (OSC 52)
//   - [NotificationProvider]: Handles desktop notifications (OSC 99)
//   - [ScrollbackProvider]: Stores lines scrolled off screen
//   - [RecordingProvider]: Captures raw bytes entering the backend
//   - [SizeProvider]: Provides pixel dimensions for queries
//   - [ShellIntegrationProvider]: Receives shell prompt marks (OSC 133)
//
// # Scrollback
//
// Lines scrolled off the top of the primary buffer can be stored for later
// access:
//
//	storage := termpanel.NewMemoryScrollback(10000)
//	term := termpanel.New(termpanel.WithScrollback(storage))
//
//	for i := 0; i < term.ScrollbackLen(); i++ {
//	    line := term.ScrollbackLine(i) // []Cell
//	}
//
// # Search and Text Extraction
//
// Panels search their own content; the Terminal additionally searches
// scrollback with negative row numbers:
//
//	matches := panel.Search("error")
//	region := panel.TextBetween(start, end)
//	older := term.SearchScrollback("error")
//
// # Exports
//
// Capture the screen in a JSON-friendly form with [Terminal.Export], at
// detail levels text, styled (runs of equal style), or full (per-cell
// attributes, hyperlinks, image references).
//
// # Screenshots
//
// Render a panel to a raster image with [RenderPanel] or
// [RenderPanelWithConfig]; [Terminal.Screenshot] also overlays the cursor.
// TrueType fonts load via [LoadFont], with a built-in bitmap fallback.
//
// # Image Support
//
// The Terminal decodes inline images in the Sixel and Kitty graphics
// protocols when enabled with WithSixel and WithKitty:
//
//	for _, placement := range term.ImagePlacements() {
//	    img := term.Image(placement.ImageID)
//	    // img.Data contains RGBA pixels
//	}
//
// # Shell Integration
//
// Track shell prompts and command output (OSC 133):
//
//	marks := term.PromptMarks()
//	output := term.GetLastCommandOutput()
//
// # Auto-Resize Mode
//
// In auto-resize mode the buffer grows instead of scrolling, capturing
// complete output without truncation:
//
//	term := termpanel.New(termpanel.WithAutoResize())
//
// # Concurrency
//
// This package is single-threaded. No type performs internal locking,
// and no method is safe for concurrent use with any other method on the
// same value. Callers that share a Terminal, PanelIO, or ImageManager
// across goroutines must serialize access themselves. Panels are
// immutable after construction and safe to read concurrently.
//
// # Supported ANSI Sequences
//
// The Terminal backend supports a comprehensive set of escape sequences
// including:
//
//   - Cursor movement (CUU, CUD, CUF, CUB, CUP, HVP, etc.)
//   - Cursor save/restore (DECSC, DECRC)
//   - Erase commands (ED, EL, ECH)
//   - Insert/delete (ICH, DCH, IL, DL)
//   - Scrolling (SU, SD, DECSTBM)
//   - Character attributes (SGR) with full color support
//   - Terminal modes (DECSET, DECRST)
//   - Device status reports (DSR)
//   - Alternate screen buffer
//   - Bracketed paste mode
//   - Window title (OSC 0/1/2)
//   - Clipboard (OSC 52)
//   - Hyperlinks (OSC 8)
//   - Shell integration (OSC 133)
//   - Sixel and Kitty graphics
//
// For the complete list of supported sequences, see the [go-ansicode]
// package documentation.
//
// [go-ansicode]: https://github.com/danielgatis/go-ansicode
package termpanel
