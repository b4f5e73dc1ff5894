package termpanel

import (
	"testing"
)

func TestImageManagerStore(t *testing.T) {
	m := NewImageManager()

	first := make([]byte, 64)
	second := make([]byte, 128)
	second[0] = 9

	idA := m.Store(4, 4, first)
	idB := m.Store(8, 4, second)

	if idA != 1 || idB != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", idA, idB)
	}
	if m.ImageCount() != 2 {
		t.Errorf("ImageCount() = %d, want 2", m.ImageCount())
	}
	if m.UsedMemory() != 192 {
		t.Errorf("UsedMemory() = %d, want 192", m.UsedMemory())
	}

	img := m.Image(idB)
	if img == nil {
		t.Fatal("Image returned nil for a stored id")
	}
	if img.Width != 8 || img.Height != 4 {
		t.Errorf("stored dimensions = %dx%d, want 8x4", img.Width, img.Height)
	}
	if m.Image(99) != nil {
		t.Error("Image returned data for an unknown id")
	}
}

func TestImageManagerStoreDeduplicates(t *testing.T) {
	m := NewImageManager()

	data := []byte("identical pixel data")
	first := m.Store(5, 4, data)
	again := m.Store(5, 4, data)

	if again != first {
		t.Errorf("duplicate store returned id %d, want %d", again, first)
	}
	if m.ImageCount() != 1 {
		t.Errorf("ImageCount() = %d, want 1", m.ImageCount())
	}
	if int(m.UsedMemory()) != len(data) {
		t.Errorf("UsedMemory() = %d, want %d", m.UsedMemory(), len(data))
	}
}

func TestImageManagerStoreWithID(t *testing.T) {
	m := NewImageManager()

	m.StoreWithID(7, 4, 4, make([]byte, 64))

	// Retransmitting the same id replaces the previous image
	replacement := make([]byte, 32)
	replacement[0] = 1
	m.StoreWithID(7, 8, 1, replacement)

	if m.ImageCount() != 1 {
		t.Errorf("ImageCount() = %d, want 1", m.ImageCount())
	}
	if m.UsedMemory() != 32 {
		t.Errorf("UsedMemory() = %d, want 32", m.UsedMemory())
	}

	img := m.Image(7)
	if img == nil {
		t.Fatal("expected image with id 7")
	}
	if img.Width != 8 || img.Height != 1 {
		t.Errorf("dimensions = %dx%d, want 8x1", img.Width, img.Height)
	}

	// Auto-assigned ids continue past explicit ones
	next := m.Store(2, 2, []byte{1, 2, 3, 4})
	if next <= 7 {
		t.Errorf("auto id = %d, want one past the explicit id", next)
	}
}

func TestImageManagerPlacements(t *testing.T) {
	m := NewImageManager()
	imageID := m.Store(10, 10, make([]byte, 400))

	p1 := m.Place(&ImagePlacement{ImageID: imageID, Row: 0, Col: 0, Cols: 2, Rows: 1})
	p2 := m.Place(&ImagePlacement{ImageID: imageID, Row: 3, Col: 4, Cols: 1, Rows: 2})

	if p1 != 1 || p2 != 2 {
		t.Errorf("placement ids = %d, %d, want 1, 2", p1, p2)
	}
	if m.PlacementCount() != 2 {
		t.Errorf("PlacementCount() = %d, want 2", m.PlacementCount())
	}
	if len(m.Placements()) != 2 {
		t.Errorf("Placements() returned %d entries, want 2", len(m.Placements()))
	}

	got := m.Placement(p2)
	if got == nil {
		t.Fatal("Placement returned nil for a live id")
	}
	if got.Row != 3 || got.Col != 4 {
		t.Errorf("placement at (%d,%d), want (3,4)", got.Row, got.Col)
	}

	m.RemovePlacement(p1)
	if m.PlacementCount() != 1 {
		t.Errorf("PlacementCount() after remove = %d, want 1", m.PlacementCount())
	}
	if m.Placement(p1) != nil {
		t.Error("removed placement still resolvable")
	}
}

func TestImageManagerRemovePlacementsForImage(t *testing.T) {
	m := NewImageManager()

	logo := m.Store(10, 10, []byte("logo pixels"))
	chart := m.Store(10, 10, []byte("chart pixels"))
	m.Place(&ImagePlacement{ImageID: logo, Row: 0, Col: 0, Cols: 1, Rows: 1})
	m.Place(&ImagePlacement{ImageID: logo, Row: 2, Col: 0, Cols: 1, Rows: 1})
	keep := m.Place(&ImagePlacement{ImageID: chart, Row: 4, Col: 0, Cols: 1, Rows: 1})

	m.RemovePlacementsForImage(logo)

	if m.PlacementCount() != 1 {
		t.Fatalf("PlacementCount() = %d, want 1", m.PlacementCount())
	}
	if m.Placement(keep) == nil {
		t.Error("placement of the other image was removed")
	}
	if m.ImageCount() != 2 {
		t.Errorf("ImageCount() = %d, want 2 (data untouched)", m.ImageCount())
	}
}

func TestImageManagerDeleteImage(t *testing.T) {
	m := NewImageManager()

	id := m.Store(10, 10, make([]byte, 400))
	m.Place(&ImagePlacement{ImageID: id, Row: 0, Col: 0, Cols: 1, Rows: 1})
	m.Place(&ImagePlacement{ImageID: id, Row: 5, Col: 0, Cols: 1, Rows: 1})

	m.DeleteImage(id)

	if m.ImageCount() != 0 {
		t.Errorf("ImageCount() = %d, want 0", m.ImageCount())
	}
	if m.UsedMemory() != 0 {
		t.Errorf("UsedMemory() = %d, want 0", m.UsedMemory())
	}
	if m.PlacementCount() != 0 {
		t.Errorf("PlacementCount() = %d, want 0", m.PlacementCount())
	}

	// Deleting an unknown id is a no-op
	m.DeleteImage(99)
}

func TestImageManagerClearPlacementsKeepsData(t *testing.T) {
	m := NewImageManager()

	id := m.Store(10, 10, make([]byte, 400))
	m.Place(&ImagePlacement{ImageID: id, Row: 0, Col: 0, Cols: 1, Rows: 1})

	m.ClearPlacements()

	if m.PlacementCount() != 0 {
		t.Errorf("PlacementCount() = %d, want 0", m.PlacementCount())
	}
	if m.ImageCount() != 1 || m.UsedMemory() != 400 {
		t.Errorf("image data dropped: count=%d mem=%d", m.ImageCount(), m.UsedMemory())
	}

	// A later placement can still reference the stored image
	m.Place(&ImagePlacement{ImageID: id, Row: 3, Col: 3, Cols: 1, Rows: 1})
	if m.PlacementCount() != 1 {
		t.Errorf("PlacementCount() = %d, want 1", m.PlacementCount())
	}
}

func TestImageManagerClear(t *testing.T) {
	m := NewImageManager()

	id := m.Store(10, 10, make([]byte, 400))
	m.Place(&ImagePlacement{ImageID: id, Row: 0, Col: 0, Cols: 1, Rows: 1})

	m.Clear()

	if m.ImageCount() != 0 || m.PlacementCount() != 0 || m.UsedMemory() != 0 {
		t.Errorf("Clear left count=%d placements=%d mem=%d",
			m.ImageCount(), m.PlacementCount(), m.UsedMemory())
	}
}

func TestImageManagerPruneSparesReferencedImages(t *testing.T) {
	m := NewImageManager()
	m.SetMaxMemory(150)

	kept := m.Store(10, 10, make([]byte, 100))
	m.Place(&ImagePlacement{ImageID: kept, Row: 0, Col: 0, Cols: 1, Rows: 1})

	// Pushing past the budget evicts unreferenced images only
	extra := make([]byte, 100)
	extra[0] = 1
	pruned := m.Store(10, 10, extra)

	if m.Image(kept) == nil {
		t.Error("referenced image was pruned")
	}
	if m.Image(pruned) != nil {
		t.Error("unreferenced image survived over budget")
	}
	if m.UsedMemory() != 100 {
		t.Errorf("UsedMemory() = %d, want 100", m.UsedMemory())
	}
}

func TestImageManagerRegionDeletes(t *testing.T) {
	tests := []struct {
		name      string
		del       func(m *ImageManager)
		survivors int
	}{
		{"position hit", func(m *ImageManager) { m.DeletePlacementsByPosition(1, 0) }, 2},
		{"position miss", func(m *ImageManager) { m.DeletePlacementsByPosition(3, 7) }, 3},
		{"row", func(m *ImageManager) { m.DeletePlacementsInRow(5) }, 2},
		{"column", func(m *ImageManager) { m.DeletePlacementsInColumn(4) }, 2},
		{"row range", func(m *ImageManager) { m.DeletePlacementsInRowRange(3, 8) }, 2},
		{"below", func(m *ImageManager) { m.DeletePlacementsBelow(3) }, 1},
		{"above", func(m *ImageManager) { m.DeletePlacementsAbove(6) }, 1},
		{"z index", func(m *ImageManager) { m.DeletePlacementsByZIndex(-1) }, 2},
	}

	for _, tt := range tests {
		m := NewImageManager()
		id := m.Store(10, 10, make([]byte, 400))

		// Three placements: rows 0-1 at cols 0-1 behind text,
		// rows 4-6 at cols 3-5, rows 9-10 at cols 8-9.
		m.Place(&ImagePlacement{ImageID: id, Row: 0, Col: 0, Cols: 2, Rows: 2, ZIndex: -1})
		m.Place(&ImagePlacement{ImageID: id, Row: 4, Col: 3, Cols: 3, Rows: 3})
		m.Place(&ImagePlacement{ImageID: id, Row: 9, Col: 8, Cols: 2, Rows: 2})

		tt.del(m)

		if got := m.PlacementCount(); got != tt.survivors {
			t.Errorf("%s: %d placements survive, want %d", tt.name, got, tt.survivors)
		}
	}
}

func TestCellImageReference(t *testing.T) {
	cell := NewCell()
	if cell.HasImage() {
		t.Error("blank cell reports an image")
	}

	cell.Image = &CellImage{PlacementID: 3, ImageID: 1, U1: 1.0, V1: 1.0, ZIndex: -1}
	if !cell.HasImage() {
		t.Error("cell with reference reports no image")
	}

	copied := cell.Copy()
	if copied.Image != cell.Image {
		t.Error("Copy should share the image reference")
	}

	cell.Reset()
	if cell.HasImage() {
		t.Error("Reset kept the image reference")
	}
}

func TestClearScreenRemovesPlacements(t *testing.T) {
	term := New(WithSize(24, 80))

	id := term.images.Store(10, 10, make([]byte, 400))
	term.images.Place(&ImagePlacement{ImageID: id, Row: 3, Col: 2, Cols: 2, Rows: 2})

	term.WriteString("\x1b[2J")

	if term.ImagePlacementCount() != 0 {
		t.Errorf("placements after CSI 2J = %d, want 0", term.ImagePlacementCount())
	}
	if term.ImageCount() != 1 {
		t.Errorf("images after CSI 2J = %d, want 1 (data kept)", term.ImageCount())
	}
}

func TestClearBelowRemovesPlacementsBelowCursor(t *testing.T) {
	term := New(WithSize(24, 80))

	id := term.images.Store(10, 10, make([]byte, 400))
	term.images.Place(&ImagePlacement{ImageID: id, Row: 1, Col: 0, Cols: 2, Rows: 2})
	term.images.Place(&ImagePlacement{ImageID: id, Row: 12, Col: 0, Cols: 2, Rows: 2})

	// Cursor on row 6, so CSI 0J erases from there downward
	term.WriteString("\x1b[7;1H")
	term.WriteString("\x1b[0J")

	placements := term.ImagePlacements()
	if len(placements) != 1 {
		t.Fatalf("placements after CSI 0J = %d, want 1", len(placements))
	}
	if placements[0].Row != 1 {
		t.Errorf("surviving placement at row %d, want 1", placements[0].Row)
	}
}

func TestClearAboveRemovesPlacementsAboveCursor(t *testing.T) {
	term := New(WithSize(24, 80))

	id := term.images.Store(10, 10, make([]byte, 400))
	term.images.Place(&ImagePlacement{ImageID: id, Row: 1, Col: 0, Cols: 2, Rows: 2})
	term.images.Place(&ImagePlacement{ImageID: id, Row: 12, Col: 0, Cols: 2, Rows: 2})

	term.WriteString("\x1b[7;1H")
	term.WriteString("\x1b[1J")

	placements := term.ImagePlacements()
	if len(placements) != 1 {
		t.Fatalf("placements after CSI 1J = %d, want 1", len(placements))
	}
	if placements[0].Row != 12 {
		t.Errorf("surviving placement at row %d, want 12", placements[0].Row)
	}
}

func TestResetClearsImageStorage(t *testing.T) {
	term := New(WithSize(24, 80))

	id := term.images.Store(10, 10, make([]byte, 400))
	term.images.Place(&ImagePlacement{ImageID: id, Row: 5, Col: 5, Cols: 2, Rows: 2})

	term.WriteString("\x1bc")

	if term.ImageCount() != 0 {
		t.Errorf("images after RIS = %d, want 0", term.ImageCount())
	}
	if term.ImagePlacementCount() != 0 {
		t.Errorf("placements after RIS = %d, want 0", term.ImagePlacementCount())
	}
}

func TestScreenSwitchClearsPlacements(t *testing.T) {
	term := New(WithSize(24, 80))

	id := term.images.Store(10, 10, make([]byte, 400))
	term.images.Place(&ImagePlacement{ImageID: id, Row: 5, Col: 5, Cols: 2, Rows: 2})

	term.WriteString("\x1b[?1049h")

	if term.ImagePlacementCount() != 0 {
		t.Errorf("placements after entering alternate screen = %d, want 0", term.ImagePlacementCount())
	}
	if term.ImageCount() != 1 {
		t.Errorf("images after entering alternate screen = %d, want 1", term.ImageCount())
	}

	// Placements made on the alternate screen go away on the way back too
	term.images.Place(&ImagePlacement{ImageID: id, Row: 0, Col: 0, Cols: 3, Rows: 3})
	term.WriteString("\x1b[?1049l")

	if term.ImagePlacementCount() != 0 {
		t.Errorf("placements after returning to primary = %d, want 0", term.ImagePlacementCount())
	}
}
