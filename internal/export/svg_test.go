package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hailam/extinction/internal/board"
)

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	WriteSVG(&buf, board.NewPosition())

	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Error("output does not start with an XML header")
	}
	for _, want := range []string{"<svg", "</svg>", "♔", "♚", "♙", "♟"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// One background rect plus 64 squares.
	if got := strings.Count(out, "<rect"); got != 65 {
		t.Errorf("output has %d rects, want 65", got)
	}
}

func TestWriteSVGEmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	pos := &board.Position{}
	WriteSVG(&buf, pos)

	out := buf.String()
	for _, glyph := range glyphs {
		if strings.Contains(out, glyph) {
			t.Errorf("empty board output contains piece glyph %q", glyph)
		}
	}
}

func TestWriteBoardSVGLastMove(t *testing.T) {
	var buf bytes.Buffer
	WriteBoardSVG(&buf, board.NewPosition(), Options{LastFrom: board.E2, LastTo: board.E4})

	out := buf.String()
	// 65 base rects plus two last-move overlays.
	if got := strings.Count(out, "<rect"); got != 67 {
		t.Errorf("output has %d rects, want 67", got)
	}
	if got := strings.Count(out, "fill-opacity"); got != 2 {
		t.Errorf("output has %d overlay rects, want 2", got)
	}
}

func TestSaveSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.svg")
	if err := SaveSVG(path, board.NewPosition(), DefaultOptions()); err != nil {
		t.Fatalf("SaveSVG: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("saved file is not a complete SVG document")
	}
}

func TestDefaultFilename(t *testing.T) {
	name := DefaultFilename()
	if !strings.HasPrefix(name, "extinction-") || !strings.HasSuffix(name, ".svg") {
		t.Errorf("DefaultFilename() = %q, want extinction-<timestamp>.svg", name)
	}
	if len(name) != len("extinction-20060102-150405.svg") {
		t.Errorf("DefaultFilename() = %q has an unexpected timestamp width", name)
	}
}
