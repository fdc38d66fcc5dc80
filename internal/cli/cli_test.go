package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/hailam/extinction/internal/storage"
)

func runScript(t *testing.T, store *storage.Store, lines ...string) string {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	c := New(in, &out, false)
	if store != nil {
		c.SetStore(store)
	}
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestQueenHuntToWin(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	out := runScript(t, store,
		"moves e2",
		"e2e4", "d7d5", "e4d5", "d8d5", "b1c3", "a7a6", "c3d5",
		"e7e5",
		"stats",
		"quit",
	)

	for _, want := range []string{
		"Extinction Chess",
		"New game. GOOD luck.",
		"     A  B  C  D  E  F  G  H",
		"  ." + strings.Repeat("`", 26) + ".",
		"8 |  r  n  b  q  k  b  n  r  |",
		"1 |  R  N  B  Q  K  B  N  R  |",
		"  `" + strings.Repeat(".", 26) + "`",
		"White's move (e.g., e2e4): ",
		"e2: e3 e4",
		"White Knight from C3 to D5",
		"Black Queen captured!",
		"Black's Queens are extinct.",
		"WHITE WINS",
		"game over>",
		"Game over. No moves allowed.",
		"Games: 1  White wins: 1  Black wins: 0",
		"Moves: 7",
		"Fastest win: 7 moves  Longest win: 7 moves",
		"Wins by eliminating Queens: 1",
		"White won by eliminating Queens in 7 moves",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTwoTokenMove(t *testing.T) {
	out := runScript(t, nil, "e2 e4", "quit")

	if !strings.Contains(out, "White Pawn from E2 to E4") {
		t.Error("the two-token move form was not applied")
	}
}

func TestColorCommand(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	out := runScript(t, store, "color", "color maybe", "color off", "quit")

	if strings.Count(out, "Usage: color on|off") != 2 {
		t.Error("bad color arguments should print usage")
	}

	prefs, err := store.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if prefs.ColoredOutput {
		t.Error("color off was not persisted")
	}
}

func TestRejectedInput(t *testing.T) {
	out := runScript(t, nil,
		"xx",
		"e2e5",
		"e7e5",
		"stats",
		"quit",
	)

	if !strings.Contains(out, "Invalid input format. Please use the format 'e2e4' or 'E2E4'.") {
		t.Error("malformed input should get the format notice")
	}
	if !strings.Contains(out, "Invalid move. Try again.") {
		t.Error("illegal moves should get the rejection notice")
	}
	if !strings.Contains(out, "No stats store open.") {
		t.Error("stats without a store should say so")
	}
}

func TestSetupCommand(t *testing.T) {
	out := runScript(t, nil,
		"setup rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w",
		"new",
		"moves a1",
		"setup nonsense",
		"setup 8/8/8/8/8/8/8/8 x",
		"quit",
	)

	if !strings.Contains(out, "WHITE WINS") {
		t.Error("a placement with the black queens gone should end the game at once")
	}
	if strings.Count(out, "New game. GOOD luck.") != 2 {
		t.Error("new should announce a fresh game")
	}
	if !strings.Contains(out, "No moves for White from a1.") {
		t.Error("output missing the walled-in rook notice")
	}
	if !strings.Contains(out, "Bad placement:") {
		t.Error("a malformed placement should be rejected")
	}
	if !strings.Contains(out, `Bad color "x", use w or b.`) {
		t.Error("a bad color should be rejected")
	}
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.svg")

	out := runScript(t, nil, "export "+path, "quit")

	if !strings.Contains(out, "Board written to "+path) {
		t.Fatalf("export did not report success:\n%s", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("exported file is not a complete SVG document")
	}
}

func TestExportDefaultPath(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG override only applies on Unix-like systems")
	}
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	out := runScript(t, nil, "e2e4", "export", "quit")

	dir, err := storage.GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir: %v", err)
	}
	if !strings.Contains(out, "Board written to "+filepath.Join(dir, "extinction-")) {
		t.Fatalf("export did not land in the data directory:\n%s", out)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "extinction-*.svg"))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("found %d exported files in %s, want 1", len(matches), dir)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	// The e2 and e4 squares carry the last-move tint.
	if got := strings.Count(string(data), "fill-opacity"); got != 2 {
		t.Errorf("exported file has %d highlight rects, want 2", got)
	}
}
