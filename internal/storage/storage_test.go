package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/hailam/extinction/internal/board"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPreferencesRoundTrip(t *testing.T) {
	store := openTestStore(t)

	prefs, err := store.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if prefs.Username != "Player" {
		t.Errorf("default username = %q, want %q", prefs.Username, "Player")
	}
	if !prefs.SoundEnabled {
		t.Error("sound should be enabled by default")
	}

	if !prefs.ShowTargets || !prefs.ColoredOutput {
		t.Error("targets and colored output should be on by default")
	}

	prefs.Username = "Ada"
	prefs.SoundEnabled = false
	prefs.ShowTargets = false
	if err := store.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	loaded, err := store.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if loaded.Username != "Ada" || loaded.SoundEnabled || loaded.ShowTargets {
		t.Errorf("loaded %+v, want the saved preferences back", loaded)
	}
	if loaded.LastPlayed.IsZero() {
		t.Error("LastPlayed was not stamped on save")
	}
}

func TestRecordResult(t *testing.T) {
	store := openTestStore(t)

	res, err := store.RecordResult(GameResult{
		Winner:     board.White,
		Eliminated: board.Rook,
		Moves:      12,
		Duration:   3 * time.Minute,
		Captures:   map[board.PieceType]int{board.Rook: 2, board.Pawn: 3},
	})
	if err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	if res.ID == "" {
		t.Error("result has no ID")
	}
	_, err = store.RecordResult(GameResult{
		Winner:     board.Black,
		Eliminated: board.Queen,
		Moves:      30,
		Duration:   10 * time.Minute,
		Captures:   map[board.PieceType]int{board.Queen: 1},
	})
	if err != nil {
		t.Fatalf("RecordResult: %v", err)
	}

	stats, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 2 || stats.WhiteWins != 1 || stats.BlackWins != 1 {
		t.Errorf("stats = %+v, want 2 games split between the sides", stats)
	}
	if stats.TotalMoves != 42 {
		t.Errorf("TotalMoves = %d, want 42", stats.TotalMoves)
	}
	if stats.TotalPlayTime != 13*time.Minute {
		t.Errorf("TotalPlayTime = %v, want 13m", stats.TotalPlayTime)
	}
	if stats.ShortestWin != 12 || stats.LongestWin != 30 {
		t.Errorf("win lengths = %d/%d, want 12/30", stats.ShortestWin, stats.LongestWin)
	}
	if stats.WinsByType["Rook"] != 1 || stats.WinsByType["Queen"] != 1 {
		t.Errorf("WinsByType = %v, want one rook and one queen extinction", stats.WinsByType)
	}
	if stats.CapturesByType["Pawn"] != 3 || stats.CapturesByType["Rook"] != 2 || stats.CapturesByType["Queen"] != 1 {
		t.Errorf("CapturesByType = %v, want 3 pawns, 2 rooks, 1 queen", stats.CapturesByType)
	}

	results, err := store.Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Winner != board.White || results[0].Moves != 12 {
		t.Errorf("oldest result = %+v, want the white win", results[0])
	}
	if results[0].Eliminated != board.Rook || results[0].Duration != 3*time.Minute {
		t.Errorf("oldest result = %+v, want the rook extinction round-tripped", results[0])
	}
	if results[1].Winner != board.Black {
		t.Errorf("newest result = %+v, want the black win", results[1])
	}
}

func TestWinRate(t *testing.T) {
	empty := &Stats{}
	if rate := empty.WinRate(board.White); rate != 0 {
		t.Errorf("empty stats win rate = %.2f, want 0", rate)
	}

	stats := &Stats{GamesPlayed: 10, WhiteWins: 7, BlackWins: 3}
	if rate := stats.WinRate(board.White); rate != 70 {
		t.Errorf("white win rate = %.2f%%, want 70%%", rate)
	}
	if rate := stats.WinRate(board.Black); rate != 30 {
		t.Errorf("black win rate = %.2f%%, want 30%%", rate)
	}
}

func TestFirstLaunch(t *testing.T) {
	store := openTestStore(t)

	first, err := store.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if !first {
		t.Error("fresh store should report first launch")
	}

	if err := store.MarkFirstLaunchComplete(); err != nil {
		t.Fatalf("MarkFirstLaunchComplete: %v", err)
	}

	first, err = store.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if first {
		t.Error("first launch should be over after marking it complete")
	}
}

func TestDataPaths(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG override only applies on Unix-like systems")
	}
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if filepath.Base(dataDir) != appName {
		t.Errorf("data dir %q does not end in %q", dataDir, appName)
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("data directory was not created: %s", dataDir)
	}

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if filepath.Dir(dbDir) != dataDir {
		t.Errorf("database dir %q is not under %q", dbDir, dataDir)
	}
}
