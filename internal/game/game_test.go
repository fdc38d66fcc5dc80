package game

import (
	"errors"
	"testing"

	"github.com/hailam/extinction/internal/board"
)

func TestNewGame(t *testing.T) {
	g := New()

	if g.Turn() != board.White {
		t.Errorf("fresh game turn = %s, want White", g.Turn())
	}
	if g.Over() {
		t.Error("fresh game reported over")
	}
	if len(g.History()) != 0 {
		t.Errorf("fresh game has %d history entries", len(g.History()))
	}
	if _, ok := g.Eliminated(); ok {
		t.Error("fresh game reports an extinct type")
	}
}

// TestTurnPassesOnlyOnAppliedMoves checks that a rejected move keeps the turn
// with the same player and stays out of the log.
func TestTurnPassesOnlyOnAppliedMoves(t *testing.T) {
	g := New()

	if _, err := g.Move(board.A1, board.A5); !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("blocked rook move: got %v, want ErrIllegalMove", err)
	}
	if g.Turn() != board.White {
		t.Errorf("turn moved to %s after a rejected move", g.Turn())
	}
	if len(g.History()) != 0 {
		t.Error("rejected move was logged")
	}

	outcome, err := g.Move(board.E2, board.E4)
	if err != nil {
		t.Fatalf("e2e4: %v", err)
	}
	if outcome.Kind != board.AppliedQuiet {
		t.Errorf("e2e4 = %s, want %s", outcome.Kind, board.AppliedQuiet)
	}
	if g.Turn() != board.Black {
		t.Errorf("turn = %s after e2e4, want Black", g.Turn())
	}

	history := g.History()
	if len(history) != 1 || history[0].Seq != 1 || history[0].Color != board.White {
		t.Errorf("history = %+v, want one White move with seq 1", history)
	}
}

// TestGameEndsOnExtinction drives the queen-hunt line to the end and checks
// that the finished game refuses further moves.
func TestGameEndsOnExtinction(t *testing.T) {
	g := New()

	moves := []struct{ from, to board.Square }{
		{board.E2, board.E4},
		{board.D7, board.D5},
		{board.E4, board.D5},
		{board.D8, board.D5},
		{board.B1, board.C3},
		{board.A7, board.A6},
		{board.C3, board.D5},
	}
	for i, m := range moves {
		if _, err := g.Move(m.from, m.to); err != nil {
			t.Fatalf("move %d (%s%s): %v", i, m.from, m.to, err)
		}
	}

	if g.Status() != WhiteWon {
		t.Fatalf("status = %s, want %s", g.Status(), WhiteWon)
	}
	winner, over := g.Winner()
	if !over || winner != board.White {
		t.Fatalf("Winner() = %s, %t, want White, true", winner, over)
	}
	eliminated, ok := g.Eliminated()
	if !ok || eliminated != board.Queen {
		t.Errorf("Eliminated() = %s, %t, want Queen, true", eliminated, ok)
	}
	caps := g.Captures()
	if len(caps) != 2 || caps[board.Pawn] != 2 || caps[board.Queen] != 1 {
		t.Errorf("Captures() = %v, want 2 pawns and 1 queen", caps)
	}
	if g.Duration() <= 0 {
		t.Error("Duration() is not positive")
	}

	if _, err := g.Move(board.E7, board.E5); !errors.Is(err, ErrGameOver) {
		t.Errorf("move after the end: got %v, want ErrGameOver", err)
	}
	if g.LegalMoves(board.E7) != board.Empty {
		t.Error("finished game still offers legal moves")
	}
	if got := len(g.History()); got != 7 {
		t.Errorf("history has %d entries, want 7", got)
	}
}

func TestNewFromPlacement(t *testing.T) {
	// Black starts without a queen, so the game is over before any move.
	g, err := NewFromPlacement("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", board.Black)
	if err != nil {
		t.Fatal("Error building game:", err)
	}
	if g.Status() != WhiteWon {
		t.Errorf("status = %s, want %s", g.Status(), WhiteWon)
	}
	if eliminated, ok := g.Eliminated(); !ok || eliminated != board.Queen {
		t.Errorf("Eliminated() = %s, %t, want Queen, true", eliminated, ok)
	}

	if _, err := NewFromPlacement("not a placement", board.White); err == nil {
		t.Error("bad placement accepted")
	}
}
