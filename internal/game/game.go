// Package game drives a single match: it owns turn order, the move log and
// the win state, while the board package below it stays turn-agnostic.
package game

import (
	"errors"
	"time"

	"github.com/hailam/extinction/internal/board"
)

// ErrGameOver is returned when a move is attempted after a side has won.
var ErrGameOver = errors.New("game is over")

// Status describes where a match stands.
type Status uint8

const (
	InProgress Status = iota
	WhiteWon
	BlackWon
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case WhiteWon:
		return "White won"
	case BlackWon:
		return "Black won"
	default:
		return "in progress"
	}
}

// Record is one applied move in the game log.
type Record struct {
	Seq     int
	Color   board.Color
	Outcome board.MoveOutcome
}

// Game couples a position with turn order and win tracking.
type Game struct {
	pos        *board.Position
	turn       board.Color
	status     Status
	eliminated board.PieceType
	started    time.Time
	history    []Record
}

// New starts a fresh game with White to move.
func New() *Game {
	return &Game{
		pos:        board.NewPosition(),
		turn:       board.White,
		eliminated: board.NoPieceType,
		started:    time.Now(),
	}
}

// NewFromPlacement starts a game from a placement string with the given side
// to move. A position that already has an extinct type is over immediately.
func NewFromPlacement(placement string, turn board.Color) (*Game, error) {
	pos, err := board.ParsePlacement(placement)
	if err != nil {
		return nil, err
	}

	g := &Game{
		pos:        pos,
		turn:       turn,
		eliminated: board.NoPieceType,
		started:    time.Now(),
	}
	g.updateStatus()
	return g, nil
}

// Position returns the live position. Callers must not mutate it directly.
func (g *Game) Position() *board.Position {
	return g.pos
}

// Turn returns the color to move.
func (g *Game) Turn() board.Color {
	return g.turn
}

// Status returns the current match status.
func (g *Game) Status() Status {
	return g.status
}

// Over returns true once a side has won.
func (g *Game) Over() bool {
	return g.status != InProgress
}

// Winner returns the winning color once the game is over.
func (g *Game) Winner() (board.Color, bool) {
	switch g.status {
	case WhiteWon:
		return board.White, true
	case BlackWon:
		return board.Black, true
	default:
		return board.NoColor, false
	}
}

// Eliminated returns the piece type whose extinction ended the game. The
// second return is false while the game is still in progress.
func (g *Game) Eliminated() (board.PieceType, bool) {
	return g.eliminated, g.eliminated != board.NoPieceType
}

// Duration returns how long the game has been running.
func (g *Game) Duration() time.Duration {
	return time.Since(g.started)
}

// History returns the applied moves in order. The slice is shared; callers
// must not modify it.
func (g *Game) History() []Record {
	return g.history
}

// Captures tallies the pieces captured so far, keyed by type.
func (g *Game) Captures() map[board.PieceType]int {
	caps := make(map[board.PieceType]int)
	for _, rec := range g.history {
		if rec.Outcome.Captured != board.NoPieceType {
			caps[rec.Outcome.Captured]++
		}
	}
	return caps
}

// LegalMoves returns the destinations the side to move has for the piece on
// the given square.
func (g *Game) LegalMoves(from board.Square) board.Bitboard {
	if g.Over() {
		return board.Empty
	}
	return g.pos.LegalMoves(g.turn, from)
}

// Move attempts a move for the side to move. The turn passes only when the
// move applies; a rejected move leaves both position and turn unchanged.
func (g *Game) Move(from, to board.Square) (board.MoveOutcome, error) {
	if g.Over() {
		return board.MoveOutcome{
			Kind:     board.Illegal,
			From:     from,
			To:       to,
			Piece:    board.NoPieceType,
			Captured: board.NoPieceType,
		}, ErrGameOver
	}

	outcome, err := g.pos.AttemptMove(g.turn, from, to)
	if err != nil {
		return outcome, err
	}

	g.history = append(g.history, Record{
		Seq:     len(g.history) + 1,
		Color:   g.turn,
		Outcome: outcome,
	})
	g.turn = g.turn.Other()
	g.updateStatus()

	return outcome, nil
}

func (g *Game) updateStatus() {
	winner, over := g.pos.Winner()
	if !over {
		g.status = InProgress
		return
	}
	if winner == board.White {
		g.status = WhiteWon
	} else {
		g.status = BlackWon
	}

	// Record which type went extinct on the losing side.
	loser := winner.Other()
	for pt := board.Pawn; pt <= board.King; pt++ {
		if g.pos.Count(loser, pt) == 0 {
			g.eliminated = pt
			break
		}
	}
}
