// Package cli implements the interactive terminal front end: board rendering,
// coordinate move input and a small set of commands around the game.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/hailam/extinction/internal/board"
	"github.com/hailam/extinction/internal/export"
	"github.com/hailam/extinction/internal/game"
	"github.com/hailam/extinction/internal/storage"
)

// CLI owns the interactive loop and the streams it talks through.
type CLI struct {
	game  *game.Game
	store *storage.Store // optional; nil disables stats and result recording
	au    aurora.Aurora

	in  io.Reader
	out io.Writer
}

// New creates a CLI bound to the given streams. Colors are dropped when
// colorize is false so output stays clean in pipes and transcripts.
func New(in io.Reader, out io.Writer, colorize bool) *CLI {
	return &CLI{
		game: game.New(),
		au:   aurora.NewAurora(colorize),
		in:   in,
		out:  out,
	}
}

// SetStore attaches a results store for the stats command and win recording.
func (c *CLI) SetStore(store *storage.Store) {
	c.store = store
}

// Run reads commands until quit or EOF. Anything that is not a known command
// is treated as a move in coordinate notation, either "e2e4" or "e2 e4".
func (c *CLI) Run() error {
	c.printWelcome()
	c.printBoard()
	fmt.Fprintln(c.out, "   New game. GOOD luck.")
	fmt.Fprintln(c.out)

	scanner := bufio.NewScanner(c.in)
	for {
		c.prompt()
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "quit", "exit":
			return scanner.Err()
		case "help":
			c.printHelp()
		case "board":
			c.printBoard()
		case "new":
			c.handleNew()
		case "setup":
			c.handleSetup(args)
		case "moves":
			c.handleMoves(args)
		case "export":
			c.handleExport(args)
		case "stats":
			c.handleStats()
		case "color":
			c.handleColor(args)
		default:
			// Accept the two-token form by joining "e2 e4" into "e2e4".
			if len(parts) == 2 {
				c.handleMove(parts[0] + parts[1])
			} else {
				c.handleMove(line)
			}
		}
	}
	return scanner.Err()
}

func (c *CLI) prompt() {
	if c.game.Over() {
		fmt.Fprintf(c.out, "%s ", c.au.Faint("game over>"))
		return
	}
	fmt.Fprintf(c.out, "%s's move (e.g., e2e4): ", c.colorName(c.game.Turn()))
}

// handleMove validates the input shape first, then hands the move to the
// game. The original rejection wording is kept; the engine's reason is shown
// dimmed underneath.
func (c *CLI) handleMove(input string) {
	from, to, err := board.ParseMove(input)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid input format. Please use the format 'e2e4' or 'E2E4'.")
		return
	}

	_, err = c.game.Move(from, to)
	switch {
	case errors.Is(err, game.ErrGameOver):
		fmt.Fprintln(c.out, "Game over. No moves allowed.")
		return
	case err != nil:
		fmt.Fprintln(c.out, "Invalid move. Try again.")
		fmt.Fprintf(c.out, "%s\n", c.au.Faint(err.Error()))
		return
	}

	c.printBoard()
	c.printLastMove()

	if winner, over := c.game.Winner(); over {
		c.printResult(winner)
		c.recordResult(winner)
	}
}

func (c *CLI) handleNew() {
	c.game = game.New()
	c.printBoard()
	fmt.Fprintln(c.out, "   New game. GOOD luck.")
	fmt.Fprintln(c.out)
}

func (c *CLI) handleSetup(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Usage: setup <placement> [w|b]")
		return
	}

	turn := board.White
	if len(args) > 1 {
		switch strings.ToLower(args[1]) {
		case "w":
		case "b":
			turn = board.Black
		default:
			fmt.Fprintf(c.out, "Bad color %q, use w or b.\n", args[1])
			return
		}
	}

	g, err := game.NewFromPlacement(args[0], turn)
	if err != nil {
		fmt.Fprintf(c.out, "Bad placement: %v\n", err)
		return
	}
	c.game = g
	c.printBoard()
	if winner, over := c.game.Winner(); over {
		c.printResult(winner)
	}
}

func (c *CLI) handleMoves(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: moves <square>")
		return
	}

	sq, err := board.ParseSquare(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Bad square %q.\n", args[0])
		return
	}

	targets := c.game.LegalMoves(sq)
	if targets.Empty() {
		fmt.Fprintf(c.out, "No moves for %s from %s.\n", c.game.Turn(), sq)
		return
	}

	names := make([]string, 0, targets.PopCount())
	for _, t := range targets.Squares() {
		names = append(names, t.String())
	}
	fmt.Fprintf(c.out, "%s: %s\n", sq, strings.Join(names, " "))
}

// handleExport writes the position as SVG, to the given path or to a
// timestamped file in the data directory.
func (c *CLI) handleExport(args []string) {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		dir, err := storage.GetDataDir()
		if err != nil {
			fmt.Fprintf(c.out, "Export failed: %v\n", err)
			return
		}
		path = filepath.Join(dir, export.DefaultFilename())
	}

	opts := export.DefaultOptions()
	if history := c.game.History(); len(history) > 0 {
		last := history[len(history)-1].Outcome
		opts.LastFrom, opts.LastTo = last.From, last.To
	}

	if err := export.SaveSVG(path, c.game.Position(), opts); err != nil {
		fmt.Fprintf(c.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Board written to %s.\n", path)
}

func (c *CLI) handleStats() {
	if c.store == nil {
		fmt.Fprintln(c.out, "No stats store open.")
		return
	}

	stats, err := c.store.LoadStats()
	if err != nil {
		fmt.Fprintf(c.out, "Stats unavailable: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Games: %d  White wins: %d  Black wins: %d\n",
		stats.GamesPlayed, stats.WhiteWins, stats.BlackWins)
	if stats.GamesPlayed == 0 {
		return
	}

	fmt.Fprintf(c.out, "Moves: %d  Play time: %s\n",
		stats.TotalMoves, stats.TotalPlayTime.Round(time.Second))
	if stats.ShortestWin > 0 {
		fmt.Fprintf(c.out, "Fastest win: %d moves  Longest win: %d moves\n",
			stats.ShortestWin, stats.LongestWin)
	}
	for pt := board.Pawn; pt <= board.King; pt++ {
		if n := stats.WinsByType[pt.String()]; n > 0 {
			fmt.Fprintf(c.out, "Wins by eliminating %ss: %d\n", pt, n)
		}
	}

	results, err := c.store.Results()
	if err != nil || len(results) == 0 {
		return
	}
	if len(results) > 5 {
		results = results[len(results)-5:]
	}
	fmt.Fprintln(c.out, "Recent games:")
	for _, r := range results {
		fmt.Fprintf(c.out, "  %s  %s won by eliminating %ss in %d moves\n",
			r.Finished.Format("2006-01-02 15:04"), r.Winner, r.Eliminated, r.Moves)
	}
}

// handleColor flips the stored color preference. The choice also applies to
// the rest of this session.
func (c *CLI) handleColor(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: color on|off")
		return
	}

	var enabled bool
	switch strings.ToLower(args[0]) {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		fmt.Fprintln(c.out, "Usage: color on|off")
		return
	}

	c.au = aurora.NewAurora(enabled)
	if c.store == nil {
		return
	}

	prefs, err := c.store.LoadPreferences()
	if err != nil {
		fmt.Fprintf(c.out, "Preferences unavailable: %v\n", err)
		return
	}
	prefs.ColoredOutput = enabled
	if err := c.store.SavePreferences(prefs); err != nil {
		fmt.Fprintf(c.out, "Could not save preferences: %v\n", err)
	}
}

func (c *CLI) recordResult(winner board.Color) {
	if c.store == nil {
		return
	}

	eliminated, _ := c.game.Eliminated()
	res := storage.GameResult{
		Winner:     winner,
		Eliminated: eliminated,
		Moves:      len(c.game.History()),
		Duration:   c.game.Duration(),
		Captures:   c.game.Captures(),
	}
	if _, err := c.store.RecordResult(res); err != nil {
		log.Printf("Warning: could not record result: %v", err)
	}
}

// printBoard draws the bordered grid with file letters across the top and
// rank numbers down the left. White pieces render yellow and black pieces
// cyan so the sides stay apart on any terminal theme; the squares of the
// previous move are marked (bold piece, green dot on the vacated square).
func (c *CLI) printBoard() {
	pos := c.game.Position()

	last := board.Empty
	if history := c.game.History(); len(history) > 0 {
		o := history[len(history)-1].Outcome
		last = board.SquareBB(o.From) | board.SquareBB(o.To)
	}

	fmt.Fprintf(c.out, "\n     %s\n", c.au.Faint("A  B  C  D  E  F  G  H"))
	fmt.Fprintf(c.out, "  %s\n", c.au.Faint("."+strings.Repeat("`", 26)+"."))
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(c.out, "%s %s ",
			c.au.Faint(fmt.Sprintf("%d", rank+1)), c.au.Faint("|"))
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			piece := pos.PieceAt(sq)
			marked := last.IsSet(sq)

			var cell aurora.Value
			switch {
			case piece == board.NoPiece && marked:
				cell = c.au.Green(".")
			case piece == board.NoPiece:
				cell = c.au.Faint(".")
			case piece.Color() == board.White:
				cell = c.au.Yellow(piece.String())
			default:
				cell = c.au.Cyan(piece.String())
			}
			if marked && piece != board.NoPiece {
				cell = cell.Bold()
			}
			fmt.Fprintf(c.out, " %s ", cell)
		}
		fmt.Fprintf(c.out, " %s\n", c.au.Faint("|"))
	}
	fmt.Fprintf(c.out, "  %s\n", c.au.Faint("`"+strings.Repeat(".", 26)+"`"))
}

func (c *CLI) printLastMove() {
	history := c.game.History()
	if len(history) == 0 {
		return
	}

	rec := history[len(history)-1]
	o := rec.Outcome
	fmt.Fprintf(c.out, "   %s %s from %s to %s\n",
		c.colorName(rec.Color), o.Piece,
		strings.ToUpper(o.From.String()), strings.ToUpper(o.To.String()))

	if o.Kind == board.AppliedCapture {
		kaomoji := "   (╯°□°)╯︵ ┻━┻"
		if rec.Color == board.White {
			kaomoji = "         ┻━┻ ︵ ╯(°□° ╯)"
		}
		fmt.Fprintf(c.out, "   %s %s captured!\n%s\n",
			c.colorName(rec.Color.Other()), o.Captured, kaomoji)
	}
	fmt.Fprintln(c.out)
}

func (c *CLI) printResult(winner board.Color) {
	if eliminated, ok := c.game.Eliminated(); ok {
		fmt.Fprintf(c.out, "   %s's %ss are extinct.\n",
			c.colorName(winner.Other()), eliminated)
	}
	if winner == board.Black {
		fmt.Fprintf(c.out, "%s\n", c.au.Cyan("\n    (╯°□°)╯︵ ┻━┻    \\(°Ω°)/\n     '.`-* BLACK WINS *`.`'"))
	} else {
		fmt.Fprintf(c.out, "%s\n", c.au.Yellow("\n    (ﾉ◕ヮ◕)ﾉ  ┻━┻ ︵ \\(°□° \\)\n     '.`-* WHITE WINS *`.`'"))
	}
}

func (c *CLI) printWelcome() {
	fmt.Fprintf(c.out, "%s\n", c.au.Bold("Extinction Chess"))
	fmt.Fprintln(c.out, "Wipe out every enemy piece of one type to win. Type 'help' for commands.")
}

func (c *CLI) printHelp() {
	fmt.Fprintln(c.out, "Commands:")
	fmt.Fprintln(c.out, "  e2e4                     move (origin square, then destination; 'e2 e4' works too)")
	fmt.Fprintln(c.out, "  moves <square>           list legal destinations for a piece")
	fmt.Fprintln(c.out, "  board                    redraw the board")
	fmt.Fprintln(c.out, "  new                      start a fresh game")
	fmt.Fprintln(c.out, "  setup <placement> [w|b]  start from a placement string")
	fmt.Fprintln(c.out, "  export [file]            write the board as an SVG image")
	fmt.Fprintln(c.out, "  stats                    show stored results")
	fmt.Fprintln(c.out, "  color on|off             turn colored output on or off")
	fmt.Fprintln(c.out, "  quit                     leave")
}

func (c *CLI) colorName(col board.Color) aurora.Value {
	if col == board.White {
		return c.au.Yellow("White")
	}
	return c.au.Cyan("Black")
}
