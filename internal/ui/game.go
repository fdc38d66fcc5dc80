package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/extinction/internal/board"
	"github.com/hailam/extinction/internal/export"
	"github.com/hailam/extinction/internal/game"
	"github.com/hailam/extinction/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640 // Match board height to eliminate unused space
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by widgets and modals.
var UIScale float64 = 1.0

// scaleF converts a logical coordinate to device pixels for vector drawing.
func scaleF(v int) float32 {
	return float32(float64(v) * UIScale)
}

// scaleD converts a logical coordinate to device pixels for text drawing.
func scaleD(v int) float64 {
	return float64(v) * UIScale
}

// Game implements ebiten.Game interface.
type Game struct {
	// Core game state
	match *game.Game

	// UI state
	selectedSquare board.Square
	targets        board.Bitboard
	dragging       bool
	dragPiece      board.Piece
	dragSquare     board.Square
	lastFrom       board.Square
	lastTo         board.Square

	// Player identity
	username string

	// Storage
	store *storage.Store
	prefs *storage.Preferences

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager

	// Modals
	welcomeScreen  *WelcomeScreen
	helpScreen     *HelpScreen
	gameOverScreen *GameOverScreen

	// Visual effects
	glass *GlassEffect

	// Game state
	gameOver   bool
	gameResult string

	// HiDPI scaling
	scale float64
}

// NewGame creates a new extinction chess game.
func NewGame() *Game {
	g := &Game{
		match:          game.New(),
		selectedSquare: board.NoSquare,
		dragSquare:     board.NoSquare,
		lastFrom:       board.NoSquare,
		lastTo:         board.NoSquare,
		username:       "Player",
		renderer:       NewRenderer(BoardSize, SquareSize),
		input:          NewInputHandler(),
	}

	g.feedback = NewFeedbackManager()
	g.glass = NewGlassEffect()

	// Initialize storage
	var err error
	g.store, err = storage.OpenDefault()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}

	// Load preferences
	g.loadPreferences()

	g.panel = NewPanel(g)

	// Initialize modals
	g.welcomeScreen = NewWelcomeScreen()
	g.helpScreen = NewHelpScreen()
	g.gameOverScreen = NewGameOverScreen()

	// Check for first launch
	g.checkFirstLaunch()

	return g
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.store == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.store.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}

	// Apply preferences
	g.username = g.prefs.Username
	g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.store == nil {
		return
	}

	g.prefs.Username = g.username
	g.prefs.SoundEnabled = g.feedback.Audio().IsEnabled()

	if err := g.store.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// checkFirstLaunch shows the welcome screen on first launch.
func (g *Game) checkFirstLaunch() {
	if g.store == nil {
		return
	}

	isFirst, err := g.store.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: Failed to check first launch: %v", err)
		return
	}

	if isFirst {
		g.welcomeScreen.Show(func(name string) {
			g.username = name
			g.prefs.Username = name

			if err := g.store.MarkFirstLaunchComplete(); err != nil {
				log.Printf("Warning: Failed to mark first launch complete: %v", err)
			}

			g.savePreferences()
		})
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	// Update input
	g.input.Update()

	// Update feedback animations
	g.feedback.Update()

	// Update glass effect animation
	g.glass.Update()

	// Handle welcome screen first (blocks other input)
	if g.welcomeScreen.IsVisible() {
		g.welcomeScreen.Update(g.input)
		g.updateCursor()
		return nil
	}

	// Handle help overlay (blocks other input)
	if g.helpScreen.IsVisible() {
		g.helpScreen.Update(g.input)
		g.updateCursor()
		return nil
	}

	// Handle game over overlay (blocks other input)
	if g.gameOverScreen.IsVisible() {
		g.gameOverScreen.Update(g.input)
		g.updateCursor()
		return nil
	}

	// Keyboard shortcuts
	g.handleShortcuts()

	// Handle panel interactions
	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil // Panel handled the input
	}

	// Handle board interactions
	g.handleBoardInput()

	// Update cursor based on hover state
	g.updateCursor()

	return nil
}

// handleShortcuts processes global keyboard shortcuts.
func (g *Game) handleShortcuts() {
	switch {
	case IsKeyJustPressed(ebiten.KeyN):
		g.NewGameAction()
	case IsKeyJustPressed(ebiten.KeyE):
		g.ExportAction()
	case IsKeyJustPressed(ebiten.KeyF):
		g.renderer.SetFlipped(!g.renderer.Flipped())
	case IsKeyJustPressed(ebiten.KeyM):
		g.SetSoundEnabled(!g.SoundEnabled())
	case IsKeyJustPressed(ebiten.KeyT):
		g.SetShowTargets(!g.ShowTargets())
	case IsKeyJustPressed(ebiten.KeyH):
		g.helpScreen.Show()
	}
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	anyHovered := false

	// Check all interactive elements
	if g.welcomeScreen.IsVisible() {
		anyHovered = g.welcomeScreen.AnyButtonHovered()
	} else if g.helpScreen.IsVisible() {
		anyHovered = g.helpScreen.AnyButtonHovered()
	} else if g.gameOverScreen.IsVisible() {
		anyHovered = g.gameOverScreen.AnyButtonHovered()
	} else {
		anyHovered = g.panel.AnyButtonHovered()
	}

	if anyHovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	// Set HiDPI scale factor for all rendering components
	g.renderer.SetScale(g.scale)

	// Clear background
	screen.Fill(g.renderer.Theme().Background)

	// Draw board
	g.renderer.DrawBoard(screen)

	// Draw highlights (last move, selection, capture targets)
	targets := g.targets
	if !g.ShowTargets() {
		targets = board.Empty
	}
	enemy := g.match.Position().Occupied[g.match.Turn().Other()]
	g.renderer.DrawHighlights(screen, g.selectedSquare, targets, enemy, g.lastFrom, g.lastTo)

	// Draw pieces with shake animations and endangered tinting
	g.renderer.DrawPieces(screen, g.match.Position(), g.dragging, g.dragSquare, g.dangerSquares(), g.feedback.Animations())

	// Draw dragged piece
	if g.dragging {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, g.dragPiece, mx, my)
	}

	// Draw feedback overlays (animations, toasts)
	g.feedback.Draw(screen, g.renderer)

	// Draw panel
	g.panel.Draw(screen)

	// Draw modals on top (with glass effect)
	g.gameOverScreen.Draw(screen, g.glass)
	g.helpScreen.Draw(screen, g.glass)
	g.welcomeScreen.Draw(screen, g.glass)
}

// Layout returns the game's screen dimensions.
// Width is dynamic based on panel collapsed state.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Get and store device scale factor (2.0 on Retina, 1.0 on standard displays)
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0 // Ensure minimum scale of 1.0
	}

	// Update global scale for widgets and modals
	UIScale = g.scale

	if g.panel != nil && g.panel.Collapsed() {
		return int(float64(BoardSize+CollapsedWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
	}
	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// handleBoardInput processes mouse interactions with the board.
func (g *Game) handleBoardInput() {
	if g.gameOver {
		return
	}

	mx, my := g.input.MousePosition()

	// Handle drag release first so drops outside the board cancel cleanly
	if g.dragging && g.input.IsLeftJustReleased() {
		g.handleDragRelease(mx, my)
		return
	}

	// Check if mouse is on the board
	if mx >= BoardSize || my >= BoardSize {
		return
	}

	// Handle mouse press
	if g.input.IsLeftJustPressed() {
		sq := g.renderer.ScreenToSquare(mx, my)
		if sq == board.NoSquare {
			return
		}

		piece := g.match.Position().PieceAt(sq)

		// If clicking on our own piece, select it
		if piece != board.NoPiece && piece.Color() == g.match.Turn() {
			g.selectSquare(sq)
			g.startDrag(sq)
			return
		}

		// If we have a selection and clicking on a legal target, make the move
		if g.selectedSquare != board.NoSquare && g.targets.IsSet(sq) {
			g.makeMove(g.selectedSquare, sq)
			return
		}

		// Clear selection
		g.clearSelection()
	}
}

// selectSquare selects a square and computes the legal targets from it.
func (g *Game) selectSquare(sq board.Square) {
	g.selectedSquare = sq
	g.targets = g.match.LegalMoves(sq)
}

// clearSelection clears the current selection.
func (g *Game) clearSelection() {
	g.selectedSquare = board.NoSquare
	g.targets = board.Empty
	g.dragging = false
	g.dragPiece = board.NoPiece
	g.dragSquare = board.NoSquare
}

// startDrag begins dragging a piece.
func (g *Game) startDrag(sq board.Square) {
	g.dragging = true
	g.dragPiece = g.match.Position().PieceAt(sq)
	g.dragSquare = sq
}

// handleDragRelease handles releasing a dragged piece.
func (g *Game) handleDragRelease(mx, my int) {
	targetSq := g.renderer.ScreenToSquare(mx, my)

	if targetSq != board.NoSquare {
		if g.targets.IsSet(targetSq) {
			g.makeMove(g.dragSquare, targetSq)
			return
		}

		// Move was attempted but not valid - determine why and show feedback
		if g.dragSquare != targetSq {
			reason := g.determineInvalidMoveReason(g.dragSquare, targetSq)
			g.feedback.OnInvalidMove(g.dragSquare, targetSq, reason)
		}
	}

	// Invalid drop - clear selection
	g.clearSelection()
}

// determineInvalidMoveReason analyzes why a move from src to dst was rejected.
func (g *Game) determineInvalidMoveReason(src, dst board.Square) string {
	pos := g.match.Position()

	piece := pos.PieceAt(src)
	if piece == board.NoPiece {
		return "No piece on that square"
	}
	if piece.Color() != g.match.Turn() {
		return "Not your piece"
	}

	// Check if destination has own piece
	dest := pos.PieceAt(dst)
	if dest != board.NoPiece && dest.Color() == piece.Color() {
		return "Blocked by your own piece"
	}

	// On an empty board the piece could reach dst, so something is in the way
	c := piece.Color()
	switch piece.Type() {
	case board.Rook:
		if board.RookLines(src).IsSet(dst) {
			return "Another piece is in the way"
		}
	case board.Bishop:
		if board.BishopLines(src).IsSet(dst) {
			return "Another piece is in the way"
		}
	case board.Queen:
		if board.QueenLines(src).IsSet(dst) {
			return "Another piece is in the way"
		}
	case board.Pawn:
		if board.PawnAttacks(src, c).IsSet(dst) {
			return "Nothing there to capture"
		}
		reach := board.PawnPushes(src, c)
		if c == board.White && src.Rank() == 1 {
			reach |= reach.North()
		} else if c == board.Black && src.Rank() == 6 {
			reach |= reach.South()
		}
		if reach.IsSet(dst) {
			return "Another piece is in the way"
		}
	}

	return fmt.Sprintf("Illegal move for a %s", piece.Type())
}

// makeMove applies a move to the game.
func (g *Game) makeMove(from, to board.Square) {
	mover := g.match.Turn()

	outcome, err := g.match.Move(from, to)
	if err != nil {
		g.clearSelection()
		return
	}

	g.lastFrom = outcome.From
	g.lastTo = outcome.To
	g.clearSelection()

	capture := outcome.Captured != board.NoPieceType

	// Play move sound (before game end, which may play its own sound)
	g.feedback.OnMoveMade(capture)

	if !capture {
		return
	}

	// Check for extinction
	g.checkGameEnd()

	// Warn when the defender is down to the last piece of the captured type
	if !g.gameOver {
		victim := mover.Other()
		if g.match.Position().Count(victim, outcome.Captured) == 1 {
			g.feedback.OnEndangered(victim, outcome.Captured)
		}
	}
}

// checkGameEnd checks whether a piece type has gone extinct.
func (g *Game) checkGameEnd() {
	winner, ok := g.match.Winner()
	if !ok {
		return
	}

	g.gameOver = true

	loser := winner.Other()
	extinct, _ := g.match.Eliminated()
	g.gameResult = fmt.Sprintf("%s wins! %ss extinct.", winner, extinct)
	g.feedback.OnExtinction(winner, extinct)

	moves := len(g.match.History())
	duration := g.match.Duration()

	if g.store != nil {
		res := storage.GameResult{
			Winner:     winner,
			Eliminated: extinct,
			Moves:      moves,
			Duration:   duration,
			Captures:   g.match.Captures(),
		}
		if _, err := g.store.RecordResult(res); err != nil {
			log.Printf("Warning: Failed to record result: %v", err)
		}
	}

	g.gameOverScreen.Show(
		fmt.Sprintf("%s wins!", winner),
		fmt.Sprintf("%s's %ss are extinct.", loser, extinct),
		fmt.Sprintf("%d moves in %s", moves, duration.Round(time.Second)),
		g.NewGameAction,
	)
}

// dangerSquares returns every square holding a piece whose type is down to
// its last survivor.
func (g *Game) dangerSquares() board.Bitboard {
	pos := g.match.Position()

	danger := board.Empty
	for _, c := range []board.Color{board.White, board.Black} {
		for _, pt := range pos.Endangered(c) {
			danger |= pos.Pieces[c][pt]
		}
	}
	return danger
}

// NewGameAction resets the game to the starting position.
func (g *Game) NewGameAction() {
	g.match = game.New()
	g.clearSelection()
	g.lastFrom = board.NoSquare
	g.lastTo = board.NoSquare
	g.gameOver = false
	g.gameResult = ""
	g.gameOverScreen.Hide()
}

// ExportAction writes the current board to a timestamped SVG file in the
// data directory.
func (g *Game) ExportAction() {
	dir, err := storage.GetDataDir()
	if err != nil {
		log.Printf("Warning: Failed to resolve data directory: %v", err)
		g.feedback.NotifyError("Export failed")
		return
	}
	path := filepath.Join(dir, export.DefaultFilename())

	opts := export.DefaultOptions()
	if g.lastFrom != board.NoSquare {
		opts.LastFrom, opts.LastTo = g.lastFrom, g.lastTo
	}

	if err := export.SaveSVG(path, g.match.Position(), opts); err != nil {
		log.Printf("Warning: Failed to export board: %v", err)
		g.feedback.NotifyError("Export failed")
		return
	}
	g.feedback.Notify("Board written to " + filepath.Base(path))
}

// ShowHelp opens the help overlay.
func (g *Game) ShowHelp() {
	g.helpScreen.Show()
}

// SetSoundEnabled toggles sound effects and persists the choice.
func (g *Game) SetSoundEnabled(enabled bool) {
	g.feedback.Audio().SetEnabled(enabled)
	if g.panel != nil && g.panel.soundCheck != nil {
		g.panel.soundCheck.Checked = enabled
	}
	g.savePreferences()
}

// SoundEnabled reports whether sound effects are on.
func (g *Game) SoundEnabled() bool {
	return g.feedback.Audio().IsEnabled()
}

// SetShowTargets toggles the legal-target markers and persists the choice.
func (g *Game) SetShowTargets(show bool) {
	g.prefs.ShowTargets = show
	if g.panel != nil && g.panel.targetsCheck != nil {
		g.panel.targetsCheck.Checked = show
	}
	g.savePreferences()
}

// ShowTargets reports whether legal-target markers are drawn.
func (g *Game) ShowTargets() bool {
	return g.prefs.ShowTargets
}

// Position returns the current position.
func (g *Game) Position() *board.Position {
	return g.match.Position()
}

// Turn returns the side to move.
func (g *Game) Turn() board.Color {
	return g.match.Turn()
}

// MoveHistory returns the move history in coordinate form, with captures
// marked by a trailing x.
func (g *Game) MoveHistory() []string {
	recs := g.match.History()
	moves := make([]string, 0, len(recs))
	for _, rec := range recs {
		s := rec.Outcome.From.String() + rec.Outcome.To.String()
		if rec.Outcome.Captured != board.NoPieceType {
			s += "x"
		}
		moves = append(moves, s)
	}
	return moves
}

// GameOver returns true if the game is over.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// GameResult returns the game result string.
func (g *Game) GameResult() string {
	return g.gameResult
}

// Username returns the current username.
func (g *Game) Username() string {
	return g.username
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.savePreferences()
	if g.store != nil {
		if err := g.store.Close(); err != nil {
			log.Printf("Warning: Failed to close storage: %v", err)
		}
	}
}
