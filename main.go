// Extinction - an extinction chess game built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/extinction/internal/ui"
)

func main() {
	game := ui.NewGame()
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Extinction")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
