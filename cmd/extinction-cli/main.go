// Command extinction-cli plays extinction chess in the terminal.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hailam/extinction/internal/cli"
	"github.com/hailam/extinction/internal/storage"
)

var plain = flag.Bool("plain", false, "disable colored output")

func main() {
	flag.Parse()

	// Stats and results persist across sessions when storage is available.
	// The color preference lives there too; -plain always wins.
	colorize := !*plain
	store, err := storage.OpenDefault()
	if err != nil {
		log.Printf("Warning: Failed to open storage: %v (stats disabled)", err)
	} else {
		defer store.Close()
		if prefs, err := store.LoadPreferences(); err == nil {
			colorize = colorize && prefs.ColoredOutput
		}
	}

	c := cli.New(os.Stdin, os.Stdout, colorize)
	if store != nil {
		c.SetStore(store)
	}

	if err := c.Run(); err != nil {
		log.Fatal(err)
	}
}
