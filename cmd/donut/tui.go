package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termdonut/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the animation inside Bubble Tea",
	Long: `Run the same animation as "donut run" hosted by a Bubble Tea program,
with a status line showing angles and speeds and a key help line.
The frame follows window resizes.`,
	Args: cobra.NoArgs,
	Run:  runTUI,
}

func runTUI(_ *cobra.Command, _ []string) {
	logger, closeLog, err := openSessionLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early; Bubble Tea reports resizes afterwards
	width, height := cfg.Display.FallbackWidth, cfg.Display.FallbackHeight
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	err = tui.Run(cfg.Runtime(width, height), logger)
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
