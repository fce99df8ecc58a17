package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termdonut/internal/render"
)

var (
	flagFrameWidth  int
	flagFrameHeight int
	flagFrameA      float64
	flagFrameB      float64
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Print a single frame",
	Long: `Render one frame of the torus at the given rotation angles and print it
to stdout with plain line breaks. Useful for snapshots and golden files.

Examples:
  donut frame
  donut frame --a 1.2 --b 0.6
  donut frame --width 120 --height 40 > donut.txt`,
	Args: cobra.NoArgs,
	Run:  runFrame,
}

func init() {
	frameCmd.Flags().IntVar(&flagFrameWidth, "width", 80, "Frame width in cells")
	frameCmd.Flags().IntVar(&flagFrameHeight, "height", 24, "Frame height in cells")
	frameCmd.Flags().Float64Var(&flagFrameA, "a", 0, "Tilt angle in radians")
	frameCmd.Flags().Float64Var(&flagFrameB, "b", 0, "Spin angle in radians")
}

func runFrame(_ *cobra.Command, _ []string) {
	if flagFrameWidth <= 0 || flagFrameHeight <= 0 {
		fmt.Fprintf(os.Stderr, "Error: frame size must be positive, got %dx%d\n", flagFrameWidth, flagFrameHeight)
		os.Exit(1)
	}

	r := render.NewRenderer(flagFrameWidth, flagFrameHeight, io.Discard)
	r.Rasterize(flagFrameA, flagFrameB)
	if err := r.Buffer().WriteRows(os.Stdout, "\n"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
