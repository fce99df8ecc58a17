// donut renders a rotating ASCII torus in the terminal.
//
// Usage:
//
//	donut                    - Run the animation (same as "donut run")
//	donut run                - Run the animation on the raw terminal
//	donut tui                - Run the animation inside a Bubble Tea program
//	donut frame              - Print a single frame to stdout
//	donut config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.donut/config.yaml, ./configs/donut.yaml)
//	--fps <rate>        - Override the frame rate (default: 20, from frame_interval)
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "donut",
	Short: "Spinning ASCII donut for your terminal",
	Long: `donut draws a shaded, rotating torus with ASCII characters.

Controls:
  Up/Down     - Tilt faster/slower
  Left/Right  - Spin slower/faster
  R/S         - Reset speeds
  P           - Pause
  Esc         - Quit

Examples:
  donut
  donut --fps 30
  donut tui
  donut frame --width 80 --height 24
  donut config --default > ~/.donut/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runAnimation,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use frame_interval from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (interactive modes log nowhere otherwise)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(configCmd)
}
