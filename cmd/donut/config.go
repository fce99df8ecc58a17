package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termdonut/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration donut would run with, as YAML.

The file is looked up in this order:
  1. --config <path>
  2. ~/.donut/config.yaml
  3. ./configs/donut.yaml
  4. built-in defaults

Examples:
  donut config
  donut config --fps 30
  donut config --default > ~/.donut/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaultConfig {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

// loadConfig loads the configuration and applies the --fps override.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	cfg.SetFPS(flagFPS)
	logger.Debug("config loaded", "source", source, "interval", cfg.Animation.FrameInterval)
	return cfg, nil
}
