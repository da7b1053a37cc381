package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joshuapare/bitskit/internal/config"
	"github.com/joshuapare/bitskit/internal/logger"
	"github.com/joshuapare/bitskit/internal/transmission"
	"github.com/joshuapare/bitskit/pkg/packet"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	strict     bool
	configPath string
	logLevel   string

	// cfg is replaced by the loaded config before any command runs.
	cfg = config.Default()

	// stdin backs the "-" input argument.
	stdin io.Reader = os.Stdin
)

var rootCmd = &cobra.Command{
	Use:   "bitsctl",
	Short: "Decode and evaluate BITS transmissions",
	Long: `bitsctl decodes hexadecimal BITS transmissions into their packet tree,
evaluates the expression they encode and reports version checksums.

Inputs may be given inline as hex, as a path to a file holding hex text
(optionally gzip, zstd or lz4 compressed) or as "-" for standard input.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		BoolVar(&strict, "strict", false, "Apply conservative decoder limits for untrusted input")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/bitsctl/config.toml)")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log level on stderr: debug, info, warn, error, off")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// setup loads the config file, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	return applyFlags(cmd)
}

// setupDefaults is setup without reading the config file. Commands that
// create or replace the file use it so a missing or broken file cannot
// block them.
func setupDefaults(cmd *cobra.Command, _ []string) error {
	cfg = config.Default()
	return applyFlags(cmd)
}

// applyFlags layers the global flags over cfg and starts logging.
func applyFlags(cmd *cobra.Command) error {
	if strict {
		cfg.Strict = true
		cfg.Limits = packet.StrictLimits()
	}
	if noColor {
		cfg.Color = config.ColorNever
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	if verbose {
		level = "debug"
	}
	slogLevel, enabled, err := logger.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.Init(logger.Options{Enabled: enabled, Level: slogLevel, JSON: jsonOut})
	logger.Debug("config loaded", "path", cfg.Path, "strict", cfg.Strict, "format", cfg.Format)
	return nil
}

// loadTransmission resolves an input argument using the configured size cap.
func loadTransmission(arg string) (*transmission.Transmission, error) {
	tr, err := transmission.Load(arg, transmission.Options{
		MaxBytes: cfg.MaxInputBytes,
		Stdin:    stdin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transmission: %w", err)
	}
	logger.Debug("transmission loaded",
		"source", tr.Source, "name", tr.Name, "bytes", len(tr.Bytes), "compression", tr.Compression)
	printVerbose("Loaded %d byte(s) from %s\n", len(tr.Bytes), tr.Name)
	return tr, nil
}

// decodeInput loads and decodes arg with the configured limits.
func decodeInput(arg string) (*transmission.Transmission, *packet.Packet, error) {
	tr, err := loadTransmission(arg)
	if err != nil {
		return nil, nil, err
	}
	pk, err := tr.Decode(cfg.Limits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode transmission: %w", err)
	}
	logger.Debug("transmission decoded",
		"packets", pk.Count(), "depth", pk.Depth(), "padding_bits", tr.Bits()-pk.Bits)
	return tr, pk, nil
}

// useColor reports whether text output on stdout should be styled.
func useColor() bool {
	switch cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
