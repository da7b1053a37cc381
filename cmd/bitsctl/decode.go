package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/joshuapare/bitskit/pkg/packet/printer"
)

// formatFlag is a pflag.Value that only accepts known printer formats.
type formatFlag printer.Format

func (f *formatFlag) String() string { return string(*f) }

func (f *formatFlag) Set(s string) error {
	parsed, err := printer.ParseFormat(s)
	if err != nil {
		return err
	}
	*f = formatFlag(parsed)
	return nil
}

func (f *formatFlag) Type() string { return "format" }

var _ pflag.Value = (*formatFlag)(nil)

var (
	decodeFormat    formatFlag
	decodeDepth     int
	decodePositions bool
	decodeResults   bool
)

func init() {
	cmd := newDecodeCmd()
	names := make([]string, 0, len(printer.Formats))
	for _, f := range printer.Formats {
		names = append(names, string(f))
	}
	cmd.Flags().Var(&decodeFormat, "format", "Output format: "+strings.Join(names, ", ")+" (default from config)")
	cmd.Flags().IntVar(&decodeDepth, "depth", 0, "Maximum depth for text output (0 = unlimited)")
	cmd.Flags().BoolVar(&decodePositions, "positions", false, "Show bit offset and width of each packet")
	cmd.Flags().BoolVar(&decodeResults, "results", false, "Annotate operators with their values")
	rootCmd.AddCommand(cmd)
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <input>",
		Short: "Print the packet tree of a transmission",
		Long: `The decode command parses a transmission and prints its packet tree.

Example:
  bitsctl decode D2FE28
  bitsctl decode input.txt --format json --positions
  bitsctl decode input.txt --format dot | dot -Tsvg > tree.svg
  cat input.txt | bitsctl decode - --depth 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args)
		},
	}
	return cmd
}

func runDecode(args []string) error {
	_, pk, err := decodeInput(args[0])
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.Format = cfg.Format
	if decodeFormat != "" {
		opts.Format = printer.Format(decodeFormat)
	}
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	opts.MaxDepth = decodeDepth
	opts.ShowPositions = decodePositions
	opts.ShowResults = decodeResults
	opts.Color = opts.Format == printer.FormatText && useColor()

	if quiet {
		return nil
	}
	return printer.New(os.Stdout, opts).Print(pk)
}
