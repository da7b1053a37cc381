package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/bitskit/internal/transmission"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <input>",
		Short: "Report statistics about a transmission",
		Long: `The info command decodes a transmission and reports its size, the bits
used by the outermost packet, trailing padding, packet count, nesting depth,
version sum, value and a BLAKE3 digest of the decoded bytes.

Example:
  bitsctl info input.txt
  bitsctl info input.txt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type infoReport struct {
	Source       string  `json:"source"`
	Compression  string  `json:"compression"`
	Bytes        int     `json:"bytes"`
	Bits         int     `json:"bits"`
	BitsConsumed int     `json:"bits_consumed"`
	PaddingBits  int     `json:"padding_bits"`
	Packets      int     `json:"packets"`
	Depth        int     `json:"depth"`
	VersionSum   uint64  `json:"version_sum"`
	Value        *uint64 `json:"value,omitempty"`
	EvalError    string  `json:"eval_error,omitempty"`
	Digest       string  `json:"blake3"`
}

func runInfo(args []string) error {
	tr, pk, err := decodeInput(args[0])
	if err != nil {
		return err
	}

	report := infoReport{
		Source:       tr.Name,
		Compression:  tr.Compression.String(),
		Bytes:        len(tr.Bytes),
		Bits:         tr.Bits(),
		BitsConsumed: pk.Bits,
		PaddingBits:  tr.Bits() - pk.Bits,
		Packets:      pk.Count(),
		Depth:        pk.Depth(),
		VersionSum:   pk.VersionSum(),
		Digest:       tr.Digest(),
	}
	if v, err := pk.Eval(); err != nil {
		report.EvalError = err.Error()
	} else {
		report.Value = &v
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("\nTransmission Information:\n")
	printInfo("  Source: %s\n", report.Source)
	if tr.Compression != transmission.CompressionNone {
		printInfo("  Compression: %s\n", report.Compression)
	}
	printInfo("  Size: %d bytes (%d bits)\n", report.Bytes, report.Bits)
	printInfo("  Bits consumed: %d\n", report.BitsConsumed)
	printInfo("  Padding bits: %d\n", report.PaddingBits)
	printInfo("  Packets: %d\n", report.Packets)
	printInfo("  Depth: %d\n", report.Depth)
	printInfo("  Version sum: %d\n", report.VersionSum)
	if report.Value != nil {
		printInfo("  Value: %d\n", *report.Value)
	} else {
		printInfo("  Value: error: %s\n", report.EvalError)
	}
	printInfo("  BLAKE3: %s\n", report.Digest)
	return nil
}
