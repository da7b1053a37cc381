package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitskit/internal/logger"
	"github.com/joshuapare/bitskit/pkg/packet"
	"github.com/joshuapare/bitskit/pkg/packet/printer"
)

var (
	encodeTotalBits bool
	encodeCount     bool
)

func init() {
	cmd := newEncodeCmd()
	cmd.Flags().BoolVar(&encodeTotalBits, "total-bits", false, "Write every operator with a total-bits length")
	cmd.Flags().BoolVar(&encodeCount, "count", false, "Write every operator with a sub-packet count")
	cmd.MarkFlagsMutuallyExclusive("total-bits", "count")
	rootCmd.AddCommand(cmd)
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <tree-file>",
		Short: "Encode a JSON, YAML or CBOR packet tree as hex",
		Long: `The encode command reads a packet tree in the shape printed by
"bitsctl decode --format json|yaml|cbor" and prints the transmission as hex.
Operators keep their own length_type unless --total-bits or --count is given.

Example:
  bitsctl decode D2FE28 --format yaml > tree.yaml
  bitsctl encode tree.yaml
  bitsctl encode - --count < tree.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args)
		},
	}
	return cmd
}

func runEncode(args []string) error {
	data, err := readTreeFile(args[0])
	if err != nil {
		return err
	}

	format := printer.DetectFormat(data)
	pk, err := printer.ParseTree(data, format)
	if err != nil {
		return fmt.Errorf("failed to parse tree: %w", err)
	}
	logger.Debug("tree parsed", "format", format, "packets", pk.Count())

	opts := packet.EncodeOptions{}
	switch {
	case encodeTotalBits:
		opts.LengthMode = packet.LengthAllBits
	case encodeCount:
		opts.LengthMode = packet.LengthAllCount
	}
	out, err := packet.EncodeWithOptions(pk, opts)
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	encoded := strings.ToUpper(hex.EncodeToString(out))

	if jsonOut {
		return printJSON(map[string]any{"hex": encoded, "bytes": len(out)})
	}
	printInfo("%s\n", encoded)
	return nil
}

func readTreeFile(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(io.LimitReader(stdin, cfg.MaxInputBytes+1))
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		if int64(len(data)) > cfg.MaxInputBytes {
			return nil, errors.New("tree on stdin exceeds max_input_bytes")
		}
		return data, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}
	if info.Size() > cfg.MaxInputBytes {
		return nil, fmt.Errorf("tree file %s is %d bytes (max %d)", path, info.Size(), cfg.MaxInputBytes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}
	return data, nil
}
