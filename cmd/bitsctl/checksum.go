package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newChecksumCmd())
}

func newChecksumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checksum <input>",
		Short: "Print the sum of all packet version numbers",
		Long: `The checksum command decodes a transmission and prints the sum of the
version numbers of every packet in it.

Example:
  bitsctl checksum 8A004A801A8002F478
  bitsctl checksum - < input.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecksum(args)
		},
	}
	return cmd
}

func runChecksum(args []string) error {
	_, pk, err := decodeInput(args[0])
	if err != nil {
		return err
	}
	sum := pk.VersionSum()

	if jsonOut {
		return printJSON(map[string]uint64{"version_sum": sum})
	}
	printInfo("%d\n", sum)
	return nil
}
