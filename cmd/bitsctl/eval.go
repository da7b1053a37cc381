package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newEvalCmd())
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <input>",
		Short: "Evaluate the expression encoded by a transmission",
		Long: `The eval command decodes a transmission and prints the value of its
outermost packet.

Example:
  bitsctl eval 9C0141080250320F1802104A08
  bitsctl eval input.txt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(args)
		},
	}
	return cmd
}

func runEval(args []string) error {
	_, pk, err := decodeInput(args[0])
	if err != nil {
		return err
	}
	value, err := pk.Eval()
	if err != nil {
		return fmt.Errorf("failed to evaluate: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]uint64{"value": value})
	}
	printVerbose("Expression: %s\n", pk)
	printInfo("%d\n", value)
	return nil
}
