package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitskit/internal/config"
)

var configForce bool

func init() {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the bitsctl config file",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter config file",
		Long: `The init command writes a commented config file holding the default
settings. Without a path it writes to the default location.

Example:
  bitsctl config init
  bitsctl config init ./bitsctl.toml --force`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: setupDefaults,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(args)
		},
	}
	initCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	rootCmd.AddCommand(cmd)
}

func runConfigInit(args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := config.WriteTemplate(path, configForce); err != nil {
		return err
	}
	printInfo("Wrote %s\n", path)
	return nil
}

func runConfigShow() error {
	if jsonOut {
		return printJSON(cfg)
	}
	if cfg.Path != "" {
		printInfo("# loaded from %s\n", cfg.Path)
	}
	if quiet {
		return nil
	}
	return cfg.Write(os.Stdout)
}
