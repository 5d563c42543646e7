package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"stuff-lending/config"
	"stuff-lending/lending"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		seedFile   string
		logLevel   string
		noSeed     bool
	)

	cmd := &cobra.Command{
		Use:          "stuff-lending",
		Short:        "Interactive stuff lending system",
		Long:         "Members list items, borrow each other's items for a date range and pay with credits.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed-file") {
				cfg.SeedFile = seedFile
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if noSeed {
				cfg.Seed = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			reg := lending.NewRegistry(
				lending.WithLogger(logger),
				lending.WithStartDay(cfg.StartDay),
			)
			if err := seedRegistry(reg, cfg, cmd.OutOrStdout()); err != nil {
				return err
			}

			interactive := term.IsTerminal(int(os.Stdin.Fd()))
			return newShell(cmd.InOrStdin(), cmd.OutOrStdout(), reg, interactive).run()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "lending.yaml", "path to the YAML config file (ignored when missing)")
	cmd.Flags().StringVar(&seedFile, "seed-file", "", "YAML seed file to load instead of the sample data")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "start with an empty registry")

	return cmd
}

// seedRegistry loads the configured seed file, or the sample data when none is set.
func seedRegistry(reg *lending.Registry, cfg config.Config, out io.Writer) error {
	if !cfg.Seed {
		return nil
	}

	seed := lending.DefaultSeed()
	if cfg.SeedFile != "" {
		var err error
		if seed, err = lending.LoadSeed(cfg.SeedFile); err != nil {
			return err
		}
	}

	report := reg.ApplySeed(seed)
	for _, e := range report.Entries {
		if e.Err != nil {
			fmt.Fprintf(out, "Warning: could not load %s '%s': %v\n", e.Kind, e.Name, e.Err)
		}
	}
	return nil
}
