package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"stuff-lending/lending"
)

func main() {
	if err := newCheckSeedCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCheckSeedCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:          "check_seed <seed.yaml>",
		Short:        "Load a seed file into a fresh registry and report what was accepted",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkSeed(args[0], asJSON, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the resulting state as JSON")
	return cmd
}

func checkSeed(path string, asJSON bool, out io.Writer) error {
	seed, err := lending.LoadSeed(path)
	if err != nil {
		return err
	}

	reg := lending.NewRegistry()
	fmt.Fprintf(out, "Loading %s...\n", path)
	report := reg.ApplySeed(seed)

	for _, e := range report.Entries {
		if e.Err != nil {
			fmt.Fprintf(out, "%-9s %-35s ERROR - %v\n", e.Kind, lending.Truncate(e.Name, 35), e.Err)
			continue
		}
		fmt.Fprintf(out, "%-9s %-35s SUCCESS\n", e.Kind, lending.Truncate(e.Name, 35))
	}

	fmt.Fprintf(out, "\nCheck complete!\n")
	fmt.Fprintf(out, "Loaded: %d entries\n", len(report.Entries)-report.Failed())
	fmt.Fprintf(out, "Errors: %d\n", report.Failed())

	if asJSON {
		buf, err := lending.MarshalSnapshot(reg.Snapshot())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(buf))
		return nil
	}

	members := reg.Members()
	if len(members) > 0 {
		fmt.Fprintln(out, "\nResulting balances:")
		fmt.Fprintf(out, "%-30s %-8s %-5s\n", "Name", "Credits", "Items")
		fmt.Fprintln(out, strings.Repeat("-", 45))
		for _, m := range members {
			fmt.Fprintf(out, "%-30s %-8d %-5d\n", lending.Truncate(m.Name(), 30), m.Credits(), len(m.OwnedItems()))
		}
	}

	if report.Failed() > 0 {
		return fmt.Errorf("%d seed entries failed", report.Failed())
	}
	return nil
}
