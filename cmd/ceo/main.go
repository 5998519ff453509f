package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ceo/internal/cli"
	"github.com/example/ceo/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "ceo",
		Short:   "CEO - daily execution tracker for a solo founder",
		Version: version.String(),
		Long: `CEO is a CLI tool for running a one-person company by its operating rules:
one mission per day, at most 3 active projects, a 20-minute protocol for
breaking decision paralysis, and a circuit breaker for overwhelm.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.CheckinCmd())
	rootCmd.AddCommand(cli.CompleteCmd())
	rootCmd.AddCommand(cli.DayCmd())
	rootCmd.AddCommand(cli.ProjectCmd())
	rootCmd.AddCommand(cli.DecideCmd())
	rootCmd.AddCommand(cli.DecisionCmd())
	rootCmd.AddCommand(cli.EmergencyCmd())
	rootCmd.AddCommand(cli.StatusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
