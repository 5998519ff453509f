// Package cli provides CLI commands for the CEO application.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ceo/internal/app"
	"github.com/example/ceo/internal/config"
	"github.com/example/ceo/internal/ports/primary"
	"github.com/example/ceo/internal/wire"
)

// CheckinCmd returns the checkin command
func CheckinCmd() *cobra.Command {
	var (
		date      string
		energy    string
		paralysis bool
		mission   string
		done      string
		byTime    string
	)

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record the morning check-in",
		Long: `Record the daily check-in: energy level, paralysis signals, and the ONE
mission for today. One check-in per calendar date.

Reporting paralysis signals lets the mission stay open and queues the
20-minute decision protocol (run it with 'ceo decide').

Examples:
  ceo checkin --mission "Ship the pricing page" --done "page live" --by 15:00
  ceo checkin --energy low --paralysis`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = app.Today()
			}
			if byTime == "" {
				if cfg, err := config.LoadConfig(); err == nil {
					byTime = cfg.DefaultTargetTime
				}
			}

			result, err := wire.CheckinService().Checkin(context.Background(), primary.CheckinRequest{
				Date:             date,
				Energy:           energy,
				ParalysisSignals: paralysis,
				Mission:          mission,
				DoneDefinition:   done,
				TargetTime:       byTime,
			})
			if err != nil {
				return err
			}

			log := result.Log
			fmt.Printf("✓ Checked in for %s (energy: %s)\n", log.Date, log.Energy)
			if log.Mission != "" {
				fmt.Printf("  Mission: %s\n", log.Mission)
				if log.MissionDoneDefinition != "" {
					fmt.Printf("  Done when: %s\n", log.MissionDoneDefinition)
				}
				if log.MissionTargetTime != "" {
					fmt.Printf("  Ship by: %s\n", log.MissionTargetTime)
				}
			}

			if result.RunProtocol {
				fmt.Println()
				fmt.Println("Paralysis signals reported. Run the decision protocol now:")
				fmt.Println("  ceo decide")
			}

			printEmergencyCheck(result.Emergency)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Check-in date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&energy, "energy", "", "Energy level: high, medium or low (default medium)")
	cmd.Flags().BoolVar(&paralysis, "paralysis", false, "Report decision-paralysis signals")
	cmd.Flags().StringVarP(&mission, "mission", "m", "", "The ONE thing to ship today")
	cmd.Flags().StringVar(&done, "done", "", "What DONE looks like for the mission")
	cmd.Flags().StringVar(&byTime, "by", "", "Target ship time (HH:MM)")

	return cmd
}

// CompleteCmd returns the complete command
func CompleteCmd() *cobra.Command {
	var (
		date     string
		blocker  string
		decision string
	)

	cmd := &cobra.Command{
		Use:       "complete [shipped|blocked|deferred]",
		Short:     "Conclude today's mission",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"shipped", "blocked", "deferred"},
		Long: `Conclude the day's mission. The conclusion is terminal: a day cannot be
concluded twice.

A blocked conclusion records the blocker type (self_decision or external).
Most blocks are a decision you are avoiding, so self_decision is the default.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = app.Today()
			}

			log, err := wire.CheckinService().CompleteMission(context.Background(), primary.CompleteMissionRequest{
				Date:         date,
				Status:       args[0],
				BlockerType:  blocker,
				DecisionMade: decision,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Mission %s for %s: %s\n", log.MissionStatus, log.Date, log.Mission)
			if log.MissionStatus == primary.MissionBlocked {
				fmt.Printf("  Blocker: %s\n", log.BlockerType)
				if log.BlockerType == primary.BlockerSelfDecision {
					fmt.Println("  A self-decision block is a paralysis signal. Run 'ceo decide'.")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to conclude (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&blocker, "blocker", "", "Blocker type for a blocked mission: self_decision or external")
	cmd.Flags().StringVar(&decision, "decision", "", "The decision that broke (or would break) the block")

	return cmd
}

// DayCmd returns the day command
func DayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Show the log for a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := app.Today()
			if len(args) > 0 {
				date = args[0]
			}

			log, err := wire.CheckinService().GetDay(context.Background(), date)
			if err != nil {
				return err
			}

			fmt.Printf("\n%s  (energy: %s)\n", log.Date, log.Energy)
			if log.ParalysisSignals {
				fmt.Println("  Paralysis signals reported")
			}
			if log.Mission != "" {
				fmt.Printf("  Mission: %s [%s]\n", log.Mission, log.MissionStatus)
				if log.MissionDoneDefinition != "" {
					fmt.Printf("  Done when: %s\n", log.MissionDoneDefinition)
				}
				if log.MissionTargetTime != "" {
					fmt.Printf("  Ship by: %s\n", log.MissionTargetTime)
				}
			} else {
				fmt.Println("  Mission: (not set)")
			}
			if log.BlockerType != primary.BlockerNone {
				fmt.Printf("  Blocker: %s\n", log.BlockerType)
			}
			if log.DecisionMade != "" {
				fmt.Printf("  Decision made: %s\n", log.DecisionMade)
			}
			fmt.Println()
			return nil
		},
	}

	return cmd
}

// printEmergencyCheck reports a tripped circuit breaker evaluation.
func printEmergencyCheck(check *primary.EmergencyCheck) {
	if check == nil {
		return
	}
	if check.Active {
		fmt.Println()
		fmt.Println("⚠ Circuit breaker is ACTIVE. One project, daily shipping, until 'ceo emergency deactivate' succeeds.")
		return
	}
	if !check.Triggered {
		return
	}
	fmt.Println()
	fmt.Println("⚠ Circuit breaker conditions met:")
	for _, reason := range check.Reasons {
		fmt.Printf("  - %s\n", reason)
	}
	fmt.Println("Consider 'ceo emergency activate' to simplify down to one project.")
}
