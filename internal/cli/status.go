package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/ceo/internal/ports/primary"
	"github.com/example/ceo/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the execution dashboard",
		Long: `Show the execution dashboard: today's mission, weekly shipping, trailing
30-day completion and paralysis rates, trends, and decision timing.

All numbers are recomputed from the store on every call.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := wire.MetricsService().Summary(context.Background())
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()
			red := color.New(color.FgRed).SprintFunc()

			fmt.Println("\nCEO Status")
			fmt.Println("──────────")

			if summary.Today == nil {
				fmt.Println("Today: no check-in yet (run 'ceo checkin')")
			} else {
				mission := summary.Today.Mission
				if mission == "" {
					mission = "(mission not set)"
				}
				fmt.Printf("Today: %s [%s]\n", mission, colorStatus(summary.Today.MissionStatus, green, yellow, red))
			}

			if state, err := wire.EmergencyService().Status(context.Background()); err == nil && state != nil {
				fmt.Printf("%s one project, daily shipping\n", red("Circuit breaker ACTIVE:"))
			}
			fmt.Println()

			fmt.Printf("This week (from %s): %d/%d missions shipped\n",
				summary.ThisWeek.WeekStart, summary.ThisWeek.Shipped, summary.ThisWeek.Total)
			fmt.Printf("Last week (from %s): %d/%d missions shipped\n",
				summary.LastWeek.WeekStart, summary.LastWeek.Shipped, summary.LastWeek.Total)
			fmt.Println()

			fmt.Printf("Last 30 days (%d logged):\n", summary.TotalDays30)
			fmt.Printf("  Completion: %5.1f%%  (%s)\n", summary.CompletionRate30, trend(summary.CompletionTrend, green, red))
			fmt.Printf("  Paralysis:  %5.1f%%  %d days  (%s)\n",
				summary.ParalysisRate30, summary.ParalysisDays30, trend(summary.ParalysisTrend, green, red))
			fmt.Println()

			d := summary.Decisions
			if d.Total > 0 {
				fmt.Printf("Decisions: %d (%d under paralysis)\n", d.Total, d.UnderParalysis)
				fmt.Printf("  Avg %.0f min, %.0f%% within 20 minutes\n", d.AvgMinutes, d.Under20Rate)
			} else {
				fmt.Println("Decisions: none logged")
			}
			fmt.Println()

			fmt.Printf("Active projects: %d/3\n", summary.ActiveProjects)
			fmt.Println()

			return nil
		},
	}
}

func colorStatus(status string, green, yellow, red func(a ...interface{}) string) string {
	switch status {
	case primary.MissionShipped:
		return green(status)
	case primary.MissionBlocked:
		return red(status)
	case primary.MissionDeferred:
		return yellow(status)
	default:
		return status
	}
}

func trend(t string, green, red func(a ...interface{}) string) string {
	switch t {
	case primary.TrendImproving:
		return green(t)
	case primary.TrendDeclining:
		return red(t)
	default:
		return t
	}
}
