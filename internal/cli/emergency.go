package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ceo/internal/config"
	"github.com/example/ceo/internal/ports/primary"
	"github.com/example/ceo/internal/wire"
)

// EmergencyCmd returns the emergency command
func EmergencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emergency",
		Short: "Manage the overwhelm circuit breaker",
		Long: `The circuit breaker is the emergency mode for sustained overwhelm: one
simplified project, daily shipping, external accountability. While active,
no new projects may be added and only the simplified project may change.`,
	}

	cmd.AddCommand(emergencyCheckCmd())
	cmd.AddCommand(emergencyActivateCmd())
	cmd.AddCommand(emergencyDeactivateCmd())
	cmd.AddCommand(emergencyStatusCmd())

	return cmd
}

func emergencyCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Evaluate the trigger conditions",
		RunE: func(cmd *cobra.Command, args []string) error {
			check, err := wire.EmergencyService().Check(context.Background())
			if err != nil {
				return err
			}

			if check.Active {
				fmt.Println("Circuit breaker is ACTIVE")
				return nil
			}
			if !check.Triggered {
				fmt.Println("✓ No trigger conditions met")
				return nil
			}

			fmt.Println("⚠ Trigger conditions met:")
			for _, reason := range check.Reasons {
				fmt.Printf("  - %s\n", reason)
			}
			fmt.Println("\nActivate with: ceo emergency activate --project <id> --support-engaged")
			return nil
		},
	}
}

func emergencyActivateCmd() *cobra.Command {
	var (
		projectID      string
		supportEngaged bool
		contact        string
		reason         string
	)

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "Activate the circuit breaker",
		Long: `Activate emergency mode. Requires choosing the ONE project to keep
(everything else is frozen) and confirming that an external accountability
contact has been engaged.

When no automatic trigger matched, a manual reason is required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if contact == "" {
				if cfg, err := config.LoadConfig(); err == nil && cfg.ExternalContactName != "" {
					contact = cfg.ExternalContactName
				}
			}

			state, err := wire.EmergencyService().Activate(context.Background(), primary.ActivateRequest{
				SimplifiedProjectID:    projectID,
				ExternalSupportEngaged: supportEngaged,
				ExternalContact:        contact,
				ManualReason:           reason,
			})
			if err != nil {
				return err
			}

			fmt.Println("✓ Circuit breaker ACTIVATED")
			fmt.Printf("  Focus: %s\n", state.SimplifiedProjectName)
			for _, r := range state.TriggerReasons {
				fmt.Printf("  Trigger: %s\n", r)
			}
			if state.ExternalContact != "" {
				fmt.Printf("  Accountability: %s\n", state.ExternalContact)
			}
			fmt.Println("\nThe rules until deactivation:")
			fmt.Println("  - one project, daily shipping")
			fmt.Println("  - no new commitments")
			fmt.Println("  - deactivate only when the recovery conditions hold")
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "The ONE project to keep (ID or prefix)")
	cmd.Flags().BoolVar(&supportEngaged, "support-engaged", false, "Confirm the external accountability contact is engaged")
	cmd.Flags().StringVar(&contact, "contact", "", "External accountability contact (default from config)")
	cmd.Flags().StringVar(&reason, "reason", "", "Manual reason when no automatic trigger matched")

	return cmd
}

func emergencyDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate",
		Short: "End the active breaker cycle",
		Long: `End emergency mode. Succeeds only when all recovery conditions hold:
3+ projects shipped in 14 days, 5+ decisions without subsequent paralysis
in 14 days, and fewer than 3 paralysis-signal days in the last 7.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := wire.EmergencyService().Deactivate(context.Background())
			if err != nil {
				return err
			}

			fmt.Println("✓ Circuit breaker deactivated")
			fmt.Printf("  Cycle %s ended at %s\n", shortID(state.ID), state.DeactivatedAt)
			fmt.Println("  Back to normal operations: 3 project slots, same daily rhythm.")
			return nil
		},
	}
}

func emergencyStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active breaker cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := wire.EmergencyService().Status(context.Background())
			if err != nil {
				return err
			}
			if state == nil {
				fmt.Println("Circuit breaker: inactive")
				return nil
			}

			fmt.Println("Circuit breaker: ACTIVE")
			fmt.Printf("  Since: %s\n", state.ActivatedAt)
			if state.SimplifiedProjectName != "" {
				fmt.Printf("  Focus: %s\n", state.SimplifiedProjectName)
			}
			for _, r := range state.TriggerReasons {
				fmt.Printf("  Trigger: %s\n", r)
			}
			if state.ExternalContact != "" {
				fmt.Printf("  Accountability: %s\n", state.ExternalContact)
			}
			return nil
		},
	}
}
