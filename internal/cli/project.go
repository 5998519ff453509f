package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ceo/internal/ports/primary"
	"github.com/example/ceo/internal/wire"
)

// ProjectCmd returns the project command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects (max 3 active)",
		Long: `Create, list, ship and kill projects. The hard cap of 3 active projects
has no override: ship or kill one to free a slot.`,
	}

	cmd.AddCommand(projectAddCmd())
	cmd.AddCommand(projectListCmd())
	cmd.AddCommand(projectShowCmd())
	cmd.AddCommand(projectShipCmd())
	cmd.AddCommand(projectKillCmd())

	return cmd
}

func projectAddCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := wire.ProjectService().AddProject(context.Background(), primary.AddProjectRequest{
				Name:       args[0],
				TargetDate: target,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Added project %s: %s\n", shortID(project.ID), project.Name)
			if project.DaysRemaining != nil {
				fmt.Printf("  Target: %s (%d days)\n", project.TargetDate, *project.DaysRemaining)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Target ship date (YYYY-MM-DD)")

	return cmd
}

func projectListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := wire.ProjectService().ListProjects(context.Background(), primary.ProjectFilters{Status: status})
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found")
				return nil
			}

			fmt.Printf("\n%-10s %-9s %-12s %s\n", "ID", "STATUS", "TARGET", "NAME")
			fmt.Println("────────────────────────────────────────────────────────────────")
			for _, p := range projects {
				target := p.TargetDate
				if target == "" {
					target = "-"
				}
				fmt.Printf("%-10s %-9s %-12s %s\n", shortID(p.ID), p.Status, target, p.Name)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status: active, shipped or killed")

	return cmd
}

func projectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := wire.ProjectService().GetProject(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\nProject: %s\n", p.ID)
			fmt.Printf("Name:    %s\n", p.Name)
			fmt.Printf("Status:  %s\n", p.Status)
			if p.TargetDate != "" {
				fmt.Printf("Target:  %s", p.TargetDate)
				if p.DaysRemaining != nil {
					fmt.Printf(" (%d days remaining)", *p.DaysRemaining)
				}
				fmt.Println()
			}
			if p.ShippedEarly != nil {
				if *p.ShippedEarly {
					fmt.Println("Shipped: on time")
				} else {
					fmt.Println("Shipped: past target")
				}
			}
			if p.KillReason != "" {
				fmt.Printf("Killed:  %s\n", p.KillReason)
			}
			if p.CompletedAt != "" {
				fmt.Printf("Concluded: %s\n", p.CompletedAt)
			}
			fmt.Println()

			return nil
		},
	}
}

func projectShipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ship [id]",
		Short: "Mark a project shipped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := wire.ProjectService().CompleteProject(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("✓ Shipped %s: %s\n", shortID(p.ID), p.Name)
			if p.ShippedEarly != nil && !*p.ShippedEarly {
				fmt.Println("  (past the target date, but shipped beats perfect)")
			}
			return nil
		},
	}
}

func projectKillCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "kill [id]",
		Short: "Kill a project without shipping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := wire.ProjectService().KillProject(context.Background(), args[0], reason)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Killed %s: %s\n", shortID(p.ID), p.Name)
			fmt.Println("  Killing a project is a decision. That counts.")
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Why the project is being killed")

	return cmd
}

// shortID truncates a UUID for display. Lookups accept the prefix back.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
