package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/ceo/internal/app"
	"github.com/example/ceo/internal/core/protocol"
	"github.com/example/ceo/internal/ports/primary"
	"github.com/example/ceo/internal/wire"
)

// DecisionCmd returns the decision command
func DecisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decision",
		Short: "Record and review decisions",
	}

	cmd.AddCommand(decisionLogCmd())
	cmd.AddCommand(decisionListCmd())

	return cmd
}

func decisionLogCmd() *cobra.Command {
	var (
		date      string
		minutes   int
		paralysis bool
		outcome   string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "log [decision]",
		Short: "Log a decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = app.Today()
			}

			req := primary.LogDecisionRequest{
				Date:               date,
				Decision:           args[0],
				MadeUnderParalysis: paralysis,
				Outcome:            outcome,
				Notes:              notes,
			}
			if cmd.Flags().Changed("minutes") {
				req.TimeToDecide = &minutes
			}

			decision, err := wire.DecisionService().LogDecision(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Logged decision: %s\n", decision.Decision)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Decision date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes the decision took")
	cmd.Flags().BoolVar(&paralysis, "paralysis", false, "Decision was made under paralysis")
	cmd.Flags().StringVar(&outcome, "outcome", primary.OutcomeProceeded, "Outcome: proceeded, blocked or revisited")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func decisionListCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent decisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			decisions, err := wire.DecisionService().ListDecisions(context.Background(), days)
			if err != nil {
				return err
			}

			if len(decisions) == 0 {
				fmt.Println("No decisions logged")
				return nil
			}

			fmt.Printf("\n%-12s %-8s %-10s %s\n", "DATE", "MINUTES", "OUTCOME", "DECISION")
			fmt.Println("────────────────────────────────────────────────────────────────")
			for _, d := range decisions {
				minutes := "-"
				if d.TimeToDecide != nil {
					minutes = fmt.Sprintf("%d", *d.TimeToDecide)
				}
				marker := ""
				if d.MadeUnderParalysis {
					marker = " *"
				}
				fmt.Printf("%-12s %-8s %-10s %s%s\n", d.Date, minutes, d.Outcome, d.Decision, marker)
			}
			fmt.Println("\n  * made under paralysis")

			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Trailing window in days")

	return cmd
}

// DecideCmd returns the decide command
func DecideCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Run the 20-minute decision protocol",
		Long: `Walk through the paralysis-breaking protocol, step by step:

1. Externalize: name the decision you are avoiding and the fear behind it
2. Constraint: arm a 20-minute decision deadline (advisory)
3. Simplify: reduce to exactly two options
4. Commit: choose, write one line of rationale, no revisiting

The committed decision is recorded in the decision log with its timing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = app.Today()
			}
			return runProtocol(cmd.InOrStdin(), date)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Decision date (YYYY-MM-DD, default today)")

	return cmd
}

// runProtocol drives one protocol invocation over the given input stream.
func runProtocol(in io.Reader, date string) error {
	reader := bufio.NewReader(in)
	machine := protocol.New()

	if err := machine.Start(); err != nil {
		return err
	}

	fmt.Println("\nStep 1: Externalize")
	avoided, err := prompt(reader, "What decision are you avoiding? ")
	if err != nil {
		return err
	}
	fear, err := prompt(reader, "What are you afraid will happen? ")
	if err != nil {
		return err
	}
	if err := machine.Externalize(avoided, fear); err != nil {
		return err
	}

	deadline, err := machine.ArmConstraint(time.Now())
	if err != nil {
		return err
	}
	fmt.Println("\nStep 2: Constraint")
	fmt.Printf("Decide by %s. A good-enough decision now beats a perfect one later.\n", deadline.Format("15:04"))

	fmt.Println("\nStep 3: Simplify to two options")
	optionA, err := prompt(reader, "Option A: ")
	if err != nil {
		return err
	}
	optionB, err := prompt(reader, "Option B: ")
	if err != nil {
		return err
	}
	result, err := machine.Simplify(optionA, optionB)
	if err != nil {
		return err
	}

	fmt.Println("\nStep 4: Commit")
	choice := ""
	if result.AutoSelected {
		fmt.Printf("Both options are the same decision. Coin flip says: %s\n", result.Winner)
	} else {
		choice, err = prompt(reader, "Choose (A/B): ")
		if err != nil {
			return err
		}
	}
	rationale, err := prompt(reader, "One-line rationale (no revisiting): ")
	if err != nil {
		return err
	}

	draft, err := machine.Commit(choice, rationale, time.Now())
	if err != nil {
		return err
	}

	decision, err := wire.DecisionService().CommitProtocol(context.Background(), primary.ProtocolCommitRequest{
		Date:           date,
		Decision:       draft.Decision,
		Rationale:      draft.Rationale,
		ElapsedMinutes: draft.ElapsedMinutes,
		CoinFlipped:    draft.CoinFlipped,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n✓ Decided in %d minutes: %s\n", draft.ElapsedMinutes, decision.Decision)
	fmt.Println("  The decision is logged. Execute, don't revisit.")
	return nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
