package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ceo/internal/config"
	"github.com/example/ceo/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var (
		contactName  string
		contactPhone string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the CEO database",
		Long:  `Initialize the CEO database at ~/.ceo/ceo.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing CEO database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			if contactName != "" || contactPhone != "" {
				cfg, err := config.LoadConfig()
				if err != nil {
					return err
				}
				cfg.ExternalContactName = contactName
				cfg.ExternalContactPhone = contactPhone
				if err := config.SaveConfig(cfg); err != nil {
					return err
				}
				fmt.Println("✓ External accountability contact saved")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  ceo checkin --mission \"The ONE thing to ship today\"")
			fmt.Println("  ceo project add \"My first project\" --target 2026-09-15")

			return nil
		},
	}

	cmd.Flags().StringVar(&contactName, "contact", "", "External accountability contact name")
	cmd.Flags().StringVar(&contactPhone, "contact-phone", "", "External accountability contact phone")

	return cmd
}
