// Package root contains the root command for the application
package root

import (
	"github.com/bragabarreto/financeai-pro-sub000/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input     string
	Output    string
	Reference string
	UserID    string
	AI        bool
	DryRun    bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "financeai",
		Short: "A CLI tool to extract, categorize and import financial transactions.",
		Long: `financeai extracts transactions from tabular files, bank SMS
notifications, receipt photos and payroll documents, categorizes them with
keyword rules, transaction history and the Gemini model, and imports the
approved drafts.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to financeai!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv(Log)
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific categorize command flags
	Description string
	Amount      string

	// Specific rollback command flags
	Since  string
	Window int
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file for the extracted drafts")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Reference, "reference", "r", "reference.yaml", "Reference data file (categories, accounts, cards)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.UserID, "user", "u", "", "User id the import runs for")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.AI, "ai", false, "Enhance drafts with the Gemini model")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.DryRun, "dry-run", false, "Extract and categorize without importing")
}
