// Package sms handles bank SMS import commands
package sms

import (
	"os"

	"github.com/bragabarreto/financeai-pro-sub000/cmd/common"
	"github.com/bragabarreto/financeai-pro-sub000/cmd/root"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/smsparser"

	"github.com/spf13/cobra"
)

// Cmd represents the sms command
var Cmd = &cobra.Command{
	Use:   "sms",
	Short: "Import transactions from bank SMS notifications",
	Long: `Extract transactions from a text file of bank SMS notifications
(one or more messages separated by blank lines), categorize them and import
the usable drafts.`,
	Run: smsFunc,
}

func smsFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("SMS import command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("An input file is required (--input)")
	}

	ctx := cmd.Context()
	rt, err := common.NewRuntime(ctx, root.Log, root.SharedFlags.Reference, root.SharedFlags.AI)
	if err != nil {
		root.Log.Fatalf("Error building runtime: %v", err)
	}
	defer rt.Close()

	text, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	drafts := smsparser.ExtractAll(string(text), rt.Logger)

	common.ProcessDrafts(ctx, rt, drafts, root.SharedFlags.UserID, models.SourceSMS,
		root.SharedFlags.Output, root.SharedFlags.DryRun, root.Log)
	root.Log.Info("SMS import completed successfully!")
}
