// Package file handles tabular file import commands
package file

import (
	"github.com/bragabarreto/financeai-pro-sub000/cmd/common"
	"github.com/bragabarreto/financeai-pro-sub000/cmd/root"
	"github.com/bragabarreto/financeai-pro-sub000/internal/fileparser"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the file command
var Cmd = &cobra.Command{
	Use:   "file",
	Short: "Import transactions from a tabular file",
	Long:  `Extract transactions from a CSV bank export, categorize them and import the usable drafts.`,
	Run:   fileFunc,
}

func fileFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("File import command called")
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

	drafts, err := fileparser.ParseFile(root.SharedFlags.Input, rt.Logger)
	if err != nil {
		root.Log.Fatalf("Error parsing file: %v", err)
	}

	common.ProcessDrafts(ctx, rt, drafts, root.SharedFlags.UserID, models.SourceFile,
		root.SharedFlags.Output, root.SharedFlags.DryRun, root.Log)
	root.Log.Info("File import completed successfully!")
}
