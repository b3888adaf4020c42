// Package rollback handles import rollback commands
package rollback

import (
	"time"

	"github.com/bragabarreto/financeai-pro-sub000/cmd/common"
	"github.com/bragabarreto/financeai-pro-sub000/cmd/root"
	"github.com/bragabarreto/financeai-pro-sub000/internal/importer"

	"github.com/spf13/cobra"
)

// Cmd represents the rollback command
var Cmd = &cobra.Command{
	Use:   "rollback",
	Short: "Undo a recent import",
	Long: `Delete the transactions created around an import timestamp and
recompute the affected balances. The timestamp defaults to now.`,
	Run: rollbackFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.Since, "at", "", "Import timestamp to roll back (RFC3339, default: now)")
	Cmd.Flags().IntVar(&root.Window, "window", 0, "Window in minutes around the timestamp (default: from configuration)")
}

func rollbackFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Rollback command called")

	if root.SharedFlags.UserID == "" {
		root.Log.Fatal("A user id is required (--user)")
	}

	ctx := cmd.Context()
	rt, err := common.NewRuntime(ctx, root.Log, root.SharedFlags.Reference, false)
	if err != nil {
		root.Log.Fatalf("Error building runtime: %v", err)
	}
	defer rt.Close()

	importedAt := time.Now()
	if root.Since != "" {
		importedAt, err = time.Parse(time.RFC3339, root.Since)
		if err != nil {
			root.Log.Fatalf("Invalid timestamp %q: %v", root.Since, err)
		}
	}

	windowMinutes := root.Window
	if windowMinutes <= 0 {
		windowMinutes = rt.Config.Import.RollbackWindowMinute
	}

	imp := importer.New(rt.Store, rt.Logger)
	deleted, err := imp.Rollback(ctx, root.SharedFlags.UserID, importedAt,
		time.Duration(windowMinutes)*time.Minute)
	if err != nil {
		root.Log.Fatalf("Rollback failed: %v", err)
	}

	root.Log.Infof("Rolled back %d transaction(s)", deleted)
}
