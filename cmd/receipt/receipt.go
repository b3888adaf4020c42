// Package receipt handles receipt photo import commands
package receipt

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bragabarreto/financeai-pro-sub000/cmd/common"
	"github.com/bragabarreto/financeai-pro-sub000/cmd/root"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/receipt"

	"github.com/spf13/cobra"
)

// Cmd represents the receipt command
var Cmd = &cobra.Command{
	Use:   "receipt",
	Short: "Import a transaction from a photographed receipt",
	Long:  `Send a receipt photo to the Gemini model, decode the extracted transaction and import it.`,
	Run:   receiptFunc,
}

var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

func receiptFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Receipt import command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("An input file is required (--input)")
	}

	mimeType, ok := mimeTypes[strings.ToLower(filepath.Ext(root.SharedFlags.Input))]
	if !ok {
		root.Log.Fatalf("Unsupported image format: %s", filepath.Ext(root.SharedFlags.Input))
	}

	ctx := cmd.Context()
	rt, err := common.NewRuntime(ctx, root.Log, root.SharedFlags.Reference, true)
	if err != nil {
		root.Log.Fatalf("Error building runtime: %v", err)
	}
	defer rt.Close()

	if rt.AI == nil {
		root.Log.Fatal("Receipt import requires the Gemini model (GEMINI_API_KEY must be set)")
	}

	image, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	draft, err := receipt.Extract(ctx, rt.AI, image, mimeType, rt.Logger)
	if err != nil {
		root.Log.Fatalf("Error extracting receipt: %v", err)
	}

	common.ProcessDrafts(ctx, rt, []models.Draft{*draft}, root.SharedFlags.UserID,
		models.SourcePhoto, root.SharedFlags.Output, root.SharedFlags.DryRun, root.Log)
	root.Log.Info("Receipt import completed successfully!")
}
