// Package paycheck handles payroll document import commands
package paycheck

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bragabarreto/financeai-pro-sub000/cmd/common"
	"github.com/bragabarreto/financeai-pro-sub000/cmd/root"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/paycheck"

	"github.com/spf13/cobra"
)

// Cmd represents the paycheck command
var Cmd = &cobra.Command{
	Use:   "paycheck",
	Short: "Import a salary transaction from a payroll document",
	Long: `Extract the net salary from a payroll document (text, or a photo
transcribed by the Gemini model), and import it as an income transaction.`,
	Run: paycheckFunc,
}

const transcribePrompt = "Transcreva todo o texto deste contracheque, preservando os rótulos e valores."

var imageMimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

func paycheckFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Paycheck import command called")
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

	data, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	text := string(data)
	ext := strings.ToLower(filepath.Ext(root.SharedFlags.Input))
	if mimeType, ok := imageMimeTypes[ext]; ok {
		if rt.AI == nil {
			root.Log.Fatal("A payroll photo requires the Gemini model (--ai with GEMINI_API_KEY set)")
		}
		text, err = rt.AI.ExtractText(ctx, data, mimeType, transcribePrompt)
		if err != nil {
			root.Log.Fatalf("Error transcribing payroll photo: %v", err)
		}
	}

	draft := paycheck.Extract(text, rt.Logger)
	if draft == nil {
		root.Log.Fatal("No salary value found in the document")
	}

	common.ProcessDrafts(ctx, rt, []models.Draft{*draft}, root.SharedFlags.UserID,
		models.SourcePaycheck, root.SharedFlags.Output, root.SharedFlags.DryRun, root.Log)
	root.Log.Info("Paycheck import completed successfully!")
}
