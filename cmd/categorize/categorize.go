// Package categorize handles transaction categorization commands
package categorize

import (
	"github.com/bragabarreto/financeai-pro-sub000/cmd/common"
	"github.com/bragabarreto/financeai-pro-sub000/cmd/root"
	"github.com/bragabarreto/financeai-pro-sub000/internal/classifier"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/moneyutils"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Categorize a transaction description with the keyword rules and,
when enabled, the Gemini model. Prints the resolved type, category and
payment method.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description to categorize")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "", "Transaction amount (optional)")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Categorize command called")

	ctx := cmd.Context()
	rt, err := common.NewRuntime(ctx, root.Log, root.SharedFlags.Reference, root.SharedFlags.AI)
	if err != nil {
		root.Log.Fatalf("Error building runtime: %v", err)
	}
	defer rt.Close()

	draft := models.Draft{
		Description: root.Description,
		Amount:      moneyutils.ParseAmount(root.Amount),
		Source:      models.SourceBasic,
	}

	ref := rt.ClassifierReference()
	cls := classifier.New(rt.Logger)
	cls.Classify(&draft, ref)

	if rt.AI != nil {
		suggestion, err := rt.AI.Suggest(ctx, classifier.Request{
			Description: draft.Description,
			Amount:      draft.Amount.String(),
			Categories:  ref.CategoryNames(draft.Type),
		})
		if err != nil {
			root.Log.Errorf("Error getting AI suggestion: %v", err)
		} else if suggestion != nil {
			classifier.ApplySuggestion(&draft, suggestion, ref)
		}
	}

	root.Log.Infof("Type: %s", draft.Type)
	root.Log.Infof("Category: %s", draft.Category)
	root.Log.Infof("Payment method: %s", draft.PaymentMethod)
	if draft.NeedsReview {
		root.Log.Warn("This draft would need manual review")
	}
}
