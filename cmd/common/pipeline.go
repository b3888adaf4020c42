// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"time"

	"github.com/bragabarreto/financeai-pro-sub000/internal/cardmatch"
	"github.com/bragabarreto/financeai-pro-sub000/internal/classifier"
	"github.com/bragabarreto/financeai-pro-sub000/internal/confidence"
	"github.com/bragabarreto/financeai-pro-sub000/internal/config"
	"github.com/bragabarreto/financeai-pro-sub000/internal/enhancer"
	"github.com/bragabarreto/financeai-pro-sub000/internal/fileparser"
	"github.com/bragabarreto/financeai-pro-sub000/internal/history"
	"github.com/bragabarreto/financeai-pro-sub000/internal/importer"
	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/store"
	"github.com/bragabarreto/financeai-pro-sub000/internal/validation"

	"github.com/sirupsen/logrus"
)

// Runtime bundles the shared dependencies every command wires up: the
// resolved configuration, the reference data, the transaction store and the
// optional AI client.
type Runtime struct {
	Config *config.Config
	Logger logging.Logger
	Ref    *store.ReferenceData
	Store  store.TransactionStore
	AI     *classifier.GeminiClient
}

// NewRuntime builds the runtime for one command invocation. The AI client is
// created only when requested and configured; a missing key downgrades to
// rule-based categorization with a warning instead of failing.
func NewRuntime(ctx context.Context, log *logrus.Logger, refPath string, withAI bool) (*Runtime, error) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogrusAdapterFromLogger(log)

	ref, err := store.LoadReferenceData(refPath)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Config: cfg,
		Logger: logger,
		Ref:    ref,
		Store:  store.NewMemoryStore(),
	}

	if withAI || cfg.AI.Enabled {
		apiKey := cfg.AI.APIKey
		if apiKey == "" {
			apiKey = config.GetGeminiAPIKey()
		}
		if apiKey == "" {
			log.Warn("AI enhancement requested but GEMINI_API_KEY is not set, continuing without it")
		} else {
			client, err := classifier.NewGeminiClient(ctx, classifier.GeminiConfig{
				APIKey:         apiKey,
				Model:          cfg.AI.Model,
				TimeoutSeconds: cfg.AI.TimeoutSeconds,
			}, logger)
			if err != nil {
				return nil, fmt.Errorf("failed to create Gemini client: %w", err)
			}
			rt.AI = client
		}
	}

	return rt, nil
}

// Close releases the runtime's external clients.
func (rt *Runtime) Close() {
	if rt.AI != nil {
		_ = rt.AI.Close()
	}
}

// ClassifierReference adapts the loaded reference data to the classifier's
// view of it.
func (rt *Runtime) ClassifierReference() classifier.Reference {
	return classifier.Reference{
		UserIdentity: rt.Ref.UserIdentity,
		Categories:   rt.Ref.Categories,
		Accounts:     rt.Ref.Accounts,
		Cards:        rt.Ref.Cards,
	}
}

// Categorize runs the rule, card and history stages over extracted drafts
// and scores each one. Drafts are enriched in place.
func (rt *Runtime) Categorize(ctx context.Context, drafts []models.Draft, userID string) []models.Draft {
	ref := rt.ClassifierReference()
	cls := classifier.New(rt.Logger)

	past := rt.pastRecords(ctx, userID)

	for i := range drafts {
		draft := &drafts[i]
		cls.Classify(draft, ref)

		if draft.CardLastDigits != "" {
			if match := cardmatch.ByDigits(draft.CardLastDigits, rt.Ref.Cards); match != nil {
				draft.CardID = match.Card.ID
				draft.CardConfidence = match.Confidence
			}
		}

		history.Apply(draft, history.FindMatch(draft.Description, past, rt.Logger))
		draft.Confidence = confidence.Score(draft)
	}

	if rt.AI != nil {
		enh := enhancer.New(rt.AI, rt.Logger)
		if rt.Config.Enhance.GroupSize > 0 {
			enh.GroupSize = rt.Config.Enhance.GroupSize
		}
		enh.GroupDelay = time.Duration(rt.Config.Enhance.GroupDelaySeconds) * time.Second
		drafts = enh.EnhanceBatch(ctx, drafts, ref)
		for i := range drafts {
			drafts[i].Confidence = confidence.Score(&drafts[i])
		}
	}

	return drafts
}

// ProcessDrafts runs the shared back half of every extraction command:
// categorize, validate, optionally write the draft CSV, then import unless
// the run is a dry run.
func ProcessDrafts(ctx context.Context, rt *Runtime, drafts []models.Draft, userID, origin, outputFile string, dryRun bool, log *logrus.Logger) {
	drafts = rt.Categorize(ctx, drafts, userID)

	result := validation.ValidateExtraction(drafts)
	for _, warning := range result.Warnings {
		log.Warn(warning)
	}
	log.Infof("%d draft(s) extracted, %d usable, %d need review",
		len(drafts), result.Usable, len(result.NeedsReview))

	if outputFile != "" {
		if err := fileparser.WriteToCSV(drafts, outputFile); err != nil {
			log.Fatalf("Error writing drafts to CSV: %v", err)
		}
		log.Infof("Drafts written to %s", outputFile)
	}

	if dryRun {
		log.Info("Dry run, skipping import")
		return
	}

	imp := importer.New(rt.Store, rt.Logger)
	importResult, err := imp.Import(ctx, drafts, importer.Options{
		UserID:           userID,
		Reference:        rt.Ref,
		DefaultAccountID: rt.Config.Import.DefaultAccountID,
		Origin:           origin,
	})
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	for _, failure := range importResult.Failures {
		log.Warnf("Row %d (%q) failed: %s", failure.Row, failure.Description, failure.Message)
	}
	log.Infof("Imported %d transaction(s), %d failure(s)",
		len(importResult.InsertedIDs), len(importResult.Failures))
	for accountID, balance := range importResult.Balances {
		log.Infof("Account %s balance: %s", accountID, balance.StringFixed(2))
	}
}

// pastRecords loads the bounded history window from the store across the
// user's accounts.
func (rt *Runtime) pastRecords(ctx context.Context, userID string) []models.HistoryRecord {
	limit := rt.Config.History.Limit
	if limit <= 0 {
		return nil
	}
	var rows []store.Row
	for _, account := range rt.Ref.Accounts {
		accountRows, err := rt.Store.ListByAccount(ctx, userID, account.ID)
		if err != nil {
			continue
		}
		rows = append(rows, accountRows...)
	}
	return store.RowsToHistory(rows, limit)
}
