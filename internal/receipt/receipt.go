// Package receipt turns a photographed payment receipt into a draft
// transaction. The image is sent to a vision collaborator which answers with
// a strict JSON object; anything that does not decode cleanly is discarded
// rather than guessed at.
package receipt

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/bragabarreto/financeai-pro-sub000/internal/dateutils"
	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/moneyutils"
	"github.com/bragabarreto/financeai-pro-sub000/internal/parsererror"
)

// VisionClient is the slice of the AI client the receipt path needs.
type VisionClient interface {
	ExtractText(ctx context.Context, image []byte, mimeType, prompt string) (string, error)
}

// extraction is the JSON contract the vision prompt asks for. All fields are
// strings so a model answering "12,50" instead of 12.5 still decodes.
type extraction struct {
	Amount         string `json:"amount"`
	Date           string `json:"date"`
	Description    string `json:"description"`
	PaymentMethod  string `json:"payment_method"`
	CardLastDigits string `json:"card_last_digits"`
	Establishment  string `json:"establishment"`
}

const prompt = `Extraia do comprovante os campos e responda apenas com JSON:
{"amount": "", "date": "", "description": "", "payment_method": "", "card_last_digits": "", "establishment": ""}
payment_method deve ser um de: pix, credit_card, debit_card, transfer, boleto.
Use string vazia para campos ausentes.`

var jsonBlob = regexp.MustCompile(`\{[\s\S]*\}`)

var knownMethods = map[string]bool{
	models.PaymentPix:        true,
	models.PaymentCreditCard: true,
	models.PaymentDebitCard:  true,
	models.PaymentTransfer:   true,
	models.PaymentBoleto:     true,
}

// Extract sends the image to the vision client and decodes the answer into a
// single expense draft.
func Extract(ctx context.Context, client VisionClient, image []byte, mimeType string, logger logging.Logger) (*models.Draft, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if client == nil {
		return nil, &parsererror.ValidationError{Source: models.SourcePhoto, Reason: "no vision client configured"}
	}

	raw, err := client.ExtractText(ctx, image, mimeType, prompt)
	if err != nil {
		return nil, &parsererror.ExtractionError{Source: models.SourcePhoto, Field: "image", Err: err}
	}

	draft := decode(raw)
	if draft == nil {
		logger.Warn("Receipt answer did not decode into a usable draft",
			logging.Field{Key: logging.FieldSource, Value: models.SourcePhoto})
		return nil, &parsererror.ValidationError{Source: models.SourcePhoto, Reason: "unusable vision answer"}
	}

	logger.Info("Receipt extracted",
		logging.Field{Key: logging.FieldSource, Value: models.SourcePhoto},
		logging.Field{Key: "payment_method", Value: draft.PaymentMethod})
	return draft, nil
}

// decode applies the fail-closed contract: a draft comes back only when the
// answer holds valid JSON with a positive amount.
func decode(raw string) *models.Draft {
	blob := jsonBlob.FindString(stripFences(raw))
	if blob == "" {
		return nil
	}

	var ext extraction
	if err := json.Unmarshal([]byte(blob), &ext); err != nil {
		return nil
	}

	amount := moneyutils.ParseAmount(ext.Amount)
	if !amount.IsPositive() {
		return nil
	}

	description := strings.TrimSpace(ext.Description)
	if description == "" {
		description = strings.TrimSpace(ext.Establishment)
	}

	draft := &models.Draft{
		Amount:      amount,
		Date:        dateutils.NormalizeDate(ext.Date),
		Description: description,
		Type:        models.TypeExpense,
		Source:      models.SourcePhoto,
		RawText:     raw,
	}

	method := strings.ToLower(strings.TrimSpace(ext.PaymentMethod))
	if knownMethods[method] {
		draft.PaymentMethod = method
	}
	if digits := strings.TrimSpace(ext.CardLastDigits); len(digits) == 4 {
		draft.CardLastDigits = digits
	}
	return draft
}

func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
