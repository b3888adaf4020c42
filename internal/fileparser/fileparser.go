// Package fileparser extracts transaction drafts from tabular files with
// arbitrary column headers. The field detector maps headers to canonical
// fields; columns it cannot map fall back to heuristic column scanning.
package fileparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bragabarreto/financeai-pro-sub000/internal/dateutils"
	"github.com/bragabarreto/financeai-pro-sub000/internal/fielddetect"
	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/moneyutils"

	"github.com/gocarina/gocsv"
)

// Parse reads a delimited tabular file from r and converts every data row
// into a draft. Rows with no detectable amount are skipped and counted by
// the validator downstream, not surfaced as errors.
func Parse(r io.Reader, logger logging.Logger) ([]models.Draft, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading tabular input: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := records[0]
	rows := records[1:]
	mapping := fielddetect.Detect(headers)
	logger.Info("Detected columns",
		logging.Field{Key: logging.FieldCount, Value: len(mapping)})

	columns := columnIndices(headers, mapping)
	if _, ok := columns[fielddetect.FieldAmount]; !ok {
		// No amount header — scan cell contents instead.
		for field, idx := range fielddetect.ScanColumns(rows) {
			if _, present := columns[field]; !present {
				columns[field] = idx
			}
		}
	}

	var drafts []models.Draft
	for _, row := range rows {
		draft := buildDraft(row, columns)
		if draft == nil {
			continue
		}
		drafts = append(drafts, *draft)
	}

	logger.Info("Parsed tabular file",
		logging.Field{Key: logging.FieldDraftCount, Value: len(drafts)})
	return drafts, nil
}

// ParseFile parses a tabular file from disk.
func ParseFile(path string, logger logging.Logger) ([]models.Draft, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && logger != nil {
			logger.WithError(cerr).Warn("Failed to close file")
		}
	}()
	return Parse(file, logger)
}

// WriteToCSV writes reviewed drafts to a canonical CSV file.
func WriteToCSV(drafts []models.Draft, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := gocsv.MarshalFile(&drafts, file); err != nil {
		return fmt.Errorf("error writing canonical CSV: %w", err)
	}
	return nil
}

func columnIndices(headers []string, mapping map[string]string) map[string]int {
	indices := make(map[string]int)
	for field, header := range mapping {
		for i, h := range headers {
			if h == header {
				indices[field] = i
				break
			}
		}
	}
	return indices
}

func buildDraft(row []string, columns map[string]int) *models.Draft {
	cell := func(field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	rawAmount := cell(fielddetect.FieldAmount)
	amount := moneyutils.ParseAmount(rawAmount)
	if !amount.IsPositive() {
		return nil
	}

	return &models.Draft{
		Date:        dateutils.NormalizeDate(cell(fielddetect.FieldDate)),
		Amount:      amount,
		Negative:    moneyutils.IsNegative(rawAmount),
		Description: cell(fielddetect.FieldDescription),
		Category:    cell(fielddetect.FieldCategory),
		Source:      models.SourceFile,
		RawText:     strings.Join(row, " "),
		// Raw signals; the classifier resolves them against the caller's
		// reference data.
		TypeField:    strings.ToLower(cell(fielddetect.FieldType)),
		PaymentField: strings.ToLower(cell(fielddetect.FieldPaymentMethod)),
		Beneficiary:  cell(fielddetect.FieldBeneficiary),
		Depositor:    cell(fielddetect.FieldDepositor),
	}
}
