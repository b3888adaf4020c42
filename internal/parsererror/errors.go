// Package parsererror defines the typed errors used across the pipeline.
package parsererror

import "fmt"

// ExtractionError represents a failure to extract a draft from raw input.
// Extraction failures are aggregated into validation warnings, never
// surfaced as fatal errors.
type ExtractionError struct {
	Source string
	Field  string
	Value  string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: failed to extract %s='%s': %v",
		e.Source, e.Field, e.Value, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ValidationError represents a hard blocking condition, such as a batch
// with zero usable drafts.
type ValidationError struct {
	Source string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Source, e.Reason)
}

// ClassificationError represents a categorization failure. The draft keeps
// its rule-based result and is flagged for review.
type ClassificationError struct {
	Description string
	Stage       string
	Err         error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification failed for %q at stage %s: %v",
		e.Description, e.Stage, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// ImportRowError represents a per-row import failure. Row failures are
// isolated; sibling rows in the batch continue.
type ImportRowError struct {
	Row         int
	Description string
	Err         error
}

func (e *ImportRowError) Error() string {
	return fmt.Sprintf("import failed for row %d (%q): %v",
		e.Row, e.Description, e.Err)
}

func (e *ImportRowError) Unwrap() error {
	return e.Err
}
