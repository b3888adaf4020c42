package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across extraction,
// enrichment and import stages so batches can be traced end to end.
const (
	FieldSource     = "source"
	FieldPattern    = "pattern"
	FieldDraftCount = "draft_count"
	FieldCategory   = "category"
	FieldType       = "type"
	FieldPayment    = "payment_method"
	FieldAccount    = "account_id"
	FieldCard       = "card_id"
	FieldConfidence = "confidence"
	FieldAmount     = "amount"
	FieldDate       = "date"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldCount      = "count"
	FieldInputFile  = "input_file"
	FieldRow        = "row"
	FieldUser       = "user_id"
)
