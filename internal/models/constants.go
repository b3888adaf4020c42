package models

// Transaction types.
const (
	TypeExpense    = "expense"
	TypeIncome     = "income"
	TypeInvestment = "investment"
)

// Payment methods. Investment drafts with no explicit signal keep an empty
// method and are left for manual choice.
const (
	PaymentCreditCard  = "credit_card"
	PaymentDebitCard   = "debit_card"
	PaymentPix         = "pix"
	PaymentTransfer    = "transfer"
	PaymentBoleto      = "boleto"
	PaymentPaycheck    = "paycheck"
	PaymentApplication = "application"
	PaymentRedemption  = "redemption"
)

// Draft sources. Each draft is created by exactly one extractor.
const (
	SourceFile     = "file"
	SourceSMS      = "sms"
	SourcePhoto    = "photo"
	SourcePaycheck = "paycheck"
	SourceAI       = "ai"
	SourceHistory  = "history"
	SourceBasic    = "basic"
)

// MinUsableConfidence is the score below which a draft is flagged for
// review. Drafts under the threshold are never silently dropped.
const MinUsableConfidence = 50
