package smsparser

import (
	"regexp"
)

// pattern is one entry of the ordered extraction table. Each pattern fixes
// the transaction type and the default payment method of its matches. The
// table is tried top to bottom and the first match wins, so more specific
// bank formats must precede the generic ones and the amount-only catch-all
// must stay last.
type pattern struct {
	id      string
	txType  string
	payment string
	re      *regexp.Regexp
}

const amountGroup = `R\$\s?(?P<amount>[\d.,]+)`

var patterns = []pattern{
	{
		// Bank purchase notices: "CAIXA: Compra aprovada LOJA R$ 1.234,56 06/10 às 16:45"
		id:      "bank_purchase",
		txType:  "expense",
		payment: "credit_card",
		re: regexp.MustCompile(`(?i)^(?P<bank>[A-ZÀ-Ú][\wÀ-ú]*)[:\s-]+compra\s+aprovada:?\s+(?:em\s+)?(?P<desc>.+?),?\s+` + amountGroup +
			`(?:\s+em\s+\d{1,2}\s*(?:x|vezes|parcelas))?(?:\s+(?:em\s+|dia\s+)?(?P<date>\d{1,2}/\d{1,2}(?:/\d{2,4})?))?(?:,?\s+às?\s+(?P<time>\d{1,2}:\d{2}))?`),
	},
	{
		id:      "generic_purchase",
		txType:  "expense",
		payment: "credit_card",
		re: regexp.MustCompile(`(?i)compra\s+(?:de\s+|no\s+valor\s+de\s+)?` + amountGroup +
			`\s+(?:em|no|na)\s+(?P<desc>.+?)(?:\s+(?:em\s+|dia\s+)(?P<date>\d{1,2}/\d{1,2}(?:/\d{2,4})?))?\.?$`),
	},
	{
		id:      "pix_received",
		txType:  "income",
		payment: "pix",
		re: regexp.MustCompile(`(?i)pix\s+recebido(?:\s+de\s+(?P<desc>.+?))?[,:\s]+(?:no\s+valor\s+de\s+)?` + amountGroup +
			`(?:\s+(?:em\s+)?(?P<date>\d{1,2}/\d{1,2}(?:/\d{2,4})?))?`),
	},
	{
		id:      "pix_sent",
		txType:  "expense",
		payment: "pix",
		re: regexp.MustCompile(`(?i)(?:pix\s+enviado|envio\s+de\s+pix|pagamento\s+pix|transfer[êe]ncia\s+pix)(?:\s+para\s+(?P<desc>.+?))?[,:\s]+(?:no\s+valor\s+de\s+)?` + amountGroup +
			`(?:\s+(?:em\s+)?(?P<date>\d{1,2}/\d{1,2}(?:/\d{2,4})?))?`),
	},
	{
		id:      "salary_credit",
		txType:  "income",
		payment: "paycheck",
		re: regexp.MustCompile(`(?i)(?:cr[ée]dito\s+de\s+)?(?:sal[áa]rio|proventos?|folha\s+de\s+pagamento)\s+(?:creditado|recebido|dispon[íi]vel)?[,:\s]*(?:de\s+|no\s+valor\s+de\s+)?` + amountGroup),
	},
	{
		id:      "investment_application",
		txType:  "investment",
		payment: "application",
		re: regexp.MustCompile(`(?i)aplica[çc][ãa]o\s+(?:em\s+(?P<desc>.+?)\s+)?(?:de\s+|no\s+valor\s+de\s+)?` + amountGroup),
	},
	{
		id:      "investment_redemption",
		txType:  "investment",
		payment: "redemption",
		re: regexp.MustCompile(`(?i)resgate\s+(?:de\s+(?P<desc>.+?)\s+)?(?:no\s+valor\s+de\s+)?` + amountGroup),
	},
	{
		id:      "generic_transfer",
		txType:  "expense",
		payment: "transfer",
		re: regexp.MustCompile(`(?i)(?:transfer[êe]ncia|\bted\b|\bdoc\b)\s+(?:(?:de|para)\s+(?P<desc>.+?)\s+)?(?:no\s+valor\s+de\s+)?` + amountGroup +
			`(?:\s+(?:em\s+)?(?P<date>\d{1,2}/\d{1,2}(?:/\d{2,4})?))?`),
	},
	{
		id:      "account_debit",
		txType:  "expense",
		payment: "debit_card",
		re: regexp.MustCompile(`(?i)d[ée]bito\s+(?:em\s+conta\s+)?(?:de\s+|no\s+valor\s+de\s+)?` + amountGroup +
			`(?:\s+(?P<desc>.+?))?(?:\s+(?:em\s+)?(?P<date>\d{1,2}/\d{1,2}(?:/\d{2,4})?))?\.?$`),
	},
	{
		// Catch-all: any message carrying an amount. No payment method is
		// assumed; enrichment stages fill the gap.
		id:      "amount_only",
		txType:  "expense",
		payment: "",
		re:      regexp.MustCompile(amountGroup),
	},
}

// installmentRe detects "em N vezes" (and the N x / N parcelas variants)
// anywhere in the message. The extracted total is divided by N so the
// returned draft always carries a per-installment amount.
var installmentRe = regexp.MustCompile(`(?i)em\s+(\d{1,2})\s*(?:x\b|vezes|parcelas)`)

// cardDigitsRe captures a trailing 4-digit card reference such as
// "cartão final 1234".
var cardDigitsRe = regexp.MustCompile(`(?i)(?:cart[ãa]o|final)\D{0,10}(\d{4})\b`)

// groups returns the named capture groups of a match.
func (p pattern) groups(message string) map[string]string {
	m := p.re.FindStringSubmatch(message)
	if m == nil {
		return nil
	}
	result := make(map[string]string)
	for i, name := range p.re.SubexpNames() {
		if name != "" && i < len(m) {
			result[name] = m[i]
		}
	}
	return result
}
