package classifier

// Keyword tables for rule-based classification. Buckets are matched against
// the lower-cased description; the matched bucket token is then mapped to
// the caller's registered category whose name contains it, so the pipeline
// never invents a category label of its own.

// typeKeywords resolve an explicit type field. Investment keywords are
// checked before income/expense ones.
var (
	investmentTypeKeywords = []string{
		"investimento", "aplicacao", "aplicação", "resgate",
		"cdb", "tesouro", "lci", "lca", "poupanca", "poupança",
	}
	incomeTypeKeywords = []string{
		"receita", "credito", "crédito", "entrada", "recebimento",
		"deposito", "depósito", "income", "provento",
	}
	expenseTypeKeywords = []string{
		"despesa", "debito", "débito", "saida", "saída",
		"pagamento", "compra", "expense", "gasto",
	}
)

// categoryBuckets hold, per transaction type, the keyword buckets used for
// category resolution. The map key is the bucket token looked up in the
// caller's registered category names.
var categoryBuckets = map[string]map[string][]string{
	"expense": {
		"alimentação": {"restaurante", "lanchonete", "pizzaria", "padaria", "ifood", "mercado", "supermercado", "acougue", "açougue", "hortifruti", "alimenta"},
		"transporte":  {"uber", "99app", "taxi", "táxi", "combustivel", "combustível", "posto", "gasolina", "estacionamento", "pedagio", "pedágio", "onibus", "ônibus", "metro", "metrô"},
		"moradia":     {"aluguel", "condominio", "condomínio", "energia", "luz", "agua", "água", "gas", "gás", "iptu"},
		"saúde":       {"farmacia", "farmácia", "drogaria", "hospital", "clinica", "clínica", "medico", "médico", "laboratorio", "laboratório", "plano de saude", "plano de saúde"},
		"educação":    {"escola", "faculdade", "universidade", "curso", "livraria", "mensalidade"},
		"lazer":       {"cinema", "netflix", "spotify", "show", "teatro", "viagem", "hotel", "bar"},
		"vestuário":   {"roupa", "calcado", "calçado", "sapato", "renner", "riachuelo", "vestuario", "vestuário"},
		"telefonia":   {"vivo", "claro", "tim", "internet", "telefone", "celular", "banda larga"},
	},
	"income": {
		"salário":     {"salario", "salário", "provento", "folha", "pagamento mensal", "vencimento"},
		"freelance":   {"freela", "freelance", "servico prestado", "serviço prestado", "autonomo", "autônomo", "consultoria"},
		"rendimentos": {"rendimento", "juros", "dividendo", "provento acionario", "provento acionário"},
	},
	"investment": {
		"ações":      {"acao", "ação", "acoes", "ações", "bolsa", "b3", "bovespa"},
		"fundos":     {"fundo", "fii", "multimercado"},
		"renda fixa": {"cdb", "tesouro", "lci", "lca", "poupanca", "poupança", "renda fixa"},
	},
}

// bucketOrder fixes the scan order of the keyword buckets per type. A
// description can match keywords from more than one bucket and map iteration
// order is random, so the first bucket in this list wins.
var bucketOrder = map[string][]string{
	"expense": {
		"alimentação", "transporte", "moradia", "saúde",
		"educação", "lazer", "vestuário", "telefonia",
	},
	"income":     {"salário", "freelance", "rendimentos"},
	"investment": {"ações", "fundos", "renda fixa"},
}

// paymentKeywords map each payment method to its vocabulary. Order matters:
// debit-card patterns are checked before the more general credit-card one
// to avoid false positives on "cartão".
var paymentOrder = []string{
	"pix", "debit_card", "credit_card", "transfer", "paycheck", "boleto", "bank_account",
}

var paymentKeywords = map[string][]string{
	"pix":          {"pix"},
	"debit_card":   {"cartao de debito", "cartão de débito", "debito", "débito", "debit"},
	"credit_card":  {"cartao de credito", "cartão de crédito", "credito", "crédito", "cartao", "cartão", "credit"},
	"transfer":     {"transferencia", "transferência", "ted", "doc"},
	"paycheck":     {"contracheque", "folha de pagamento", "holerite"},
	"boleto":       {"boleto", "fatura"},
	"bank_account": {"conta corrente", "conta bancaria", "conta bancária"},
}
