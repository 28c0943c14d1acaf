// internal/precificacao/pagamento.go
package precificacao

// Tipos de método de pagamento
const (
	PagamentoDinheiro      = "dinheiro"
	PagamentoPix           = "pix"
	PagamentoCartaoDebito  = "cartao_debito"
	PagamentoCartaoCredito = "cartao_credito"
)

// TaxaParcela é a taxa aplicável a um número específico de parcelas no crédito.
type TaxaParcela struct {
	NumeroParcelas int     `json:"numeroParcelas"`
	Taxa           float64 `json:"taxa"`
}

// MetodoPagamento descreve o método escolhido e suas taxas percentuais.
type MetodoPagamento struct {
	Tipo     string        `json:"tipo"`
	Taxa     float64       `json:"taxa"`
	Parcelas []TaxaParcela `json:"parcelas,omitempty"`
}

// CalcularTaxaPagamento devolve a taxa em dinheiro cobrada sobre o valor.
// Dinheiro e pix nunca têm taxa. No crédito, procura a faixa de parcelas
// escolhida; sem faixa correspondente vale a taxa base do método (tipicamente
// 0 para 1x) — ausência de faixa não é erro.
func CalcularTaxaPagamento(valor float64, metodo MetodoPagamento, numeroParcelas *int) float64 {
	switch metodo.Tipo {
	case PagamentoDinheiro, PagamentoPix:
		return 0
	case PagamentoCartaoDebito:
		return valor * metodo.Taxa / 100
	case PagamentoCartaoCredito:
		taxa := metodo.Taxa
		if numeroParcelas != nil {
			for _, p := range metodo.Parcelas {
				if p.NumeroParcelas == *numeroParcelas {
					taxa = p.Taxa
					break
				}
			}
		}
		return valor * taxa / 100
	}
	return 0
}

// ValorComTaxa devolve o preço final já com a taxa do método somada.
func ValorComTaxa(valor float64, metodo MetodoPagamento, numeroParcelas *int) float64 {
	return valor + CalcularTaxaPagamento(valor, metodo, numeroParcelas)
}
