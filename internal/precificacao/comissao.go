// internal/precificacao/comissao.go
package precificacao

// Tipos de comissão
const (
	ComissaoValorFixo  = "valor"
	ComissaoPercentual = "percentual"
)

// Comissao é o custo de comissão de uma venda, em valor fixo ou percentual
// sobre o total.
type Comissao struct {
	Valor float64 `json:"valor"`
	Tipo  string  `json:"tipo"`
}

// ValorComissao devolve a comissão em dinheiro para o total da venda. Entra
// como componente de custo na análise de lucratividade.
func ValorComissao(totalVenda float64, c Comissao) float64 {
	if c.Tipo == ComissaoPercentual {
		return totalVenda * c.Valor / 100
	}
	return c.Valor
}
