// internal/precificacao/lucratividade.go
package precificacao

// Lucratividade é o resultado da análise de uma venda (prospectiva no
// orçamento, retrospectiva na venda fechada).
type Lucratividade struct {
	LucroLiquido     float64 `json:"lucroLiquido"`
	MargemPercentual float64 `json:"margemPercentual"`
}

// AnalisarLucratividade calcula lucro líquido e margem percentual a partir do
// valor efetivamente cobrado e do custo total da operação.
func AnalisarLucratividade(valorCobrado, custoTotal float64) Lucratividade {
	l := Lucratividade{LucroLiquido: valorCobrado - custoTotal}
	if valorCobrado > 0 {
		l.MargemPercentual = l.LucroLiquido / valorCobrado * 100
	}
	return l
}
