package precificacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalisarLucratividade(t *testing.T) {
	l := AnalisarLucratividade(200, 120)
	assert.InDelta(t, 80.00, l.LucroLiquido, 1e-9)
	assert.InDelta(t, 40.00, l.MargemPercentual, 1e-9)
}

func TestLucratividadeComPrejuizo(t *testing.T) {
	l := AnalisarLucratividade(100, 150)
	assert.InDelta(t, -50.00, l.LucroLiquido, 1e-9)
	assert.InDelta(t, -50.00, l.MargemPercentual, 1e-9)
}

func TestLucratividadeValorZerado(t *testing.T) {
	l := AnalisarLucratividade(0, 80)
	assert.InDelta(t, -80.00, l.LucroLiquido, 1e-9)
	assert.Zero(t, l.MargemPercentual)
}

func TestValorComissao(t *testing.T) {
	assert.InDelta(t, 50.00, ValorComissao(1000, Comissao{Valor: 50, Tipo: ComissaoValorFixo}), 1e-9)
	assert.InDelta(t, 100.00, ValorComissao(1000, Comissao{Valor: 10, Tipo: ComissaoPercentual}), 1e-9)
	assert.Zero(t, ValorComissao(1000, Comissao{}))
}

// caminho retrospectivo: comissão e taxa do cartão entram como custo antes da margem
func TestLucratividadeDeVendaFechada(t *testing.T) {
	valorCobrado := 500.00
	custoOperacao := 200.00

	comissao := ValorComissao(valorCobrado, Comissao{Valor: 10, Tipo: ComissaoPercentual}) // 50
	metodo := MetodoPagamento{Tipo: PagamentoCartaoDebito, Taxa: 2}
	taxa := CalcularTaxaPagamento(valorCobrado, metodo, nil) // 10

	l := AnalisarLucratividade(valorCobrado, custoOperacao+comissao+taxa)
	assert.InDelta(t, 240.00, l.LucroLiquido, 1e-9)
	assert.InDelta(t, 48.00, l.MargemPercentual, 1e-9)
}
