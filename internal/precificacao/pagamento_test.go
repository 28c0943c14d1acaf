package precificacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestDinheiroEPixSemTaxa(t *testing.T) {
	for _, tipo := range []string{PagamentoDinheiro, PagamentoPix} {
		metodo := MetodoPagamento{Tipo: tipo, Taxa: 5} // taxa cadastrada é ignorada
		assert.Zero(t, CalcularTaxaPagamento(200, metodo, nil), "tipo=%s", tipo)
		assert.Zero(t, CalcularTaxaPagamento(99999, metodo, intPtr(3)), "tipo=%s", tipo)
	}
}

func TestTaxaDebito(t *testing.T) {
	metodo := MetodoPagamento{Tipo: PagamentoCartaoDebito, Taxa: 3}
	assert.InDelta(t, 6.00, CalcularTaxaPagamento(200, metodo, nil), 1e-9)
	assert.InDelta(t, 206.00, ValorComTaxa(200, metodo, nil), 1e-9)
}

func TestTaxaCreditoPorParcela(t *testing.T) {
	metodo := MetodoPagamento{
		Tipo: PagamentoCartaoCredito,
		Taxa: 0,
		Parcelas: []TaxaParcela{
			{NumeroParcelas: 1, Taxa: 3.5},
			{NumeroParcelas: 3, Taxa: 5.5},
			{NumeroParcelas: 6, Taxa: 8.0},
		},
	}

	assert.InDelta(t, 7.00, CalcularTaxaPagamento(200, metodo, intPtr(1)), 1e-9)
	assert.InDelta(t, 11.00, CalcularTaxaPagamento(200, metodo, intPtr(3)), 1e-9)
	assert.InDelta(t, 16.00, CalcularTaxaPagamento(200, metodo, intPtr(6)), 1e-9)
}

func TestTaxaCreditoSemFaixaUsaBase(t *testing.T) {
	metodo := MetodoPagamento{
		Tipo:     PagamentoCartaoCredito,
		Taxa:     2.5,
		Parcelas: []TaxaParcela{{NumeroParcelas: 3, Taxa: 5.5}},
	}

	// 12x não cadastrado => taxa base
	assert.InDelta(t, 5.00, CalcularTaxaPagamento(200, metodo, intPtr(12)), 1e-9)
	// sem escolha de parcelas => taxa base
	assert.InDelta(t, 5.00, CalcularTaxaPagamento(200, metodo, nil), 1e-9)
}

func TestCreditoSemFaixaESemTaxaBase(t *testing.T) {
	// fallback implícito para 0, não é erro
	metodo := MetodoPagamento{Tipo: PagamentoCartaoCredito}
	assert.Zero(t, CalcularTaxaPagamento(350, metodo, intPtr(10)))
}

func TestTipoDesconhecidoSemTaxa(t *testing.T) {
	assert.Zero(t, CalcularTaxaPagamento(200, MetodoPagamento{Tipo: "boleto", Taxa: 4}, nil))
}
