package venda

import (
	"testing"

	"github.com/Arkyehub/Precifix-sub000/internal/models"
	"github.com/Arkyehub/Precifix-sub000/internal/precificacao"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func vendaDeExemplo() Venda {
	return Venda{
		Status:         models.StatusConcluido,
		ValorCobrado:   500,
		CustoProdutos:  30,
		CustoMaoDeObra: 120,
		OutrosCustos:   50,
		ComissaoValor:  10,
		ComissaoTipo:   precificacao.ComissaoPercentual,
	}
}

func TestAtualizacaoParcialPreservaCamposOmitidos(t *testing.T) {
	v := vendaDeExemplo()

	aplicarAtualizacao(&v, atualizarVendaRequest{ValorCobrado: floatPtr(450)})

	assert.Equal(t, 450.0, v.ValorCobrado)
	// o resto fica como estava
	assert.Equal(t, models.StatusConcluido, v.Status)
	assert.Equal(t, precificacao.ComissaoPercentual, v.ComissaoTipo)
	assert.Equal(t, 10.0, v.ComissaoValor)
	assert.Equal(t, 120.0, v.CustoMaoDeObra)
}

func TestAtualizacaoTrocaTodosOsCamposEnviados(t *testing.T) {
	v := vendaDeExemplo()
	parcelas := 6
	metodoID := uint(2)

	aplicarAtualizacao(&v, atualizarVendaRequest{
		DataServico:       strPtr("2026-10-01"),
		HoraServico:       strPtr("09:30"),
		Status:            strPtr(models.StatusConcluido),
		ValorCobrado:      floatPtr(600),
		CustoProdutos:     floatPtr(40),
		CustoMaoDeObra:    floatPtr(150),
		OutrosCustos:      floatPtr(0),
		ComissaoValor:     floatPtr(25),
		ComissaoTipo:      strPtr(precificacao.ComissaoValorFixo),
		MetodoPagamentoID: &metodoID,
		NumeroParcelas:    &parcelas,
	})

	assert.Equal(t, "2026-10-01", *v.DataServico)
	assert.Equal(t, "09:30", *v.HoraServico)
	assert.Equal(t, 600.0, v.ValorCobrado)
	assert.Zero(t, v.OutrosCustos)
	assert.Equal(t, precificacao.ComissaoValorFixo, v.ComissaoTipo)
	assert.Equal(t, 25.0, v.ComissaoValor)
	assert.Equal(t, uint(2), *v.MetodoPagamentoID)
	assert.Equal(t, 6, *v.NumeroParcelas)
}

func TestComissaoDaVenda(t *testing.T) {
	v := vendaDeExemplo()
	c := v.Comissao()
	assert.Equal(t, precificacao.ComissaoPercentual, c.Tipo)
	assert.InDelta(t, 50.0, precificacao.ValorComissao(v.ValorCobrado, c), 1e-9)
}
