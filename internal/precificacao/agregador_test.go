package precificacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servicosDeExemplo() []ServicoEfetivo {
	return []ServicoEfetivo{
		{
			Nome:                  "Lavagem detalhada",
			CustoMaoDeObraPorHora: 40,
			TempoExecucaoMinutos:  90, // 1h30 => R$ 60 de mão de obra
			OutrosCustos:          10,
			Produtos: []ProdutoParaCalculo{
				{PrecoGalao: 50, VolumeGalaoML: 5000, FatorDiluicao: 9, ConsumoPorVeiculoML: 100, Tipo: TipoDiluido}, // 0,10
				{PrecoGalao: 30, VolumeGalaoML: 3000, ConsumoPorVeiculoML: 90, Tipo: TipoProntoUso},                  // 0,90
			},
		},
		{
			Nome:                  "Higienização interna",
			CustoMaoDeObraPorHora: 50,
			TempoExecucaoMinutos:  120, // R$ 100
			OutrosCustos:          5,
		},
	}
}

func TestCalcularTotaisPorServico(t *testing.T) {
	totais, err := CalcularTotais(servicosDeExemplo(), CusteioPorServico, 15, 0)
	require.NoError(t, err)

	assert.InDelta(t, 1.00, totais.TotalProdutos, 1e-9)
	assert.InDelta(t, 160.00, totais.TotalMaoDeObra, 1e-9)
	assert.InDelta(t, 15.00, totais.TotalOutrosCustos, 1e-9)
	assert.InDelta(t, 15.00, totais.CustosGlobais, 1e-9)
	assert.InDelta(t, 191.00, totais.CustoTotal, 1e-9)
	// margem 0 => preço sugerido igual ao custo
	assert.InDelta(t, 191.00, totais.PrecoSugerido, 1e-9)
}

func TestCalcularTotaisMediaMensal(t *testing.T) {
	// em custeio por média mensal os produtos não entram por serviço
	totais, err := CalcularTotais(servicosDeExemplo(), CusteioMediaMensal, 0, 0)
	require.NoError(t, err)

	assert.Zero(t, totais.TotalProdutos)
	assert.InDelta(t, 175.00, totais.CustoTotal, 1e-9)
}

func TestPrecoSugeridoComMargem(t *testing.T) {
	servicos := []ServicoEfetivo{{CustoMaoDeObraPorHora: 100, TempoExecucaoMinutos: 60}}

	// custo 100 e margem 50% => preço 200
	totais, err := CalcularTotais(servicos, CusteioPorServico, 0, 50)
	require.NoError(t, err)
	assert.InDelta(t, 100.00, totais.CustoTotal, 1e-9)
	assert.InDelta(t, 200.00, totais.PrecoSugerido, 1e-9)

	// margem 20% => 100 / 0,8 = 125
	totais, err = CalcularTotais(servicos, CusteioPorServico, 0, 20)
	require.NoError(t, err)
	assert.InDelta(t, 125.00, totais.PrecoSugerido, 1e-9)
}

func TestMargemMaiorOuIgualACemRejeitada(t *testing.T) {
	servicos := []ServicoEfetivo{{CustoMaoDeObraPorHora: 100, TempoExecucaoMinutos: 60}}

	_, err := CalcularTotais(servicos, CusteioPorServico, 0, 100)
	assert.ErrorIs(t, err, ErrMargemInvalida)

	_, err = CalcularTotais(servicos, CusteioPorServico, 0, 150)
	assert.ErrorIs(t, err, ErrMargemInvalida)
}

func TestTotaisSemServicos(t *testing.T) {
	totais, err := CalcularTotais(nil, CusteioPorServico, 25, 30)
	require.NoError(t, err)
	assert.InDelta(t, 25.00, totais.CustoTotal, 1e-9)
}
