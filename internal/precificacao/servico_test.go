package precificacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestResolverServicoEfetivoSemAjustes(t *testing.T) {
	s := ServicoOrcado{
		ID:                    7,
		Nome:                  "Polimento",
		Preco:                 350,
		CustoMaoDeObraPorHora: 45,
		TempoExecucaoMinutos:  180,
		OutrosCustos:          20,
		Produtos:              []ProdutoParaCalculo{{PrecoGalao: 90, VolumeGalaoML: 500, ConsumoPorVeiculoML: 40, Tipo: TipoProntoUso}},
	}

	e := ResolverServicoEfetivo(s)
	assert.Equal(t, s.Preco, e.Preco)
	assert.Equal(t, s.CustoMaoDeObraPorHora, e.CustoMaoDeObraPorHora)
	assert.Equal(t, s.TempoExecucaoMinutos, e.TempoExecucaoMinutos)
	assert.Equal(t, s.OutrosCustos, e.OutrosCustos)
	assert.Len(t, e.Produtos, 1)
}

func TestResolverServicoEfetivoComAjustes(t *testing.T) {
	s := ServicoOrcado{
		Preco:                 350,
		CustoMaoDeObraPorHora: 45,
		TempoExecucaoMinutos:  180,
		OutrosCustos:          20,
		Produtos:              []ProdutoParaCalculo{{PrecoGalao: 90, VolumeGalaoML: 500, ConsumoPorVeiculoML: 40, Tipo: TipoProntoUso}},

		PrecoOrcado:          floatPtr(300),
		CustoMaoDeObraOrcado: floatPtr(50),
		TempoExecucaoOrcado:  intPtr(150),
		OutrosCustosOrcado:   floatPtr(0),
		ProdutosOrcados:      []ProdutoParaCalculo{},
	}

	e := ResolverServicoEfetivo(s)
	assert.Equal(t, 300.0, e.Preco)
	assert.Equal(t, 50.0, e.CustoMaoDeObraPorHora)
	assert.Equal(t, 150, e.TempoExecucaoMinutos)
	assert.Zero(t, e.OutrosCustos)
	// lista vazia é um ajuste válido (serviço orçado sem produtos)
	assert.Empty(t, e.Produtos)
}

func TestResolverServicosEfetivos(t *testing.T) {
	lista := ResolverServicosEfetivos([]ServicoOrcado{
		{Preco: 100},
		{Preco: 100, PrecoOrcado: floatPtr(80)},
	})
	assert.Len(t, lista, 2)
	assert.Equal(t, 100.0, lista[0].Preco)
	assert.Equal(t, 80.0, lista[1].Preco)
}
