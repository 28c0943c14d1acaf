package precificacao

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustoPorAplicacaoProntoUso(t *testing.T) {
	// R$ 50 por galão de 5000ml, 100ml por veículo => R$ 1,00
	p := ProdutoParaCalculo{
		PrecoGalao:          50,
		VolumeGalaoML:       5000,
		ConsumoPorVeiculoML: 100,
		Tipo:                TipoProntoUso,
	}
	assert.InDelta(t, 1.00, CustoPorAplicacao(p), 1e-9)

	// linear no consumo e no preço, inversamente proporcional ao volume
	p.ConsumoPorVeiculoML = 200
	assert.InDelta(t, 2.00, CustoPorAplicacao(p), 1e-9)
	p.PrecoGalao = 100
	assert.InDelta(t, 4.00, CustoPorAplicacao(p), 1e-9)
	p.VolumeGalaoML = 10000
	assert.InDelta(t, 2.00, CustoPorAplicacao(p), 1e-9)
}

func TestCustoPorAplicacaoDiluido(t *testing.T) {
	// diluição 1:9 divide o custo por ml concentrado por 10
	p := ProdutoParaCalculo{
		PrecoGalao:          50,
		VolumeGalaoML:       5000,
		FatorDiluicao:       9,
		ConsumoPorVeiculoML: 100,
		Tipo:                TipoDiluido,
	}
	assert.InDelta(t, 0.10, CustoPorAplicacao(p), 1e-9)
}

func TestCustoDiminuiComMaisDiluicao(t *testing.T) {
	p := ProdutoParaCalculo{
		PrecoGalao:          80,
		VolumeGalaoML:       5000,
		ConsumoPorVeiculoML: 150,
		Tipo:                TipoDiluido,
	}
	anterior := math.Inf(1)
	for _, fator := range []float64{0, 1, 3, 9, 20, 50} {
		p.FatorDiluicao = fator
		custo := CustoPorAplicacao(p)
		require.Less(t, custo, anterior, "mais diluição deve baratear a aplicação (fator %v)", fator)
		anterior = custo
	}
}

// A base de cálculo antiga tinha uma segunda fórmula para produto diluído:
// volume total diluído = volume * (1 + fator), custo por litro = preço /
// (volumeDiluido/1000). As duas são algebricamente idênticas; o teste garante
// que a forma canônica não divergiu além do erro de ponto flutuante.
func custoPorAplicacaoViaVolumeDiluido(p ProdutoParaCalculo) float64 {
	volumeDiluidoML := p.VolumeGalaoML * (1 + p.FatorDiluicao)
	custoPorLitro := p.PrecoGalao / (volumeDiluidoML / 1000)
	return custoPorLitro * p.ConsumoPorVeiculoML / 1000
}

func TestFormulasDiluicaoEquivalentes(t *testing.T) {
	casos := []ProdutoParaCalculo{
		{PrecoGalao: 50, VolumeGalaoML: 5000, FatorDiluicao: 9, ConsumoPorVeiculoML: 100, Tipo: TipoDiluido},
		{PrecoGalao: 129.90, VolumeGalaoML: 3600, FatorDiluicao: 40, ConsumoPorVeiculoML: 75, Tipo: TipoDiluido},
		{PrecoGalao: 19.99, VolumeGalaoML: 500, FatorDiluicao: 0, ConsumoPorVeiculoML: 30, Tipo: TipoDiluido},
		{PrecoGalao: 7.35, VolumeGalaoML: 1000, FatorDiluicao: 3.5, ConsumoPorVeiculoML: 250, Tipo: TipoDiluido},
	}
	for _, p := range casos {
		canonico := CustoPorAplicacao(p)
		historico := custoPorAplicacaoViaVolumeDiluido(p)
		assert.InDelta(t, historico, canonico, 1e-9)
	}
}

func TestVolumeZeroNaoDispara(t *testing.T) {
	// pré-condição violada degrada para não-finito, nunca panic
	p := ProdutoParaCalculo{PrecoGalao: 10, VolumeGalaoML: 0, ConsumoPorVeiculoML: 50, Tipo: TipoProntoUso}
	assert.True(t, math.IsInf(CustoPorAplicacao(p), 1))

	p.PrecoGalao = 0
	assert.True(t, math.IsNaN(CustoPorAplicacao(p)))
}
