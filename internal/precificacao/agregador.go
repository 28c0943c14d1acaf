// internal/precificacao/agregador.go
package precificacao

import "errors"

// ModoCusteio controla como o custo de produtos entra no total.
type ModoCusteio string

const (
	// CusteioPorServico soma o custo real de produto de cada serviço.
	CusteioPorServico ModoCusteio = "por_servico"
	// CusteioMediaMensal substitui os custos de produto por um lançamento
	// operacional mensal único ("Produtos Gastos no Mês"); aqui entram como 0.
	CusteioMediaMensal ModoCusteio = "media_mensal"
)

// ErrMargemInvalida sinaliza margem de lucro desejada >= 100%, que tornaria o
// preço sugerido indefinido (divisão por zero ou preço negativo).
var ErrMargemInvalida = errors.New("margem de lucro deve ser menor que 100%")

// Totais é o resultado agregado de um orçamento. Recalculado por inteiro a
// cada alteração; nada é memoizado.
type Totais struct {
	TotalProdutos     float64 `json:"totalProdutos"`
	TotalMaoDeObra    float64 `json:"totalMaoDeObra"`
	TotalOutrosCustos float64 `json:"totalOutrosCustos"`
	CustosGlobais     float64 `json:"custosGlobais"`
	CustoTotal        float64 `json:"custoTotal"`
	PrecoSugerido     float64 `json:"precoSugerido"`
}

// CalcularTotais agrega custos de produto, mão de obra e outros custos dos
// serviços efetivos, soma os custos globais do orçamento e deriva o preço
// sugerido a partir da margem de lucro desejada (0-100, exclusivo).
//
// Função pura e reentrante: pode rodar a cada tecla digitada na tela.
func CalcularTotais(servicos []ServicoEfetivo, modo ModoCusteio, custosGlobais, margemLucro float64) (Totais, error) {
	if margemLucro >= 100 {
		return Totais{}, ErrMargemInvalida
	}

	t := Totais{CustosGlobais: custosGlobais}
	for _, s := range servicos {
		t.TotalMaoDeObra += float64(s.TempoExecucaoMinutos) / 60 * s.CustoMaoDeObraPorHora
		t.TotalOutrosCustos += s.OutrosCustos
		if modo == CusteioPorServico {
			for _, p := range s.Produtos {
				t.TotalProdutos += CustoPorAplicacao(p)
			}
		}
	}

	t.CustoTotal = t.TotalProdutos + t.TotalMaoDeObra + t.TotalOutrosCustos + t.CustosGlobais
	t.PrecoSugerido = t.CustoTotal
	if margemLucro > 0 {
		t.PrecoSugerido = t.CustoTotal / (1 - margemLucro/100)
	}
	return t, nil
}
