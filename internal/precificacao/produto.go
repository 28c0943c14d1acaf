// internal/precificacao/produto.go
package precificacao

// Tipos de produto do catálogo
const (
	TipoDiluido   = "diluido"
	TipoProntoUso = "pronto_uso"
)

// ProdutoParaCalculo carrega os campos mínimos necessários para calcular
// o custo de uma aplicação em um veículo. ID e Nome só identificam o produto
// na fotografia do orçamento; as fórmulas não os leem.
type ProdutoParaCalculo struct {
	ID                  uint    `json:"id"`
	Nome                string  `json:"nome"`
	PrecoGalao          float64 `json:"precoGalao"`
	VolumeGalaoML       float64 `json:"volumeGalaoMl"`
	FatorDiluicao       float64 `json:"fatorDiluicao"`
	ConsumoPorVeiculoML float64 `json:"consumoPorVeiculoMl"`
	Tipo                string  `json:"tipo"`
}

// CustoPorAplicacao calcula o custo de uma aplicação do produto em um veículo.
// Para produtos diluídos o fator de diluição "1:N" reduz o custo por ml.
// Pré-condição: VolumeGalaoML > 0 — a divisão não é protegida aqui; quem chama
// valida o cadastro antes (volume zero resulta em Inf/NaN, nunca em panic).
func CustoPorAplicacao(p ProdutoParaCalculo) float64 {
	custoPorML := p.PrecoGalao / p.VolumeGalaoML
	if p.Tipo == TipoProntoUso {
		return custoPorML * p.ConsumoPorVeiculoML
	}
	custoPorMLDiluido := custoPorML / (1 + p.FatorDiluicao)
	return custoPorMLDiluido * p.ConsumoPorVeiculoML
}
