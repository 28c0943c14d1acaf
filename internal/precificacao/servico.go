// internal/precificacao/servico.go
package precificacao

// ServicoOrcado é um serviço do catálogo com os ajustes feitos dentro de um
// orçamento. Campos de ajuste em ponteiro: nil significa "usa o valor do
// catálogo".
type ServicoOrcado struct {
	ID                    uint                 `json:"id"`
	Nome                  string               `json:"nome"`
	Preco                 float64              `json:"preco"`
	CustoMaoDeObraPorHora float64              `json:"custoMaoDeObraPorHora"`
	TempoExecucaoMinutos  int                  `json:"tempoExecucaoMinutos"`
	OutrosCustos          float64              `json:"outrosCustos"`
	Produtos              []ProdutoParaCalculo `json:"produtos"`

	PrecoOrcado          *float64             `json:"precoOrcado,omitempty"`
	CustoMaoDeObraOrcado *float64             `json:"custoMaoDeObraOrcado,omitempty"`
	TempoExecucaoOrcado  *int                 `json:"tempoExecucaoOrcado,omitempty"`
	OutrosCustosOrcado   *float64             `json:"outrosCustosOrcado,omitempty"`
	ProdutosOrcados      []ProdutoParaCalculo `json:"produtosOrcados,omitempty"`
}

// ServicoEfetivo é o serviço com todos os ajustes já resolvidos; a aritmética
// de totais trabalha somente sobre ele.
type ServicoEfetivo struct {
	ID                    uint
	Nome                  string
	Preco                 float64
	CustoMaoDeObraPorHora float64
	TempoExecucaoMinutos  int
	OutrosCustos          float64
	Produtos              []ProdutoParaCalculo
}

// ResolverServicoEfetivo aplica a regra "ajuste ?? original" em um único
// passo, antes de qualquer fórmula rodar.
func ResolverServicoEfetivo(s ServicoOrcado) ServicoEfetivo {
	e := ServicoEfetivo{
		ID:                    s.ID,
		Nome:                  s.Nome,
		Preco:                 s.Preco,
		CustoMaoDeObraPorHora: s.CustoMaoDeObraPorHora,
		TempoExecucaoMinutos:  s.TempoExecucaoMinutos,
		OutrosCustos:          s.OutrosCustos,
		Produtos:              s.Produtos,
	}
	if s.PrecoOrcado != nil {
		e.Preco = *s.PrecoOrcado
	}
	if s.CustoMaoDeObraOrcado != nil {
		e.CustoMaoDeObraPorHora = *s.CustoMaoDeObraOrcado
	}
	if s.TempoExecucaoOrcado != nil {
		e.TempoExecucaoMinutos = *s.TempoExecucaoOrcado
	}
	if s.OutrosCustosOrcado != nil {
		e.OutrosCustos = *s.OutrosCustosOrcado
	}
	if s.ProdutosOrcados != nil {
		e.Produtos = s.ProdutosOrcados
	}
	return e
}

// ResolverServicosEfetivos resolve uma lista inteira de uma vez.
func ResolverServicosEfetivos(servicos []ServicoOrcado) []ServicoEfetivo {
	efetivos := make([]ServicoEfetivo, 0, len(servicos))
	for _, s := range servicos {
		efetivos = append(efetivos, ResolverServicoEfetivo(s))
	}
	return efetivos
}
