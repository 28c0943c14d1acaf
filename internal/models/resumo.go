// models/resumo.go
package models

// ResumoProduto é o produto como foi custado no momento do orçamento.
type ResumoProduto struct {
	ID    uint    `json:"id"`
	Nome  string  `json:"nome"`
	Custo float64 `json:"custo"`
}

// ResumoServico é a fotografia de um serviço orçado, persistida verbatim em
// JSONB junto do orçamento/venda (payload `services_summary`).
type ResumoServico struct {
	ID                   uint            `json:"id"`
	Nome                 string          `json:"nome"`
	Preco                float64         `json:"preco"`
	TempoExecucaoMinutos int             `json:"tempo_execucao_minutos"`
	TempoExecucao        string          `json:"tempo_execucao"` // "HH:MM", para exibição
	Produtos             []ResumoProduto `json:"produtos"`
}
